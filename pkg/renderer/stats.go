package renderer

import "time"

// RenderStats summarizes a completed render pass
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	PrimaryRays int64         // Camera rays traced (pixels * samples per pixel)
	Workers     int           // Worker goroutines used
	Elapsed     time.Duration // Wall-clock render time
}
