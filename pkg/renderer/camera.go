package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skovert/go-pathrender/pkg/core"
)

// CameraConfig holds the extrinsic and intrinsic camera parameters plus the
// render settings. Zero fields are filled in from DefaultCameraConfig when
// the camera is built.
type CameraConfig struct {
	AspectRatio     float64   // Image width over height
	Width           int       // Image width in pixels
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Eye position
	LookAt          core.Vec3 // Target the camera points at
	Up              core.Vec3 // World up vector
	SamplesPerPixel int       // Rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	NumWorkers      int       // Parallel render workers
	Seed            int64     // Base seed for per-worker random generators
	Output          string    // Output file path
}

// DefaultCameraConfig returns the default camera configuration: a square
// 100-pixel image looking down -z from the origin.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		VFov:            50.0,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		SamplesPerPixel: 10,
		MaxDepth:        10,
		NumWorkers:      1,
		Seed:            42,
		Output:          "image.ppm",
	}
}

// MergeCameraConfig merges an override config into a base config. Zero-value
// fields in the override keep the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		merged.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.SamplesPerPixel != 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		merged.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		merged.Seed = override.Seed
	}
	if override.Output != "" {
		merged.Output = override.Output
	}
	return merged
}

// Camera owns the pixel-to-ray projection and the parallel render loop. It
// is immutable once built; one camera spans one render call.
type Camera struct {
	config            CameraConfig
	imageWidth        int
	imageHeight       int
	center            core.Vec3
	pixelOrigin       core.Vec3
	pixelDeltaU       core.Vec3
	pixelDeltaV       core.Vec3
	pixelSamplesScale float64
	logger            core.Logger
}

// NewCamera builds a camera from the config, deriving the image dimensions,
// the orthonormal basis and the viewport geometry once.
func NewCamera(config CameraConfig) *Camera {
	cfg := MergeCameraConfig(DefaultCameraConfig(), config)

	imageWidth := cfg.Width
	imageHeight := int(math.Round(float64(imageWidth) / cfg.AspectRatio))
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := cfg.LookFrom

	// The focal plane passes through the look-at target.
	focalLength := cfg.LookAt.Subtract(cfg.LookFrom).Length()
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * float64(imageWidth) / float64(imageHeight)

	// Orthonormal basis: w points from target to eye.
	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(imageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixelOrigin := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:            cfg,
		imageWidth:        imageWidth,
		imageHeight:       imageHeight,
		center:            center,
		pixelOrigin:       pixelOrigin,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		pixelSamplesScale: 1.0 / float64(cfg.SamplesPerPixel),
	}
}

// SetLogger attaches a logger for progress and stats output. A nil logger
// renders silently.
func (c *Camera) SetLogger(logger core.Logger) {
	c.logger = logger
}

// Config returns the merged camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageSize returns the derived image dimensions in pixels
func (c *Camera) ImageSize() (width, height int) {
	return c.imageWidth, c.imageHeight
}

// GetRay returns a ray from the eye through a jittered sample point inside
// the footprint of pixel (x, y).
func (c *Camera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	offsetX, offsetY := sampler.Get2D()
	pixelSample := c.pixelOrigin.
		Add(c.pixelDeltaU.Multiply(float64(x) + offsetX - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(y) + offsetY - 0.5))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}

// RenderBuffer renders the world into a fresh pixel buffer. Image rows are
// statically partitioned across workers by row index modulo worker count, so
// each pixel has exactly one writer and the buffer needs no locking.
func (c *Camera) RenderBuffer(world World) (*PixelBuffer, RenderStats, error) {
	buffer, err := NewPixelBuffer(c.imageWidth, c.imageHeight)
	if err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	numWorkers := c.config.NumWorkers

	var rowsDone atomic.Int64
	progressDone := make(chan struct{})
	if c.logger != nil {
		go c.reportProgress(&rowsDone, progressDone)
	}

	var wg sync.WaitGroup
	for id := 0; id < numWorkers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(c.config.Seed + int64(id))))

			for y := 0; y < c.imageHeight; y++ {
				if (y+id)%numWorkers != 0 {
					continue
				}
				for x := 0; x < c.imageWidth; x++ {
					buffer.Set(x, y, c.renderPixel(x, y, world, sampler))
				}
				rowsDone.Add(1)
			}
		}(id)
	}
	wg.Wait()
	close(progressDone)

	stats := RenderStats{
		Width:       c.imageWidth,
		Height:      c.imageHeight,
		PrimaryRays: int64(c.imageWidth) * int64(c.imageHeight) * int64(c.config.SamplesPerPixel),
		Workers:     numWorkers,
		Elapsed:     time.Since(start),
	}
	return buffer, stats, nil
}

// renderPixel accumulates the jittered samples for one pixel and applies
// gamma encoding.
func (c *Camera) renderPixel(x, y int, world World, sampler core.Sampler) core.Color {
	pixelColor := core.Black()
	for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
		ray := c.GetRay(x, y, sampler)
		pixelColor = pixelColor.Add(rayColor(ray, c.config.MaxDepth, world, sampler).Scale(c.pixelSamplesScale))
	}
	return pixelColor.Gamma()
}

// reportProgress polls the completed-row counter and logs the completion
// percentage until the render finishes.
func (c *Camera) reportProgress(rowsDone *atomic.Int64, done <-chan struct{}) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			percent := 100 * float64(rowsDone.Load()) / float64(c.imageHeight)
			c.logger.Printf("render progress: %.0f%%\n", percent)
		}
	}
}

// Render renders the world and writes the result to the configured output
// path as a plain-text PPM image. Any error here is an unrecoverable
// configuration or I/O fault; the caller is expected to terminate.
func (c *Camera) Render(world World) error {
	buffer, stats, err := c.RenderBuffer(world)
	if err != nil {
		return err
	}

	if c.logger != nil {
		c.logger.Printf("render complete: %dx%d, %d primary rays, %d workers, %v\n",
			stats.Width, stats.Height, stats.PrimaryRays, stats.Workers, stats.Elapsed.Round(time.Millisecond))
	}

	file, err := os.Create(c.config.Output)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", c.config.Output, err)
	}
	defer file.Close()

	if err := buffer.WritePPM(file); err != nil {
		return fmt.Errorf("writing %q: %w", c.config.Output, err)
	}
	return nil
}
