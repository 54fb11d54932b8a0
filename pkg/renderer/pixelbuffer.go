package renderer

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"

	"github.com/skovert/go-pathrender/pkg/core"
)

// PixelBuffer is row-major 2D raster storage for render output. During a
// render each cell has exactly one writer (rows are partitioned across
// workers), so no per-pixel locking is needed.
type PixelBuffer struct {
	colors []core.Color
	width  int
	height int
}

// NewPixelBuffer creates a buffer with all pixels initialized to black.
// Dimensions that are non-positive or whose product overflows the platform's
// addressable pixel count are unrecoverable configuration errors.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("renderer: pixel buffer dimensions must be positive, got %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("renderer: pixel buffer %dx%d exceeds addressable pixel count", width, height)
	}
	return &PixelBuffer{
		colors: make([]core.Color, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the buffer width in pixels
func (p *PixelBuffer) Width() int { return p.width }

// Height returns the buffer height in pixels
func (p *PixelBuffer) Height() int { return p.height }

// Set writes the pixel at (x, y). Panics on out-of-bounds coordinates.
func (p *PixelBuffer) Set(x, y int, color core.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) out of bounds for %dx%d buffer", x, y, p.width, p.height))
	}
	p.colors[y*p.width+x] = color
}

// At returns the pixel at (x, y). Panics on out-of-bounds coordinates.
func (p *PixelBuffer) At(x, y int) core.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) out of bounds for %dx%d buffer", x, y, p.width, p.height))
	}
	return p.colors[y*p.width+x]
}

// Locations iterates pixel coordinates left to right, then top to bottom
func (p *PixelBuffer) Locations() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < p.height; y++ {
			for x := 0; x < p.width; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// WritePPM serializes the buffer as a plain-text PPM image: the P3 header
// followed by one "{r} {g} {b}" triple per pixel in row-major order.
func (p *PixelBuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", p.width, p.height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	for _, color := range p.colors {
		if _, err := fmt.Fprintln(bw, color.PPMTriple()); err != nil {
			return fmt.Errorf("writing ppm pixel: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm output: %w", err)
	}
	return nil
}
