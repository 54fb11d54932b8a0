package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/skovert/go-pathrender/pkg/core"
)

func TestNewPixelBuffer_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"overflowing product", math.MaxInt, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPixelBuffer(tt.width, tt.height); err == nil {
				t.Errorf("Expected error for %dx%d buffer", tt.width, tt.height)
			}
		})
	}
}

func TestPixelBuffer_SetAndAt(t *testing.T) {
	buffer, err := NewPixelBuffer(10, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := buffer.At(4, 4); got != core.Black() {
		t.Errorf("New buffer should be black, got %v", got.AsVec3())
	}

	white := core.White()
	buffer.Set(5, 6, white)

	if got := buffer.At(5, 6); got != white {
		t.Errorf("Expected white at (5,6), got %v", got.AsVec3())
	}
	if got := buffer.At(6, 5); got != core.Black() {
		t.Errorf("Transposed coordinate should still be black, got %v", got.AsVec3())
	}
}

func TestPixelBuffer_OutOfBoundsPanics(t *testing.T) {
	buffer, _ := NewPixelBuffer(5, 5)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-bounds write")
		}
	}()
	buffer.Set(5, 0, core.White())
}

func TestPixelBuffer_LocationsRowMajor(t *testing.T) {
	buffer, _ := NewPixelBuffer(3, 2)

	var locations [][2]int
	for x, y := range buffer.Locations() {
		locations = append(locations, [2]int{x, y})
	}

	expected := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(locations) != len(expected) {
		t.Fatalf("Expected %d locations, got %d", len(expected), len(locations))
	}
	for i, loc := range expected {
		if locations[i] != loc {
			t.Errorf("Location %d: expected %v, got %v", i, loc, locations[i])
		}
	}
}

func TestPixelBuffer_WritePPM(t *testing.T) {
	buffer, _ := NewPixelBuffer(2, 2)
	buffer.Set(0, 0, core.White())
	buffer.Set(1, 0, core.NewColor(1.0, 0.5, 0.0))
	buffer.Set(0, 1, core.NewColor(0.0, 0.5, 1.0))
	// (1,1) stays black.

	var sb strings.Builder
	if err := buffer.WritePPM(&sb); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n2 2\n255\n" +
		"255 255 255\n" +
		"255 127 0\n" +
		"0 127 255\n" +
		"0 0 0\n"
	if sb.String() != expected {
		t.Errorf("PPM output mismatch:\nexpected:\n%s\ngot:\n%s", expected, sb.String())
	}
}
