package core

import (
	"fmt"
	"math"
)

var rgbRange = NewInterval(0, 1)

// Color is an RGB triple whose channels are always clamped into [0, 1].
// Every constructor and arithmetic operation re-establishes the invariant,
// so a Color never holds an out-of-range channel.
type Color struct {
	vector Vec3
}

// NewColor creates a color, clamping each channel into [0, 1]
func NewColor(r, g, b float64) Color {
	return ColorFromVec3(Vec3{X: r, Y: g, Z: b})
}

// ColorFromVec3 creates a color from a raw vector, clamping each channel
func ColorFromVec3(v Vec3) Color {
	return Color{vector: Vec3{
		X: rgbRange.Clamp(v.X),
		Y: rgbRange.Clamp(v.Y),
		Z: rgbRange.Clamp(v.Z),
	}}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns the full-intensity color
func White() Color {
	return Color{vector: Vec3{X: 1, Y: 1, Z: 1}}
}

// AsVec3 returns the raw channel values
func (c Color) AsVec3() Vec3 {
	return c.vector
}

// R returns the red channel
func (c Color) R() float64 { return c.vector.X }

// G returns the green channel
func (c Color) G() float64 { return c.vector.Y }

// B returns the blue channel
func (c Color) B() float64 { return c.vector.Z }

// Add returns the channel-wise sum, clamped
func (c Color) Add(other Color) Color {
	return ColorFromVec3(c.vector.Add(other.vector))
}

// Scale returns the color scaled by a scalar, clamped
func (c Color) Scale(scalar float64) Color {
	return ColorFromVec3(c.vector.Multiply(scalar))
}

// Attenuate returns the channel-wise product of two colors. Both inputs are
// in [0, 1] so the result needs no re-clamping, but it goes through the
// clamping constructor anyway to keep the invariant in one place.
func (c Color) Attenuate(other Color) Color {
	return ColorFromVec3(c.vector.MultiplyVec(other.vector))
}

// Gamma applies gamma-2 encoding (square root of each channel) for output
func (c Color) Gamma() Color {
	return Color{vector: Vec3{
		X: linearToGamma(c.vector.X),
		Y: linearToGamma(c.vector.Y),
		Z: linearToGamma(c.vector.Z),
	}}
}

func linearToGamma(component float64) float64 {
	if component > 0 {
		return math.Sqrt(component)
	}
	return 0
}

// PPMTriple renders the color as a plain-text PPM pixel, each channel an
// integer in [0, 255] computed as floor(channel * 255.999).
func (c Color) PPMTriple() string {
	r := int(math.Floor(c.vector.X * 255.999))
	g := int(math.Floor(c.vector.Y * 255.999))
	b := int(math.Floor(c.vector.Z * 255.999))
	return fmt.Sprintf("%d %d %d", r, g, b)
}
