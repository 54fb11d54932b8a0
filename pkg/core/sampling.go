package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitCube returns a random vector with components in [-1, 1)
func RandomInUnitCube(sampler Sampler) Vec3 {
	p := sampler.Get3D()
	return NewVec3(2*p.X-1, 2*p.Y-1, 2*p.Z-1)
}

// RandomUnitVector generates a uniformly distributed direction on the unit
// sphere by rejection sampling the unit cube. Samples whose squared length
// falls outside (1e-160, 1] are rejected before rescaling, which avoids both
// directional bias and underflow when normalizing a tiny vector.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomInUnitCube(sampler)
		lengthSquared := p.LengthSquared()
		if 1e-160 < lengthSquared && lengthSquared <= 1.0 {
			return p.Divide(math.Sqrt(lengthSquared))
		}
	}
}
