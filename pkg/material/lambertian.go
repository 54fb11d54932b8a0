package material

import (
	"github.com/skovert/go-pathrender/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The scatter direction is normal + random unit vector, which yields a
// cosine-weighted distribution around the normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// A black surface absorbs everything, no ray to send out.
	if l.Albedo == core.Black() {
		return ScatterResult{}, false
	}

	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Rare antipodal cancellation produces a near-zero direction; fall back
	// to the normal itself.
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
