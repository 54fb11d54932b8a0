package material

import (
	"github.com/skovert/go-pathrender/pkg/core"
)

// Metal represents a perfect-mirror metallic material
type Metal struct {
	Albedo core.Color // Metal color
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color) *Metal {
	return &Metal{Albedo: albedo}
}

// Scatter implements the Material interface for mirror reflection
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if m.Albedo == core.Black() {
		return ScatterResult{}, false
	}

	reflected := core.Reflect(rayIn.Direction, hit.Normal)

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}
