package renderer

import (
	"math"

	"github.com/skovert/go-pathrender/pkg/core"
	"github.com/skovert/go-pathrender/pkg/material"
)

// World interface to avoid a direct dependency on the scene package
type World interface {
	Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool)
}

// Bounces below t = hitEpsilon are rejected so a scattered ray cannot
// re-intersect the surface it just left (shadow acne from roundoff).
const hitEpsilon = 1e-5

var (
	backgroundTop    = core.NewVec3(0.5, 0.7, 1.0)
	backgroundBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// rayColor evaluates recursive light transport for a ray. The depth counter
// is the sole termination guarantee: it decrements on every bounce and an
// exhausted budget contributes black.
func rayColor(ray core.Ray, depth int, world World, sampler core.Sampler) core.Color {
	if depth <= 0 {
		return core.Black()
	}

	hit, isHit := world.Hit(ray, core.NewInterval(hitEpsilon, math.Inf(1)))
	if !isHit {
		return backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Black()
	}

	return scatter.Attenuation.Attenuate(rayColor(scatter.Scattered, depth-1, world, sampler))
}

// backgroundGradient blends white to sky blue by the ray's vertical direction
func backgroundGradient(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	blended := backgroundBottom.Multiply(1.0 - a).Add(backgroundTop.Multiply(a))
	return core.ColorFromVec3(blended)
}
