package scene

import (
	"github.com/skovert/go-pathrender/pkg/core"
	"github.com/skovert/go-pathrender/pkg/geometry"
	"github.com/skovert/go-pathrender/pkg/material"
)

// Scene is an unordered collection of surfaces. It is built once before a
// render and never mutated afterward, so concurrent reads from render
// workers need no locking.
type Scene struct {
	surfaces []geometry.Hittable
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{surfaces: make([]geometry.Hittable, 0)}
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...geometry.Hittable) {
	s.surfaces = append(s.surfaces, surfaces...)
}

// Clear removes all surfaces from the scene
func (s *Scene) Clear() {
	s.surfaces = s.surfaces[:0]
}

// Count returns the number of surfaces in the scene
func (s *Scene) Count() int {
	return len(s.surfaces)
}

// Hit evaluates every surface against the ray and returns the record with
// the smallest t. The searched range narrows as closer hits are found, so
// ties are broken first-seen-wins.
func (s *Scene) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tRange.Max

	for _, surface := range s.surfaces {
		if hit, isHit := surface.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
