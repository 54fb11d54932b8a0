package scene

import (
	"github.com/skovert/go-pathrender/pkg/core"
	"github.com/skovert/go-pathrender/pkg/geometry"
	"github.com/skovert/go-pathrender/pkg/material"
)

// NewDefaultScene creates the showcase scene: a diffuse ground sphere with
// one sphere of each material kind resting on it.
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewColor(0.8, 0.6, 0.2))

	s := NewScene()
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
	)
	return s
}

// NewTwoSphereScene creates the minimal scene with one small diffuse sphere
// over a large diffuse ground sphere.
func NewTwoSphereScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))

	s := NewScene()
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
	)
	return s
}
