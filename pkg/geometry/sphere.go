package geometry

import (
	"fmt"
	"math"

	"github.com/skovert/go-pathrender/pkg/core"
	"github.com/skovert/go-pathrender/pkg/material"
)

// Sphere represents a sphere surface with a shared material handle
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. A negative radius is a caller programming
// error and panics.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	if radius < 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be non-negative, got %v", radius))
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects the sphere by solving |O + tD - C|^2 = r^2.
// Of the two roots the nearer one strictly inside tRange wins, falling back
// to the farther root under the same test.
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	oc := s.Center.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	root := (h - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (h + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal is unit length by construction.
	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
