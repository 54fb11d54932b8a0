package geometry

import (
	"github.com/skovert/go-pathrender/pkg/core"
	"github.com/skovert/go-pathrender/pkg/material"
)

// Hittable is the single contract every surface type implements: report the
// nearest intersection with the ray whose parameter lies in tRange, or false.
type Hittable interface {
	Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool)
}
