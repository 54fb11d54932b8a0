package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(2, 0, 0))

	if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
		t.Errorf("expected unit direction, got length %f", ray.Direction.Length())
	}
	if ray.Direction != NewVec3(1, 0, 0) {
		t.Errorf("expected direction (1,0,0), got %v", ray.Direction)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))

	if got := ray.At(2.0); got != NewVec3(1, 2, 0) {
		t.Errorf("expected (1,2,0), got %v", got)
	}
	if got := ray.At(0); got != ray.Origin {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
}
