package material

import (
	"math"
	"testing"

	"github.com/skovert/go-pathrender/pkg/core"
)

func TestDielectric_AlwaysScatters(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := seededSampler(42)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(0.2, 0.1, 0), core.NewVec3(-0.2, -0.1, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("trial %d: dielectric must always scatter", i)
		}
		if scatter.Attenuation != core.White() {
			t.Fatalf("trial %d: clear glass should not tint, got %v", i, scatter.Attenuation)
		}
	}
}

func TestDielectric_Refraction(t *testing.T) {
	glass := NewDielectric(1.5)
	// A draw of 0.999 exceeds any non-grazing Schlick reflectance, forcing
	// the refraction branch.
	sampler := fixedSampler{value: 0.999}

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Expected scatter")
	}

	// Head-on rays pass straight through.
	if scatter.Scattered.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Head-on refraction should not bend, got %v", scatter.Scattered.Direction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	// Refraction would be chosen if possible; TIR must override it.
	sampler := fixedSampler{value: 0.999}

	// Exiting the glass at 45 degrees: ratio*sin(theta) = 1.5*0.707 > 1.
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Expected scatter")
	}

	expected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestReflectance_Schlick(t *testing.T) {
	// Normal incidence on glass: r0 = ((1-1.5)/(1+1.5))^2 = 0.04.
	r0 := Reflectance(1.0, 1.5)
	if math.Abs(r0-0.04) > 1e-12 {
		t.Errorf("Expected reflectance 0.04 at normal incidence, got %f", r0)
	}

	// Grazing incidence approaches full reflection.
	grazing := Reflectance(0.0, 1.5)
	if math.Abs(grazing-1.0) > 1e-12 {
		t.Errorf("Expected reflectance 1.0 at grazing incidence, got %f", grazing)
	}

	// Reflectance grows monotonically as the angle steepens.
	if Reflectance(0.5, 1.5) <= Reflectance(0.9, 1.5) {
		t.Error("Reflectance should increase as cosine decreases")
	}
}
