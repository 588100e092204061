package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_FrontFaceOnly(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	light := NewDiffuseLight(emission)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name      string
		frontFace bool
		expected  core.Vec3
	}{
		{"Front face emits", true, emission},
		{"Back face is dark", false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := &HitRecord{
				Point:     core.NewVec3(0, 0, 0),
				Normal:    core.NewVec3(0, 1, 0),
				FrontFace: tt.frontFace,
				Material:  light,
			}
			if got := Emitted(ray, hit); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, scattered := light.Scatter(ray, hit, sampler); scattered {
		t.Error("Diffuse light should absorb every ray")
	}
}

func TestEmitted_NonEmissiveMaterial(t *testing.T) {
	hit := &HitRecord{FrontFace: true, Material: NewLambertian(core.NewVec3(1, 1, 1))}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if got := Emitted(ray, hit); !got.Equals(core.Vec3{}) {
		t.Errorf("Expected no emission from lambertian, got %v", got)
	}
}

func TestIsotropic(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	iso := NewIsotropic(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := &HitRecord{Point: core.NewVec3(1, 1, 1), Normal: core.NewVec3(1, 0, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(1, 0, 0))

	scatter, ok := iso.Scatter(ray, hit, sampler)
	if !ok || scatter.IsSpecular {
		t.Fatal("Isotropic should always scatter diffusely")
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	expected := 1.0 / (4.0 * math.Pi)
	for i := 0; i < 20; i++ {
		direction := scatter.PDF.Generate(sampler)
		if math.Abs(direction.Length()-1) > 1e-9 {
			t.Errorf("Expected unit direction, got length %f", direction.Length())
		}
		if got := iso.ScatteringPDF(ray, hit, core.NewRay(hit.Point, direction)); math.Abs(got-expected) > 1e-12 {
			t.Errorf("Expected scattering PDF %f, got %f", expected, got)
		}
	}
}
