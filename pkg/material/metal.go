package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects about the normal, perturbed by fuzz.
// Perturbed rays that end up below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		SpecularRay: core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
		IsSpecular:  true,
		Attenuation: m.Albedo,
	}, true
}

// ScatteringPDF is zero; metal only scatters specularly
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}
