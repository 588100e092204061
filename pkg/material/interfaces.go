package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter reports the outgoing event for a ray arriving at hit.
	// Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// ScatteringPDF is the density of scattering rayIn into scattered.
	// Zero for specular materials.
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3
}

// Emitted returns the radiance emitted at hit, or black for non-emissive materials
func Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	if emitter, ok := hit.Material.(Emitter); ok {
		return emitter.Emitted(rayIn, hit)
	}
	return core.Vec3{}
}

// ScatterRecord contains the result of material scattering.
// Either IsSpecular is set and SpecularRay is the deterministic continuation,
// or PDF describes the distribution of outgoing directions.
type ScatterRecord struct {
	SpecularRay core.Ray
	IsSpecular  bool
	Attenuation core.Vec3
	PDF         pdf.PDF
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always opposing the incoming ray
	Material  Material  // Material of the hit object (shared, not owned)
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
