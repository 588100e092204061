package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium filling a convex boundary
type ConstantMedium struct {
	noLightSampling

	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with an isotropic medium of the given density and color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// Hit samples a free-path distance through the medium and reports a scattering
// event if it lands before the ray leaves the boundary.
// The normal and front face of a volume hit are arbitrary.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1))
	if !ok {
		return nil, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if !(t0 < t1) {
		return nil, false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := m.NegInvDensity * math.Log(rand.Float64())
	if !(hitDistance <= distanceInsideBoundary) {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() (core.AABB, bool) {
	return m.Boundary.BoundingBox()
}
