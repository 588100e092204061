package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
// Every Hittable can also serve as a light sampling target; shapes that are
// never sampled embed noLightSampling.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns false when the object has no finite bounds
	BoundingBox() (core.AABB, bool)

	// PDFValue is the solid angle density of sampling direction from origin
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin toward the object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// noLightSampling supplies the default sampling methods for shapes that are
// never used as light targets
type noLightSampling struct{}

// PDFValue is always zero
func (noLightSampling) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// Random returns an arbitrary fixed direction
func (noLightSampling) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// lightSampleTMin is the minimum ray parameter used when probing a light
// from a shading point
const lightSampleTMin = 0.001
