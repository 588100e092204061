package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Axis indices
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// AARect is an axis-aligned rectangle lying in the plane axis K = k.
// It spans [A0, A1] along axis A and [B0, B1] along axis B.
// The outward normal points along +K.
type AARect struct {
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material

	axisA, axisB, axisK int
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AARect {
	return newAARect(AxisX, AxisY, AxisZ, x0, x1, y0, y1, k, mat)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AARect {
	return newAARect(AxisX, AxisZ, AxisY, x0, x1, z0, z1, k, mat)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AARect {
	return newAARect(AxisY, AxisZ, AxisX, y0, y1, z0, z1, k, mat)
}

func newAARect(axisA, axisB, axisK int, a0, a1, b0, b1, k float64, mat material.Material) *AARect {
	return &AARect{
		A0: math.Min(a0, a1), A1: math.Max(a0, a1),
		B0: math.Min(b0, b1), B1: math.Max(b0, b1),
		K:        k,
		Material: mat,
		axisA:    axisA,
		axisB:    axisB,
		axisK:    axisK,
	}
}

// Normal returns the outward normal of the rectangle
func (r *AARect) Normal() core.Vec3 {
	return core.Vec3{}.WithAxis(r.axisK, 1)
}

// Area returns the area of the rectangle
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// Hit tests if a ray intersects the rectangle
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	directionK := ray.Direction.Axis(r.axisK)
	if directionK == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(r.axisK)) / directionK
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	point := ray.At(t)
	a := point.Axis(r.axisA)
	b := point.Axis(r.axisB)
	if !(a >= r.A0 && a <= r.A1 && b >= r.B0 && b <= r.B1) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		Material: r.Material,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
	}
	hitRecord.SetFaceNormal(ray, r.Normal())

	return hitRecord, true
}

// BoundingBox returns the rectangle bounds padded along the normal axis
func (r *AARect) BoundingBox() (core.AABB, bool) {
	lo := core.Vec3{}.WithAxis(r.axisA, r.A0).WithAxis(r.axisB, r.B0).WithAxis(r.axisK, r.K)
	hi := core.Vec3{}.WithAxis(r.axisA, r.A1).WithAxis(r.axisB, r.B1).WithAxis(r.axisK, r.K)
	return core.NewAABB(lo, hi).Pad(), true
}

// PDFValue converts the uniform area density to solid angle: d² / (|cos θ| · area)
func (r *AARect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), lightSampleTMin, math.Inf(1))
	if !ok {
		return 0
	}

	length := direction.Length()
	distanceSquared := hit.T * hit.T * length * length
	cosine := math.Abs(direction.Dot(hit.Normal) / length)
	if cosine == 0 {
		return 0
	}

	return distanceSquared / (cosine * r.Area())
}

// Random returns the vector from origin to a uniformly chosen point on the rectangle
func (r *AARect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := core.Vec3{}.
		WithAxis(r.axisA, r.A0+sample.X*(r.A1-r.A0)).
		WithAxis(r.axisB, r.B0+sample.Y*(r.B1-r.B0)).
		WithAxis(r.axisK, r.K)
	return point.Subtract(origin)
}
