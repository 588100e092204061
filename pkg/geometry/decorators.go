package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a hittable by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit intersects the object with the ray moved into its local frame.
// The inner front face decision is kept and the normal re-oriented
// against the caller's ray.
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)
	hit, ok := tr.Object.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	outwardNormal := hit.Normal
	if !hit.FrontFace {
		outwardNormal = outwardNormal.Negate()
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the wrapped box shifted by the offset
func (tr *Translate) BoundingBox() (core.AABB, bool) {
	box, ok := tr.Object.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}

// PDFValue evaluates the wrapped density from the origin in the local frame
func (tr *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return tr.Object.PDFValue(origin.Subtract(tr.Offset), direction)
}

// Random samples the wrapped object from the origin in the local frame
func (tr *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return tr.Object.Random(origin.Subtract(tr.Offset), sampler)
}

// FlipFace inverts the front face flag of the wrapped hittable, making
// one-sided emitters face the other way
type FlipFace struct {
	Object Hittable
}

// NewFlipFace wraps object with its front face inverted
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates unchanged and inverts FrontFace
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox returns the wrapped bounding box
func (f *FlipFace) BoundingBox() (core.AABB, bool) {
	return f.Object.BoundingBox()
}

// PDFValue delegates to the wrapped hittable
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return f.Object.PDFValue(origin, direction)
}

// Random delegates to the wrapped hittable
func (f *FlipFace) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return f.Object.Random(origin, sampler)
}
