package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned rectangular prism made up of 6 rectangles
type Box struct {
	noLightSampling

	Min      core.Vec3
	Max      core.Vec3
	Material material.Material
	sides    *HittableList
}

// NewBox creates a box spanning the corners p0 and p1.
// The three min-side faces are wrapped in FlipFace so every hit from outside
// the box is a front face and every hit from inside is a back face. Glass
// boxes therefore refract with the correct ratio on all six sides, and an
// emissive box emits outward from every face.
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	lo := core.NewVec3(min(p0.X, p1.X), min(p0.Y, p1.Y), min(p0.Z, p1.Z))
	hi := core.NewVec3(max(p0.X, p1.X), max(p0.Y, p1.Y), max(p0.Z, p1.Z))

	// Faces on the min side have their +axis normal pointing into the box,
	// so they are flipped to keep front faces on the outside
	sides := NewHittableList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat),
		NewFlipFace(NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat)),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat),
		NewFlipFace(NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat)),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat),
		NewFlipFace(NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat)),
	)

	return &Box{
		Min:      lo,
		Max:      hi,
		Material: mat,
		sides:    sides,
	}
}

// Hit delegates to the six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box extents
func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max).Pad(), true
}

// Sides returns the face list of the box
func (b *Box) Sides() *HittableList {
	return b.sides
}
