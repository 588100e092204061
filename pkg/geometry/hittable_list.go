package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is an ordered collection of hittables tested linearly.
//
// As a light target it averages PDFValue over all members but Random picks a
// single member uniformly. The two are not a matched pair for members whose
// densities overlap; this is kept deliberately.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit across all members
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes.
// Fails if the list is empty or any member is unbounded.
func (l *HittableList) BoundingBox() (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, object := range l.Objects {
		box, ok := object.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = core.SurroundingBox(result, box)
		}
	}
	return result, true
}

// PDFValue returns the average of the member densities
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// Random delegates to one member chosen uniformly
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(l.Objects)
	if n == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := int(sampler.Get1D() * float64(n))
	if index >= n {
		index = n - 1
	}
	return l.Objects[index].Random(origin, sampler)
}
