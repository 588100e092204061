package core

import "math"

// MinAABBThickness is the padding applied to a degenerate axis so slab tests
// never see a zero-thickness box
const MinAABBThickness = 1e-4

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method.
// The interval is rejected as soon as tMax <= tMin.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel rays only hit if the origin is already inside the slab
		if direction == 0 {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invD := 1.0 / direction
		t0 := (min - origin) * invD
		t1 := (max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return SurroundingBox(aabb, other)
}

// SurroundingBox returns the component-wise min of minimums and max of maximums
func SurroundingBox(a, b AABB) AABB {
	small := Vec3{
		X: math.Min(a.Min.X, b.Min.X),
		Y: math.Min(a.Min.Y, b.Min.Y),
		Z: math.Min(a.Min.Z, b.Min.Z),
	}
	big := Vec3{
		X: math.Max(a.Max.X, b.Max.X),
		Y: math.Max(a.Max.Y, b.Max.Y),
		Z: math.Max(a.Max.Z, b.Max.Z),
	}
	return AABB{Min: small, Max: big}
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Pad widens every axis thinner than MinAABBThickness to that thickness
func (aabb AABB) Pad() AABB {
	for axis := 0; axis < 3; axis++ {
		lo, hi := aabb.Min.Axis(axis), aabb.Max.Axis(axis)
		if hi-lo < MinAABBThickness {
			mid := 0.5 * (lo + hi)
			aabb.Min = aabb.Min.WithAxis(axis, mid-MinAABBThickness)
			aabb.Max = aabb.Max.WithAxis(axis, mid+MinAABBThickness)
		}
	}
	return aabb
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
