package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. A negative radius flips the normals,
// which is how hollow glass shells are built.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first.
	// Negated range checks also reject NaN roots from degenerate rays.
	root := (-halfB - sqrtD) / a
	if !(root >= tMin && root <= tMax) {
		root = (-halfB + sqrtD) / a
		if !(root >= tMin && root <= tMax) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = SphereUV(outwardNormal)

	return hitRecord, true
}

// SphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from -Y (0) to +Y (1).
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}

// PDFValue returns 1 / solid angle of the cone the sphere subtends from origin.
// From inside the sphere every direction hits, so the density is uniform.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), lightSampleTMin, math.Inf(1)); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	return 1.0 / solidAngle
}

// Random samples a direction uniformly inside the cone the sphere subtends from origin
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}

	uvw := core.NewONBFromW(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}
