// Package pdf provides direction samplers paired with their densities, used
// to importance sample outgoing directions at a scattering event.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF draws directions and reports the density of any direction
// with respect to solid angle
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(sampler core.Sampler) core.Vec3
}

// Target is a shape that can be aimed at from a point, typically a light
type Target interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// CosinePDF is the cosine-weighted hemisphere around a normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF builds a cosine-weighted distribution about w
func NewCosinePDF(w core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONBFromW(w)}
}

// Value returns cos θ / π, or zero below the hemisphere
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate returns a cosine-weighted world-space direction
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.RandomCosineDirection(sampler.Get2D()))
}

// SpherePDF is the uniform distribution over all directions
type SpherePDF struct{}

// Value returns 1/(4π) for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniformly distributed unit direction
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// HittablePDF aims directions from an origin at a target shape
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a PDF sampling target as seen from origin
func NewHittablePDF(target Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value delegates to the target's solid angle density
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate delegates to the target's direction sampler
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}

// MixturePDF blends two PDFs with fixed equal weights
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF creates a 50/50 mixture of p0 and p1
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p: [2]PDF{p0, p1}}
}

// Value returns 0.5*p0(d) + 0.5*p1(d)
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate draws from p0 or p1 with equal probability
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
