package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D pattern
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the sub-texture from the sign of sin(10x)·sin(10y)·sin(10z)
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}

// NoiseTexture is a grey Perlin noise field
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture sampling noise at scale·p
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Value returns 0.5·(1 + noise(scale·p)) in every channel
func (n *NoiseTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	grey := 0.5 * (1.0 + n.Noise.Noise(point.Multiply(n.Scale)))
	return core.NewVec3(grey, grey, grey)
}

// MarbleTexture phase-shifts a sine band along Z with turbulence
type MarbleTexture struct {
	Noise *Perlin
	Scale float64
}

// NewMarbleTexture creates a marble-like texture
func NewMarbleTexture(noise *Perlin, scale float64) *MarbleTexture {
	return &MarbleTexture{Noise: noise, Scale: scale}
}

// Value returns 0.5·(1 + sin(scale·z + 10·turb(p)))
func (m *MarbleTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	grey := 0.5 * (1.0 + math.Sin(m.Scale*point.Z+10*m.Noise.Turbulence(point, DefaultTurbulenceDepth)))
	return core.NewVec3(grey, grey, grey)
}
