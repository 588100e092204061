package pdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constantPDF always generates the same direction and reports a fixed density
type constantPDF struct {
	direction core.Vec3
	density   float64
}

func (c constantPDF) Value(direction core.Vec3) float64        { return c.density }
func (c constantPDF) Generate(sampler core.Sampler) core.Vec3 { return c.direction }

// mockTarget records the origin it was queried from
type mockTarget struct {
	lastOrigin core.Vec3
	density    float64
	direction  core.Vec3
}

func (m *mockTarget) PDFValue(origin, direction core.Vec3) float64 {
	m.lastOrigin = origin
	return m.density
}

func (m *mockTarget) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	m.lastOrigin = origin
	return m.direction
}

func TestCosinePDF_Value(t *testing.T) {
	p := NewCosinePDF(core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  float64
	}{
		{"along normal", core.NewVec3(0, 1, 0), 1 / math.Pi},
		{"along normal unnormalized", core.NewVec3(0, 5, 0), 1 / math.Pi},
		{"45 degrees", core.NewVec3(1, 1, 0), math.Cos(math.Pi/4) / math.Pi},
		{"grazing", core.NewVec3(1, 0, 0), 0},
		{"below surface", core.NewVec3(0, -1, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Value(tt.direction); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestCosinePDF_GenerateCoversHemisphere(t *testing.T) {
	normal := core.NewVec3(1, 2, -1).Normalize()
	p := NewCosinePDF(normal)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Estimate ∫ cos²θ dω = 2π/3 over the hemisphere by importance sampling
	sum := 0.0
	const n = 50000
	for i := 0; i < n; i++ {
		d := p.Generate(sampler)
		cosine := d.Normalize().Dot(normal)
		if cosine < -1e-12 {
			t.Fatalf("Generated direction %v is below the hemisphere", d)
		}
		if v := p.Value(d); v > 0 {
			sum += cosine * cosine / v
		}
	}

	estimate := sum / n
	expected := 2 * math.Pi / 3
	if math.Abs(estimate-expected)/expected > 0.02 {
		t.Errorf("Expected ∫cos²θ dω ≈ %f, got %f", expected, estimate)
	}
}

func TestSpherePDF(t *testing.T) {
	var p SpherePDF
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		d := p.Generate(sampler)
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got %v", d)
		}
		if math.Abs(p.Value(d)*4*math.Pi-1) > 1e-12 {
			t.Fatalf("Expected density 1/4π, got %f", p.Value(d))
		}
	}
}

func TestHittablePDF_DelegatesToTarget(t *testing.T) {
	origin := core.NewVec3(1, 2, 3)
	target := &mockTarget{density: 0.25, direction: core.NewVec3(0, 1, 0)}
	p := NewHittablePDF(target, origin)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	if v := p.Value(core.NewVec3(0, 1, 0)); v != 0.25 {
		t.Errorf("Expected delegated density 0.25, got %f", v)
	}
	if target.lastOrigin != origin {
		t.Errorf("Expected origin %v forwarded, got %v", origin, target.lastOrigin)
	}

	target.lastOrigin = core.Vec3{}
	if d := p.Generate(sampler); d != target.direction {
		t.Errorf("Expected delegated direction %v, got %v", target.direction, d)
	}
	if target.lastOrigin != origin {
		t.Errorf("Expected origin %v forwarded to Random, got %v", origin, target.lastOrigin)
	}
}

func TestMixturePDF_ValueIsEqualBlend(t *testing.T) {
	cosine := NewCosinePDF(core.NewVec3(0, 0, 1))
	var sphere SpherePDF
	mixture := NewMixturePDF(cosine, sphere)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		d := core.SampleOnUnitSphere(sampler.Get2D())
		expected := 0.5*cosine.Value(d) + 0.5*sphere.Value(d)
		if got := mixture.Value(d); got != expected {
			t.Fatalf("Direction %v: expected %f, got %f", d, expected, got)
		}
	}
}

func TestMixturePDF_GenerateSplitsEvenly(t *testing.T) {
	first := constantPDF{direction: core.NewVec3(1, 0, 0), density: 1}
	second := constantPDF{direction: core.NewVec3(0, 1, 0), density: 1}
	mixture := NewMixturePDF(first, second)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	const n = 100000
	fromFirst := 0
	for i := 0; i < n; i++ {
		if mixture.Generate(sampler) == first.direction {
			fromFirst++
		}
	}

	// Binomial standard deviation is ~0.0016 at this n
	fraction := float64(fromFirst) / n
	if math.Abs(fraction-0.5) > 0.01 {
		t.Errorf("Expected ~50%% of samples from the first PDF, got %.2f%%", fraction*100)
	}
}
