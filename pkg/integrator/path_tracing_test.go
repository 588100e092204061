package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var skyBackground = scene.NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))

// createTestScene creates a simple scene with a sphere under a sky gradient
func createTestScene() *scene.Scene {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian)

	return &scene.Scene{
		World:      geometry.NewHittableList(sphere),
		Background: skyBackground,
		SamplingConfig: scene.SamplingConfig{
			MaxDepth: 10,
		},
	}
}

// createLitFloorScene creates a diffuse floor under a small downward-facing light
func createLitFloorScene() (*scene.Scene, *geometry.AARect) {
	floor := geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	light := geometry.NewXZRect(-0.5, 0.5, -0.5, 0.5, 2, material.NewDiffuseLight(core.NewVec3(10, 10, 10)))

	return &scene.Scene{
		World:      geometry.NewHittableList(floor, geometry.NewFlipFace(light)),
		Lights:     light,
		Background: scene.NewSolidBackground(core.Vec3{}),
	}, light
}

// zeroPDF never assigns density to anything
type zeroPDF struct{}

func (zeroPDF) Value(direction core.Vec3) float64 { return 0 }
func (zeroPDF) Generate(s core.Sampler) core.Vec3 { return core.NewVec3(0, 1, 0) }

// zeroMaterial scatters diffusely with a degenerate PDF
type zeroMaterial struct{}

func (zeroMaterial) Scatter(rayIn core.Ray, hit *material.HitRecord, sampler core.Sampler) (material.ScatterRecord, bool) {
	return material.ScatterRecord{Attenuation: core.NewVec3(1, 1, 1), PDF: zeroPDF{}}, true
}

func (zeroMaterial) ScatteringPDF(rayIn core.Ray, hit *material.HitRecord, scattered core.Ray) float64 {
	return 1
}

func (zeroMaterial) Emitted(rayIn core.Ray, hit *material.HitRecord) core.Vec3 {
	return core.NewVec3(0.25, 0.25, 0.25)
}

var _ pdf.PDF = zeroPDF{}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	sc := createTestScene()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray pointing at the sphere
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Test with depth 0 (should return black, even for a ray that would miss)
	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 0})
	if color := integrator.RayColor(ray, sc, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", color)
	}
	missing := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if color := integrator.RayColor(missing, sc, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0 miss, got %v", color)
	}

	// Test with positive depth (should return some color)
	integrator = NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 3})
	if color := integrator.RayColor(ray, sc, sampler); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

// TestPathTracingMissedRay tests background handling for rays that miss all objects
func TestPathTracingMissedRay(t *testing.T) {
	sc := createTestScene()
	integrator := NewPathTracingIntegrator(sc.SamplingConfig)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := integrator.RayColor(ray, sc, sampler)

	expected := core.NewVec3(0.5, 0.7, 1.0)
	if !color.Equals(expected) {
		t.Errorf("Expected background color %v, got %v", expected, color)
	}
}

// TestPathTracingSpecularMaterial tests specular material handling
func TestPathTracingSpecularMaterial(t *testing.T) {
	metal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0) // Perfect mirror
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, metal)
	sc := &scene.Scene{
		World:      geometry.NewHittableList(sphere),
		Background: skyBackground,
	}

	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 5})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Head-on ray reflects straight back into the horizon color
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := integrator.RayColor(ray, sc, sampler)

	expected := skyBackground.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))).Multiply(0.8)
	if !color.Equals(expected) {
		t.Errorf("Expected mirrored background %v, got %v", expected, color)
	}
}

// TestPathTracingEmissiveMaterial tests emissive material handling
func TestPathTracingEmissiveMaterial(t *testing.T) {
	emission := core.NewVec3(2.0, 1.0, 0.5) // Bright orange light
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuseLight(emission))
	sc := &scene.Scene{
		World:      geometry.NewHittableList(sphere),
		Background: scene.NewSolidBackground(core.Vec3{}),
	}

	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 10})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Outside: front face emits
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if color := integrator.RayColor(ray, sc, sampler); !color.Equals(emission) {
		t.Errorf("Expected emission %v, got %v", emission, color)
	}

	// Inside: back face is dark
	inside := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1))
	if color := integrator.RayColor(inside, sc, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black from the back face, got %v", color)
	}
}

// TestPathTracingDeterministic tests that identical inputs produce identical outputs
func TestPathTracingDeterministic(t *testing.T) {
	sc, _ := createLitFloorScene()
	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 8})

	ray := core.NewRay(core.NewVec3(0, 1, 3), core.NewVec3(0, -1, -3))

	sampler1 := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	color1 := integrator.RayColor(ray, sc, sampler1)

	sampler2 := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	color2 := integrator.RayColor(ray, sc, sampler2)

	if color1 != color2 {
		t.Errorf("Expected deterministic results, got %v and %v", color1, color2)
	}
}

// TestPathTracingDegeneratePDF tests that a vanishing density stops the path
func TestPathTracingDegeneratePDF(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, zeroMaterial{})
	sc := &scene.Scene{
		World:      geometry.NewHittableList(sphere),
		Background: scene.NewSolidBackground(core.NewVec3(1, 1, 1)),
	}
	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 5})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	color := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, sampler)
	if math.IsNaN(color.X) || math.IsInf(color.X, 0) {
		t.Fatalf("Expected finite color, got %v", color)
	}
	if !color.Equals(core.NewVec3(0.25, 0.25, 0.25)) {
		t.Errorf("Expected emitted light only, got %v", color)
	}
}

// Light sampling and material-only sampling estimate the same radiance
func TestPathTracingLightSamplingUnbiased(t *testing.T) {
	sc, _ := createLitFloorScene()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	estimate := func(config scene.SamplingConfig, seed int64) (mean, variance float64) {
		integrator := NewPathTracingIntegrator(config)
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		const n = 40000
		sum, sumSq := 0.0, 0.0
		for i := 0; i < n; i++ {
			v := integrator.RayColor(ray, sc, sampler).X
			sum += v
			sumSq += v * v
		}
		mean = sum / n
		return mean, sumSq/n - mean*mean
	}

	// Depth 2 measures direct lighting only
	mixedMean, mixedVar := estimate(scene.SamplingConfig{MaxDepth: 2}, 1)
	materialMean, materialVar := estimate(scene.SamplingConfig{MaxDepth: 2, DisableLightSampling: true}, 2)

	if mixedMean <= 0 {
		t.Fatal("Expected the floor to be lit")
	}
	if math.Abs(mixedMean-materialMean)/mixedMean > 0.1 {
		t.Errorf("Estimators disagree: mixture %f, material only %f", mixedMean, materialMean)
	}
	if mixedVar >= materialVar {
		t.Errorf("Expected light sampling to reduce variance: mixture %f, material only %f", mixedVar, materialVar)
	}
}

// Without light sampling, depth 1 can only see lights directly
func TestPathTracingDepthOneSeesOnlyEmission(t *testing.T) {
	sc, _ := createLitFloorScene()
	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 1})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	floorRay := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	if color := integrator.RayColor(floorRay, sc, sampler); color != (core.Vec3{}) {
		t.Errorf("Expected black for an unlit bounce at depth 1, got %v", color)
	}

	lightRay := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	if color := integrator.RayColor(lightRay, sc, sampler); !color.Equals(core.NewVec3(10, 10, 10)) {
		t.Errorf("Expected light emission looking up, got %v", color)
	}
}

// A nil *HittableList stored in Scene.Lights counts as no lights
func TestPathTracingTypedNilLights(t *testing.T) {
	sc := createTestScene()
	var noLights *geometry.HittableList
	sc.Lights = noLights

	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 5})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	color := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), sc, sampler)
	if math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z) {
		t.Errorf("Expected finite color, got %v", color)
	}
}

// Degenerate rays miss everything and return the background
func TestPathTracingDegenerateRay(t *testing.T) {
	texture := material.NewImageTexture(2, 2, []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	})
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewTexturedLambertian(texture))
	background := core.NewVec3(0.2, 0.3, 0.4)
	sc := &scene.Scene{
		World:      geometry.NewHittableList(sphere),
		Background: scene.NewSolidBackground(background),
	}
	integrator := NewPathTracingIntegrator(scene.SamplingConfig{MaxDepth: 5})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	nan := math.NaN()
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0.5), core.Vec3{}),
		core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(nan, nan, nan)),
	}
	for i, ray := range rays {
		if color := integrator.RayColor(ray, sc, sampler); !color.Equals(background) {
			t.Errorf("Ray %d: expected background %v, got %v", i, background, color)
		}
	}
}
