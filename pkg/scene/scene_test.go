package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// recordingLogger captures log lines for assertions
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func TestSamplingConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SamplingConfig)
		wantErr string
	}{
		{"default is valid", func(c *SamplingConfig) {}, ""},
		{"zero depth is valid", func(c *SamplingConfig) { c.MaxDepth = 0 }, ""},
		{"zero width", func(c *SamplingConfig) { c.Width = 0 }, "image size"},
		{"negative height", func(c *SamplingConfig) { c.Height = -1 }, "image size"},
		{"zero samples", func(c *SamplingConfig) { c.SamplesPerPixel = 0 }, "samples per pixel"},
		{"negative depth", func(c *SamplingConfig) { c.MaxDepth = -1 }, "max depth"},
		{"negative workers", func(c *SamplingConfig) { c.NumWorkers = -2 }, "worker count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultSamplingConfig()
			tt.modify(&config)
			err := config.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSamplingConfigValidateReportsAll(t *testing.T) {
	config := SamplingConfig{}
	err := config.Validate()
	if err == nil {
		t.Fatal("Expected error for empty config")
	}
	for _, want := range []string{"image size", "samples per pixel"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in %v", want, err)
		}
	}
}

func TestSamplingConfigWorkers(t *testing.T) {
	config := DefaultSamplingConfig()
	if config.Workers() < 1 {
		t.Errorf("Expected at least one worker, got %d", config.Workers())
	}
	config.NumWorkers = 3
	if config.Workers() != 3 {
		t.Errorf("Expected 3 workers, got %d", config.Workers())
	}
}

func TestBackgroundColor(t *testing.T) {
	bottom := core.NewVec3(1, 1, 1)
	top := core.NewVec3(0.5, 0.7, 1.0)
	gradient := NewGradientBackground(bottom, top)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), top},
		{"straight down", core.NewVec3(0, -1, 0), bottom},
		{"horizon", core.NewVec3(0, 0, -5), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gradient.Color(core.NewRay(core.Vec3{}, tt.direction))
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	solid := NewSolidBackground(core.NewVec3(0.2, 0.2, 0.2))
	if got := solid.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))); got != core.NewVec3(0.2, 0.2, 0.2) {
		t.Errorf("Expected solid color, got %v", got)
	}
}

func TestSetWidthKeepsAspectRatio(t *testing.T) {
	sc := NewDefaultScene(&recordingLogger{})
	sc.SetWidth(100)

	if sc.SamplingConfig.Width != 100 || sc.SamplingConfig.Height != 75 {
		t.Errorf("Expected 100x75, got %dx%d", sc.SamplingConfig.Width, sc.SamplingConfig.Height)
	}

	sc.SetWidth(1)
	if sc.SamplingConfig.Height < 1 {
		t.Errorf("Expected height of at least 1, got %d", sc.SamplingConfig.Height)
	}
}

func TestUseBVHMatchesList(t *testing.T) {
	sc := NewDefaultScene(&recordingLogger{})
	list := sc.World

	if err := sc.UseBVH(); err != nil {
		t.Fatalf("UseBVH failed: %v", err)
	}
	if _, ok := sc.World.(*geometry.BVH); !ok {
		t.Fatalf("Expected BVH world, got %T", sc.World)
	}

	sampler := core.NewSeededSampler(42)
	for i := 0; i < 200; i++ {
		s := sampler.Get2D()
		ray := sc.Camera.GetRay(s.X, s.Y)

		listHit, listOK := list.Hit(ray, 0.001, math.Inf(1))
		bvhHit, bvhOK := sc.World.Hit(ray, 0.001, math.Inf(1))
		if listOK != bvhOK {
			t.Fatalf("Ray %d: list hit %v, BVH hit %v", i, listOK, bvhOK)
		}
		if listOK && math.Abs(listHit.T-bvhHit.T) > 1e-9 {
			t.Errorf("Ray %d: list t=%f, BVH t=%f", i, listHit.T, bvhHit.T)
		}
	}
}

func TestCreateUnknownScene(t *testing.T) {
	_, err := Create("no-such-scene", &recordingLogger{})
	if err == nil {
		t.Fatal("Expected error for unknown scene")
	}
	if !strings.Contains(err.Error(), "cornell") {
		t.Errorf("Expected available scenes in error, got %v", err)
	}
}

func TestBuiltinScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != 6 {
		t.Fatalf("Expected 6 built-in scenes, got %d", len(scenes))
	}

	for _, info := range scenes {
		t.Run(info.ID, func(t *testing.T) {
			sc, err := Create(info.ID, &recordingLogger{})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if sc.Name != info.ID {
				t.Errorf("Expected scene name %q, got %q", info.ID, sc.Name)
			}
			if sc.Camera == nil || sc.World == nil {
				t.Fatal("Expected camera and world")
			}
			if err := sc.SamplingConfig.Validate(); err != nil {
				t.Errorf("Invalid sampling config: %v", err)
			}
			if _, ok := sc.World.BoundingBox(); !ok {
				t.Error("Expected a bounded world")
			}
			if err := sc.UseBVH(); err != nil {
				t.Errorf("UseBVH failed: %v", err)
			}
		})
	}
}

func TestCornellLights(t *testing.T) {
	sc := NewCornellScene(&recordingLogger{})

	light, ok := sc.Lights.(*geometry.AARect)
	if !ok {
		t.Fatalf("Expected the ceiling rect as the light, got %T", sc.Lights)
	}
	if light.Area() != 130*105 {
		t.Errorf("Expected light area %d, got %f", 130*105, light.Area())
	}

	// Looking up from the floor the light must emit
	ray := core.NewRay(core.NewVec3(278, 1, 278), core.NewVec3(0, 1, 0))
	hit, isHit := sc.World.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected to hit the ceiling light")
	}
	if emitted := material.Emitted(ray, hit); emitted.X <= 0 {
		t.Errorf("Expected the light to face down, got emission %v", emitted)
	}

	glass := NewCornellGlassScene(&recordingLogger{})
	if list, ok := glass.Lights.(*geometry.HittableList); !ok || list.Len() != 2 {
		t.Errorf("Expected light rect and glass sphere in the lights list, got %T", glass.Lights)
	}
}

func TestTextureSceneMissingImageIsLogged(t *testing.T) {
	logger := &recordingLogger{}
	NewTextureScene(logger)

	// The image asset is not shipped with the tests
	if len(logger.lines) == 0 {
		t.Error("Expected a warning for the missing texture image")
	}
}
