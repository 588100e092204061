package scene

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// It is read-only once a render starts.
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	World          geometry.Hittable // Objects in the scene
	Lights         geometry.Hittable // Shapes aimed at by light sampling, nil for none
	Background     Background
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width                int   // Image width
	Height               int   // Image height
	SamplesPerPixel      int   // Number of rays per pixel
	MaxDepth             int   // Maximum ray bounce depth
	NumWorkers           int   // Worker goroutines, 0 for one per CPU
	RowsPerTask          int   // Image rows per worker task
	Seed                 int64 // Base seed for per-task random sources
	DisableLightSampling bool  // Sample only material PDFs
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		RowsPerTask:     4,
		Seed:            42,
	}
}

// Validate rejects configurations that cannot produce an image
func (c SamplingConfig) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth))
	}
	if c.NumWorkers < 0 {
		errs = append(errs, fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers))
	}
	return errors.Join(errs...)
}

// Workers returns the effective worker count
func (c SamplingConfig) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Background is the radiance returned for rays that escape the scene.
// It blends vertically from Bottom to Top; equal colors give a constant background.
type Background struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) Background {
	return Background{Top: color, Bottom: color}
}

// NewGradientBackground creates a sky-like vertical gradient
func NewGradientBackground(bottom, top core.Vec3) Background {
	return Background{Top: top, Bottom: bottom}
}

// Color returns the background radiance seen along ray
func (b Background) Color(ray core.Ray) core.Vec3 {
	if b.Top == b.Bottom {
		return b.Top
	}

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// UseBVH replaces a world list with a bounding volume hierarchy over its members
func (s *Scene) UseBVH() error {
	list, ok := s.World.(*geometry.HittableList)
	if !ok {
		return nil
	}
	bvh, err := geometry.NewBVH(list.Objects)
	if err != nil {
		return fmt.Errorf("failed to build BVH for scene %q: %w", s.Name, err)
	}
	s.World = bvh
	return nil
}

// SetWidth changes the image width and derives the height from the current
// aspect ratio, so the camera built for this scene stays undistorted
func (s *Scene) SetWidth(width int) {
	aspectRatio := s.SamplingConfig.AspectRatio()
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = max(1, int(math.Round(float64(width)/aspectRatio)))
}

// newCamera builds a camera matching the configured aspect ratio
func newCamera(config SamplingConfig, lookFrom, lookAt core.Vec3, vfov float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		LookFrom:    lookFrom,
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfov,
		AspectRatio: config.AspectRatio(),
	})
}
