package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the linear radiance arriving along ray.
	// The result may contain NaN; callers scrub it before accumulating.
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}
