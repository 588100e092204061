package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	LookFrom    core.Vec3 // Eye position
	LookAt      core.Vec3 // Point the camera faces
	Up          core.Vec3 // World up vector
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
	Time0       float64   // Shutter open
	Time1       float64   // Shutter close
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	forward         core.Vec3
	time0, time1    float64
}

// NewCamera creates a look-at camera
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		forward:         w.Negate(),
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0,0) is the bottom-left of the image plane.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRayAtTime(c.origin, direction, c.time0)
}

// GetRayAt is GetRay with a time drawn uniformly from the shutter interval
func (c *Camera) GetRayAt(s, t float64, sampler core.Sampler) core.Ray {
	ray := c.GetRay(s, t)
	if c.time1 > c.time0 {
		ray.Time = c.time0 + sampler.Get1D()*(c.time1-c.time0)
	}
	return ray
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}
