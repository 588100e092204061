package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates three spheres on a large ground sphere under a sky gradient:
// diffuse in the middle, a hollow glass bubble on the left and a mirror on the right
func NewDefaultScene(logger core.Logger) *Scene {
	samplingConfig := DefaultSamplingConfig()
	samplingConfig.Width = 400
	samplingConfig.Height = 300
	samplingConfig.MaxDepth = 40

	camera := newCamera(samplingConfig,
		core.NewVec3(-2, 2, 1),  // lookFrom
		core.NewVec3(0, 0, -1), // lookAt
		90,
	)

	// Create materials
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		// Negative radius flips the normals, leaving a thin glass shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, materialLeft),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	return &Scene{
		Name:   "default",
		Camera: camera,
		World:  world,
		Background: NewGradientBackground(
			core.NewVec3(1.0, 1.0, 1.0), // bottom (white)
			core.NewVec3(0.5, 0.7, 1.0), // top (blue sky)
		),
		SamplingConfig: samplingConfig,
	}
}
