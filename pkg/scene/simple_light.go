package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSimpleLightScene creates a red sphere on a noise-textured ground, lit only by
// an emissive rectangle behind it and a glowing sphere above it
func NewSimpleLightScene(logger core.Logger) *Scene {
	samplingConfig := DefaultSamplingConfig()
	samplingConfig.Width = 400
	samplingConfig.Height = 225
	samplingConfig.SamplesPerPixel = 200

	camera := newCamera(samplingConfig,
		core.NewVec3(26, 3, 6), // lookFrom
		core.NewVec3(0, 2, 0),  // lookAt
		20,
	)

	noise := material.NewNoiseTexture(material.NewPerlin(rand.New(rand.NewSource(samplingConfig.Seed))), 4)
	ground := material.NewTexturedLambertian(noise)
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	emission := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	rectLight := geometry.NewXYRect(3, 5, 1, 3, -2, emission)
	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, emission)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, red),
		rectLight,
		sphereLight,
	)

	return &Scene{
		Name:           "simple-light",
		Camera:         camera,
		World:          world,
		Lights:         geometry.NewHittableList(rectLight, sphereLight),
		Background:     NewSolidBackground(core.Vec3{}),
		SamplingConfig: samplingConfig,
	}
}
