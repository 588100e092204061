package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// textureImagePath is the image wrapped around the textured sphere.
// A missing file renders cyan.
const textureImagePath = "assets/earthmap.jpg"

// NewTextureScene creates a scene demonstrating the texture variants:
// a checkered ground, Perlin noise, marble and an image map
func NewTextureScene(logger core.Logger) *Scene {
	samplingConfig := DefaultSamplingConfig()
	samplingConfig.Width = 400
	samplingConfig.Height = 225
	samplingConfig.MaxDepth = 10

	camera := newCamera(samplingConfig,
		core.NewVec3(18, 4, 4),  // lookFrom
		core.NewVec3(0, 1.5, 0), // lookAt
		35,
	)

	perlin := material.NewPerlin(rand.New(rand.NewSource(samplingConfig.Seed)))

	checker := material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1), // Dark green
		core.NewVec3(0.9, 0.9, 0.9), // White
	)
	noise := material.NewNoiseTexture(perlin, 4)
	marble := material.NewMarbleTexture(perlin, 4)
	image := loaders.LoadImageTexture(textureImagePath, logger)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 2, -4.5), 2, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(marble)),
		geometry.NewSphere(core.NewVec3(0, 2, 4.5), 2, material.NewTexturedLambertian(image)),
	)

	return &Scene{
		Name:   "textures",
		Camera: camera,
		World:  world,
		Background: NewGradientBackground(
			core.NewVec3(1.0, 1.0, 1.0),
			core.NewVec3(0.5, 0.7, 1.0),
		),
		SamplingConfig: samplingConfig,
	}
}
