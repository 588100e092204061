package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellBoxSize = 555.0

// cornellBox holds the shared parts of the Cornell box variants
type cornellBox struct {
	walls []geometry.Hittable
	light *geometry.AARect // unflipped, used for light sampling
	white material.Material
}

// newCornellBox creates five walls (red left, green right, three white) and a
// ceiling light facing down into the box
func newCornellBox(lightX0, lightX1, lightZ0, lightZ1 float64, emission core.Vec3) cornellBox {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(emission)

	// Slightly below the ceiling so the two never coincide
	ceilingLight := geometry.NewXZRect(lightX0, lightX1, lightZ0, lightZ1, cornellBoxSize-1, light)

	walls := []geometry.Hittable{
		geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, green), // right wall
		geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, red),                // left wall
		geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, white),              // floor
		geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white), // ceiling
		geometry.NewXYRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white), // back wall
		// Emission is front face only; the rect faces +y, so flip it to shine down
		geometry.NewFlipFace(ceilingLight),
	}

	return cornellBox{walls: walls, light: ceilingLight, white: white}
}

// newCornellScene assembles a Cornell box scene with the standard camera
func newCornellScene(name string, box cornellBox, contents []geometry.Hittable, lights geometry.Hittable) *Scene {
	samplingConfig := DefaultSamplingConfig()
	samplingConfig.Width = 400
	samplingConfig.Height = 400 // Square aspect ratio for Cornell box
	samplingConfig.SamplesPerPixel = 200

	camera := newCamera(samplingConfig,
		core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		core.NewVec3(278, 278, 0),    // Look at the center of the box
		40,
	)

	world := geometry.NewHittableList(box.walls...)
	for _, object := range contents {
		world.Add(object)
	}

	return &Scene{
		Name:           name,
		Camera:         camera,
		World:          world,
		Lights:         lights,
		Background:     NewSolidBackground(core.Vec3{}), // Black background
		SamplingConfig: samplingConfig,
	}
}

// NewCornellScene creates a classic Cornell box with a tall and a short block
func NewCornellScene(logger core.Logger) *Scene {
	box := newCornellBox(213, 343, 227, 332, core.NewVec3(15, 15, 15))

	tallBlock := geometry.NewTranslate(
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), box.white),
		core.NewVec3(265, 0, 295),
	)
	shortBlock := geometry.NewTranslate(
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), box.white),
		core.NewVec3(130, 0, 65),
	)

	return newCornellScene("cornell", box, []geometry.Hittable{tallBlock, shortBlock}, box.light)
}

// NewCornellGlassScene creates a Cornell box with a tall block and a glass sphere.
// The sphere is sampled along with the light so caustics converge faster.
func NewCornellGlassScene(logger core.Logger) *Scene {
	box := newCornellBox(213, 343, 227, 332, core.NewVec3(15, 15, 15))

	tallBlock := geometry.NewTranslate(
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), box.white),
		core.NewVec3(265, 0, 295),
	)
	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))

	lights := geometry.NewHittableList(box.light, glassSphere)
	return newCornellScene("cornell-glass", box, []geometry.Hittable{tallBlock, glassSphere}, lights)
}

// NewCornellSmokeScene creates a Cornell box whose blocks are filled with dark
// smoke and light fog under a larger, dimmer light
func NewCornellSmokeScene(logger core.Logger) *Scene {
	box := newCornellBox(113, 443, 127, 432, core.NewVec3(7, 7, 7))

	smoke := geometry.NewConstantMedium(
		geometry.NewTranslate(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), box.white),
			core.NewVec3(265, 0, 295),
		),
		0.01,
		core.NewVec3(0, 0, 0),
	)
	fog := geometry.NewConstantMedium(
		geometry.NewTranslate(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), box.white),
			core.NewVec3(130, 0, 65),
		),
		0.01,
		core.NewVec3(1, 1, 1),
	)

	return newCornellScene("cornell-smoke", box, []geometry.Hittable{smoke, fog}, box.light)
}
