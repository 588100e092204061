package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// hitTMin offsets secondary rays off the surface they leave
const hitTMin = 0.001

// minPDFValue guards the Monte Carlo division against vanishing densities
const minPDFValue = 1e-12

// PathTracingIntegrator implements unidirectional path tracing that mixes
// light sampling with material sampling 50/50
type PathTracingIntegrator struct {
	config scene.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, sc, pt.config.MaxDepth, sampler)
}

// rayColor is the recursive estimator. Running out of depth returns black.
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, sc *scene.Scene, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := sc.World.Hit(ray, hitTMin, math.Inf(1))
	if !isHit {
		return sc.Background.Color(ray)
	}

	emitted := material.Emitted(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular {
		return emitted.Add(scatter.Attenuation.MultiplyVec(
			pt.rayColor(scatter.SpecularRay, sc, depth-1, sampler)))
	}

	samplingPDF := pt.samplingPDF(sc, hit.Point, scatter.PDF)
	scattered := core.NewRayAtTime(hit.Point, samplingPDF.Generate(sampler), ray.Time)

	pdfValue := samplingPDF.Value(scattered.Direction)
	if !(pdfValue > minPDFValue) {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	if scatteringPDF <= 0 {
		return emitted
	}

	incoming := pt.rayColor(scattered, sc, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue))
}

// samplingPDF returns the material PDF, mixed with a PDF aimed at the
// scene lights when light sampling is enabled and lights exist
func (pt *PathTracingIntegrator) samplingPDF(sc *scene.Scene, origin core.Vec3, materialPDF pdf.PDF) pdf.PDF {
	if pt.config.DisableLightSampling || !hasLights(sc.Lights) {
		return materialPDF
	}
	return pdf.NewMixturePDF(pdf.NewHittablePDF(sc.Lights, origin), materialPDF)
}

func hasLights(lights geometry.Hittable) bool {
	if lights == nil {
		return false
	}
	if list, ok := lights.(*geometry.HittableList); ok {
		return list != nil && list.Len() > 0
	}
	return true
}
