package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Band is a horizontal strip of image rows [Y0, Y1), the unit of work handed to a worker
type Band struct {
	ID int // Unique band identifier, also the seed offset of its sampler
	Y0 int
	Y1 int
}

// NewBandGrid splits height rows into bands of at most rowsPerBand rows
func NewBandGrid(height, rowsPerBand int) []Band {
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}

	var bands []Band
	for y0, id := 0, 0; y0 < height; y0, id = y0+rowsPerBand, id+1 {
		bands = append(bands, Band{
			ID: id,
			Y0: y0,
			Y1: min(y0+rowsPerBand, height),
		})
	}
	return bands
}

// BandRenderer renders the pixels of a band using an integrator
type BandRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewBandRenderer creates a new band renderer with the given scene and integrator
func NewBandRenderer(sc *scene.Scene, integratorInst integrator.Integrator) *BandRenderer {
	return &BandRenderer{
		scene:      sc,
		integrator: integratorInst,
	}
}

// RenderBand tops up every pixel of band to targetSamples samples.
// Bands never overlap, so concurrent calls on the shared grid need no locking.
func (br *BandRenderer) RenderBand(band Band, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) RenderStats {
	width := len(pixelStats[0])
	height := len(pixelStats)

	stats := RenderStats{TotalPixels: width * (band.Y1 - band.Y0)}

	for j := band.Y0; j < band.Y1; j++ {
		for i := 0; i < width; i++ {
			ps := &pixelStats[j][i]
			for ps.SampleCount < targetSamples {
				// Row 0 is the top of the image, v = 0 is the bottom of the camera plane
				jitter := sampler.Get2D()
				u := (float64(i) + jitter.X) / float64(width)
				v := (float64(height-1-j) + jitter.Y) / float64(height)

				ray := br.scene.Camera.GetRayAt(u, v, sampler)
				if ps.AddSample(br.integrator.RayColor(ray, br.scene, sampler)) {
					stats.NaNSamples++
				}
				stats.TotalSamples++
			}
		}
	}

	return stats
}
