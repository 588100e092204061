package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	NaNSamples     int           // Samples with at least one NaN channel scrubbed to zero
	AverageSamples float64       // Average samples per pixel
	Duration       time.Duration // Wall time of the render call
}

// merge adds the counters of other into stats
func (stats *RenderStats) merge(other RenderStats) {
	stats.TotalPixels += other.TotalPixels
	stats.TotalSamples += other.TotalSamples
	stats.NaNSamples += other.NaNSamples
}

// finalize computes the derived averages
func (stats *RenderStats) finalize() {
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
	NaNCount    int       // Number of samples that needed scrubbing
}

// AddSample adds a new color sample to the pixel statistics.
// NaN channels contribute zero. Returns true if the sample was scrubbed.
func (ps *PixelStats) AddSample(color core.Vec3) bool {
	color, scrubbed := color.ScrubNaN()
	if scrubbed {
		ps.NaNCount++
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
	return scrubbed
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// newPixelStatsGrid allocates a height x width grid of empty pixel stats
func newPixelStatsGrid(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}
