package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Raytracer renders a scene into a shared grid of pixel statistics.
// Repeated renders keep adding samples to the same grid.
type Raytracer struct {
	scene       *scene.Scene
	config      scene.SamplingConfig
	bands       []Band
	pixelStats  [][]PixelStats // Shared pixel statistics array (global image coordinates)
	renderer    *BandRenderer
	logger      core.Logger
	currentPass int
}

// NewRaytracer creates a raytracer for the scene using its sampling configuration
func NewRaytracer(sc *scene.Scene, logger core.Logger) (*Raytracer, error) {
	if sc == nil {
		return nil, errors.New("scene is nil")
	}
	if err := sc.SamplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config for scene %q: %w", sc.Name, err)
	}
	if sc.Camera == nil || sc.World == nil {
		return nil, fmt.Errorf("scene %q needs a camera and a world", sc.Name)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	config := sc.SamplingConfig
	pathTracer := integrator.NewPathTracingIntegrator(config)

	return &Raytracer{
		scene:      sc,
		config:     config,
		bands:      NewBandGrid(config.Height, config.RowsPerTask),
		pixelStats: newPixelStatsGrid(config.Width, config.Height),
		renderer:   NewBandRenderer(sc, pathTracer),
		logger:     logger,
	}, nil
}

// Render brings every pixel up to the configured samples per pixel
// and returns the averaged frame
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	return rt.RenderPass(ctx, rt.currentPass+1, rt.config.SamplesPerPixel)
}

// RenderPass tops up every pixel to targetSamples using the worker pool.
// Band samplers are seeded from the config seed, the pass and the band,
// so the result does not depend on the number of workers.
func (rt *Raytracer) RenderPass(ctx context.Context, passNumber, targetSamples int) (*Frame, RenderStats, error) {
	startTime := time.Now()
	rt.currentPass = passNumber

	pool := NewWorkerPool(rt.renderer, rt.config.Workers(), len(rt.bands))
	pool.Start(ctx)

	for _, band := range rt.bands {
		pool.SubmitTask(BandTask{
			Band:          band,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			Seed:          rt.taskSeed(passNumber, band),
			PixelStats:    rt.pixelStats,
		})
	}
	pool.Stop()

	var passStats RenderStats
	var skipped int
	var taskErr error
	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		if result.Error != nil {
			skipped++
			taskErr = result.Error
			continue
		}
		passStats.merge(result.Stats)
	}
	if taskErr != nil {
		return nil, RenderStats{}, fmt.Errorf("render pass %d: %d of %d bands skipped: %w",
			passNumber, skipped, len(rt.bands), taskErr)
	}

	frame, stats := rt.assembleCurrentFrame()
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Pass %d: %d new samples (%d NaN) on %d workers in %v\n",
		passNumber, passStats.TotalSamples, passStats.NaNSamples, pool.GetNumWorkers(), stats.Duration)

	return frame, stats, nil
}

// taskSeed returns the sampler seed for a band in a pass
func (rt *Raytracer) taskSeed(passNumber int, band Band) int64 {
	return rt.config.Seed + int64((passNumber-1)*len(rt.bands)+band.ID)
}

// assembleCurrentFrame averages the shared pixel stats and totals the
// statistics in a single sweep
func (rt *Raytracer) assembleCurrentFrame() (*Frame, RenderStats) {
	stats := RenderStats{TotalPixels: rt.config.Width * rt.config.Height}

	for y := range rt.pixelStats {
		for x := range rt.pixelStats[y] {
			pixel := &rt.pixelStats[y][x]
			stats.TotalSamples += pixel.SampleCount
			stats.NaNSamples += pixel.NaNCount
		}
	}
	stats.finalize()

	return newFrameFromStats(rt.pixelStats), stats
}
