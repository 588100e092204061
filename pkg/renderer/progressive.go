package renderer

import (
	"context"
)

// PassResult contains the result of a single progressive pass
type PassResult struct {
	PassNumber int
	Frame      *Frame
	Stats      RenderStats
	IsLast     bool
}

// getSamplesForPass calculates the target total samples for a given pass.
// The first pass is a one-sample preview, the last pass reaches maxSamples,
// and the passes in between divide the remainder evenly.
func getSamplesForPass(passNumber, maxPasses, maxSamples int) int {
	if maxPasses <= 1 || passNumber >= maxPasses {
		return maxSamples
	}
	if passNumber == 1 {
		return 1
	}

	samplesPerPass := (maxSamples - 1) / (maxPasses - 1)
	return min(maxSamples, 1+(passNumber-1)*samplesPerPass)
}

// RenderProgressive renders in maxPasses passes of increasing sample count,
// sending the frame after each pass. Both channels are closed when rendering
// stops; the error channel carries at most one error.
func (rt *Raytracer) RenderProgressive(ctx context.Context, maxPasses int) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	maxPasses = max(1, min(maxPasses, rt.config.SamplesPerPixel))

	go func() {
		defer close(passChan)
		defer close(errChan)

		rt.logger.Printf("Starting progressive rendering with %d passes...\n", maxPasses)

		for pass := 1; pass <= maxPasses; pass++ {
			// Check for cancellation before starting this pass
			select {
			case <-ctx.Done():
				rt.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			targetSamples := getSamplesForPass(pass, maxPasses, rt.config.SamplesPerPixel)
			frame, stats, err := rt.RenderPass(ctx, pass, targetSamples)
			if err != nil {
				errChan <- err
				return
			}

			result := PassResult{
				PassNumber: pass,
				Frame:      frame,
				Stats:      stats,
				IsLast:     pass == maxPasses,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}
