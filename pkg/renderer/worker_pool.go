package renderer

import (
	"context"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band          Band
	PassNumber    int
	TargetSamples int
	Seed          int64          // Seed of the sampler owned by this task
	PixelStats    [][]PixelStats // Shared pixel stats array to write to
}

// BandResult contains the result from rendering a band
type BandResult struct {
	BandID int
	Stats  RenderStats
	Error  error // Set when the task was skipped
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	renderer    *BandRenderer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with numWorkers workers sharing one band renderer.
// Queues are buffered for maxTasks so a full pass can be submitted without blocking.
func NewWorkerPool(renderer *BandRenderer, numWorkers, maxTasks int) *WorkerPool {
	numWorkers = max(1, numWorkers)

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers. Once ctx is done, queued tasks are skipped
// and reported with the context error.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- BandResult{BandID: task.Band.ID, Error: err}
			continue
		}

		// Each task owns its sampler so results do not depend on scheduling
		sampler := core.NewSeededSampler(task.Seed)
		stats := w.renderer.RenderBand(task.Band, task.PixelStats, sampler, task.TargetSamples)

		w.resultQueue <- BandResult{
			BandID: task.Band.ID,
			Stats:  stats,
		}
	}
}
