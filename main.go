package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line. Zero values keep the scene's own settings.
type options struct {
	sceneType       string
	width           int
	samples         int
	depth           int
	workers         int
	seed            int64
	seedSet         bool
	passes          int
	output          string
	noLightSampling bool
	useBVH          bool
	help            bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.help {
		printHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()
	if _, err := run(ctx, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet binds the command line flags to opts
func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.StringVar(&opts.sceneType, "scene", "default", "Scene to render (see -help for the list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels; height follows the scene aspect ratio (0 = scene default)")
	fs.IntVar(&opts.samples, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = one per CPU)")
	fs.Int64Var(&opts.seed, "seed", 0, "Base random seed (default: scene seed)")
	fs.IntVar(&opts.passes, "passes", 1, "Number of progressive passes; the image is saved after each")
	fs.StringVar(&opts.output, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.noLightSampling, "no-light-sampling", false, "Sample only material directions, never lights")
	fs.BoolVar(&opts.useBVH, "bvh", false, "Wrap the scene in a bounding volume hierarchy")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs
}

// parseFlags parses command line arguments into options
func parseFlags(args []string) (options, error) {
	var opts options
	fs := newFlagSet(&opts)

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})

	if opts.width < 0 || opts.samples < 0 || opts.depth < 0 || opts.workers < 0 {
		return options{}, errors.New("-width, -spp, -depth and -workers must not be negative")
	}
	if opts.passes < 1 {
		return options{}, fmt.Errorf("-passes must be at least 1, got %d", opts.passes)
	}

	return opts, nil
}

func printHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs := newFlagSet(&options{})
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

// createScene builds the requested scene and applies command line overrides
func createScene(opts options, logger core.Logger) (*scene.Scene, error) {
	sc, err := scene.Create(opts.sceneType, logger)
	if err != nil {
		return nil, err
	}

	if opts.width > 0 {
		sc.SetWidth(opts.width)
	}
	if opts.samples > 0 {
		sc.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		sc.SamplingConfig.MaxDepth = opts.depth
	}
	if opts.seedSet {
		sc.SamplingConfig.Seed = opts.seed
	}
	sc.SamplingConfig.NumWorkers = opts.workers
	sc.SamplingConfig.DisableLightSampling = opts.noLightSampling

	if opts.useBVH {
		if err := sc.UseBVH(); err != nil {
			return nil, err
		}
	}

	return sc, nil
}

// outputPath returns the PNG path for a render started at startTime
func outputPath(opts options, startTime time.Time) string {
	if opts.output != "" {
		return opts.output
	}
	timestamp := startTime.Format("20060102_150405")
	return filepath.Join("output", opts.sceneType, fmt.Sprintf("render_%s.png", timestamp))
}

// run renders the selected scene and writes the PNG, returning its path
func run(ctx context.Context, opts options, logger core.Logger) (string, error) {
	sc, err := createScene(opts, logger)
	if err != nil {
		return "", err
	}

	config := sc.SamplingConfig
	logger.Printf("Rendering scene %q at %dx%d, %d samples per pixel, max depth %d, %d workers\n",
		sc.Name, config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, config.Workers())

	raytracer, err := renderer.NewRaytracer(sc, logger)
	if err != nil {
		return "", err
	}

	startTime := time.Now()
	filename := outputPath(opts, startTime)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	passChan, errChan := raytracer.RenderProgressive(ctx, opts.passes)
	var last renderer.PassResult
	for result := range passChan {
		if err := savePNG(filename, result.Frame); err != nil {
			return "", err
		}
		last = result
	}
	if err := <-errChan; err != nil {
		return "", err
	}

	logger.Printf("Render completed in %v (%.1f samples per pixel, %d NaN samples scrubbed)\n",
		time.Since(startTime), last.Stats.AverageSamples, last.Stats.NaNSamples)
	logger.Printf("Render saved as %s\n", filename)

	return filename, nil
}

// savePNG writes the frame as an 8-bit PNG
func savePNG(filename string, frame *renderer.Frame) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := png.Encode(file, frame.ToImage()); err != nil {
		file.Close()
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
