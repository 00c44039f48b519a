package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-cornell-tracer/pkg/renderer"
	"github.com/df07/go-cornell-tracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 500, "Image width in pixels")
	height := flag.Int("height", 500, "Image height in pixels")
	samples := flag.Int("samples", 200, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum recursion depth (safety cap)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = all CPUs)")
	seed := flag.Int64("seed", 0, "Base random seed (0 = time-based)")
	output := flag.String("output", "output/cornell.png", "Output file (.png or .ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Cornell box path tracer")
		fmt.Println("Usage: go-cornell-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cornell := scene.NewCornellScene(float64(*width) / float64(*height))
	r := renderer.NewRenderer(cornell.Camera, cornell.World, cornell.LightSampler(), renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
		Seed:            *seed,
	}, logger)

	logger.Printf("rendering %dx%d at %d spp", *width, *height, *samples)
	startTime := time.Now()
	fb := r.Render()
	logger.Printf("render completed in %v", time.Since(startTime))

	if err := writeOutput(fb, *output); err != nil {
		logger.Fatalf("writing %s: %v", *output, err)
	}
	logger.Printf("wrote %s", *output)
}

// writeOutput saves the framebuffer, picking the format by file extension
func writeOutput(fb *renderer.Framebuffer, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return fb.WritePPM(file)
	}

	return fb.SavePNG(path)
}
