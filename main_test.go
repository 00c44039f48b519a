package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-cornell-tracer/pkg/renderer"
	"github.com/df07/go-cornell-tracer/pkg/scene"
)

// TestRenderPipeline exercises the full scene-to-file pipeline at a tiny
// resolution
func TestRenderPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end render in short mode")
	}

	cornell := scene.NewCornellScene(1.0)
	r := renderer.NewRenderer(cornell.Camera, cornell.World, cornell.LightSampler(), renderer.Config{
		Width:           16,
		Height:          16,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		NumWorkers:      4,
		Seed:            42,
	}, nil)

	fb := r.Render()

	var total float64
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := fb.At(x, y)
			total += c.X + c.Y + c.Z
		}
	}
	if total <= 0 {
		t.Fatal("Expected the Cornell box to render non-black pixels")
	}

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.ppm"} {
		path := filepath.Join(dir, name)
		if err := writeOutput(fb, path); err != nil {
			t.Fatalf("writeOutput(%s) failed: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Fatalf("Expected a non-empty %s", name)
		}
	}
}

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	fb := renderer.NewFramebuffer(2, 2)
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.ppm")

	if err := writeOutput(fb, path); err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n") {
		t.Errorf("Expected a PPM file, got %q", string(data[:min(len(data), 10)]))
	}
}
