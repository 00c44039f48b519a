package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-cornell-tracer/pkg/core"
	"github.com/df07/go-cornell-tracer/pkg/integrator"
)

// Config holds the render-quality and scheduling knobs
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int   // recursion safety cap
	NumWorkers      int   // 0 means runtime.NumCPU()
	Seed            int64 // base seed for the per-row random streams
}

// Renderer partitions the image into independent row tasks and renders
// them in parallel. The scene is read-only and shared by all workers; each
// row owns a private random stream, so rows are disjoint and lock-free.
type Renderer struct {
	camera *Camera
	world  core.Hittable
	lights core.Sampleable
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene objects
func NewRenderer(camera *Camera, world core.Hittable, lights core.Sampleable, config Config, logger core.Logger) *Renderer {
	return &Renderer{
		camera: camera,
		world:  world,
		lights: lights,
		config: config,
		logger: logger,
	}
}

// Render runs the full render to completion and returns the framebuffer
func (r *Renderer) Render() *Framebuffer {
	fb := NewFramebuffer(r.config.Width, r.config.Height)
	tracer := integrator.NewPathTracer(r.config.MaxDepth)

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, r.config.Height)
	var completed atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(tracer, fb, y)
				r.logProgress(int(completed.Add(1)))
			}
		}()
	}

	for y := 0; y < r.config.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return fb
}

// renderRow renders one image row with its own random stream. Seeding from
// the base seed plus the row index keeps each row reproducible regardless
// of which worker picks it up.
func (r *Renderer) renderRow(tracer *integrator.PathTracer, fb *Framebuffer, y int) {
	random := rand.New(rand.NewSource(r.config.Seed + int64(y)))
	invSamples := 1.0 / float64(r.config.SamplesPerPixel)

	for x := 0; x < r.config.Width; x++ {
		var accumulated core.Vec3
		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			s := (float64(x) + random.Float64()) / float64(r.config.Width)
			// Flip v so row 0 lands at the top of the image
			t := (float64(r.config.Height-1-y) + random.Float64()) / float64(r.config.Height)

			ray := r.camera.GetRay(s, t, random)
			accumulated = accumulated.Add(tracer.RayColor(ray, r.world, r.lights, 0, random))
		}
		fb.Set(x, y, accumulated.Multiply(invSamples))
	}
}

// logProgress reports completion at roughly 10% intervals
func (r *Renderer) logProgress(completedRows int) {
	if r.logger == nil {
		return
	}

	step := r.config.Height / 10
	if step == 0 {
		step = 1
	}
	if completedRows%step == 0 || completedRows == r.config.Height {
		r.logger.Printf("rendered %d/%d rows (%.0f%%)",
			completedRows, r.config.Height,
			100*float64(completedRows)/float64(r.config.Height))
	}
}
