package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// minPDFValue is the cutoff below which a sampled direction's mixture
// density is treated as zero and its contribution skipped, keeping
// NaN/Inf out of the framebuffer
const minPDFValue = 1e-12

// PathTracer estimates radiance with single-sample multiple importance
// sampling between light-directed sampling and the material's own PDF
type PathTracer struct {
	MaxDepth int // safety cap on recursion, not a quality parameter
}

// NewPathTracer creates a path tracer with the given recursion cap
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor computes the radiance arriving along a ray. lights may be nil
// when the scene has no emitting shapes worth sampling toward.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, lights core.Sampleable, depth int, random *rand.Rand) core.Vec3 {
	hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		// The box interior is fully enclosed; the background is black
		return core.Vec3{}
	}

	emitted := pt.emittedLight(ray, hit)
	if depth >= pt.MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular() {
		// A Dirac direction cannot be importance sampled against a light;
		// follow the deterministic ray directly
		return scatter.Attenuation.MultiplyVec(
			pt.RayColor(scatter.SpecularRay, world, lights, depth+1, random))
	}

	pdf := scatter.PDF
	if lights != nil {
		pdf = core.NewMixturePDF(core.NewShapePDF(lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRay(hit.Point, pdf.Generate(random), ray.Time)
	pdfValue := pdf.Value(scattered.Direction)
	if pdfValue < minPDFValue {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	incoming := pt.RayColor(scattered, world, lights, depth+1, random)

	return emitted.Add(
		scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue))
}

// emittedLight returns the emitted radiance from the hit material, if any
func (pt *PathTracer) emittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emitted(ray, hit)
	}
	return core.Vec3{}
}
