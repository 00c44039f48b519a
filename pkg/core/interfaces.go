package core

import "math/rand"

// Logger interface for render progress output
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection.
// Normal is the geometric outward normal and is never flipped toward the
// ray: one-sided emission and the dielectric entering/exiting test both
// read its raw orientation.
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Geometric surface normal at intersection
	U, V     float64  // Texture coordinates
	Material Material // Material of the hit object
}

// Hittable is any shape that answers ray intersection queries.
// Hit returns the nearest intersection within [tMin, tMax], or false.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Sampleable is a shape that can additionally be importance sampled from an
// external point, for directing rays toward area lights
type Sampleable interface {
	Hittable

	// SampleDirection returns a random direction from origin toward the shape.
	// The returned direction is not required to be unit length.
	SampleDirection(origin Vec3, random *rand.Rand) Vec3

	// DirectionPDF returns the solid-angle density of SampleDirection at the
	// given direction, or 0 if a ray from origin along direction misses
	DirectionPDF(origin, direction Vec3) float64
}

// PDF pairs a stochastic direction sampler with a deterministic density
// evaluator over the same distribution
type PDF interface {
	Generate(random *rand.Rand) Vec3
	Value(direction Vec3) float64
}

// ScatterRecord describes the outcome of a scattering event. Specular
// events carry a single deterministic outgoing ray and a nil PDF; diffuse
// events carry a distribution over outgoing directions instead.
type ScatterRecord struct {
	SpecularRay Ray  // Deterministic outgoing ray (specular only)
	Attenuation Vec3 // Color multiplier applied to incoming radiance
	PDF         PDF  // Distribution over outgoing directions, nil for specular
}

// IsSpecular returns true if this scattering event has no distribution to
// importance sample against
func (s ScatterRecord) IsSpecular() bool {
	return s.PDF == nil
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter generates a scattering event, or reports false if the ray
	// was absorbed
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// ScatteringPDF returns the material's own density for the chosen
	// outgoing ray, used in the rendering-equation weight
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit *HitRecord) Vec3
}
