package core

import (
	"math"
	"math/rand"
)

// CosinePDF samples directions proportional to cos(θ) in the hemisphere
// around a surface normal
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine-weighted hemisphere PDF around the normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{uvw: NewONB(normal)}
}

// Generate samples a cosine-weighted direction in world space
func (p *CosinePDF) Generate(random *rand.Rand) Vec3 {
	return p.uvw.Local(RandomCosineDirection(random))
}

// Value returns cos(θ)/π for directions above the surface, 0 below
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// ShapePDF samples directions from a fixed origin toward a shape,
// with density measured in solid angle as seen from the origin
type ShapePDF struct {
	shape  Sampleable
	origin Vec3
}

// NewShapePDF creates a PDF that samples directions toward the shape
func NewShapePDF(shape Sampleable, origin Vec3) *ShapePDF {
	return &ShapePDF{shape: shape, origin: origin}
}

// Generate samples a direction from the origin toward the shape
func (p *ShapePDF) Generate(random *rand.Rand) Vec3 {
	return p.shape.SampleDirection(p.origin, random)
}

// Value returns the solid-angle density of the shape along direction,
// 0 if the direction misses the shape
func (p *ShapePDF) Value(direction Vec3) float64 {
	return p.shape.DirectionPDF(p.origin, direction)
}

// MixturePDF combines two sampling strategies with equal weight.
// This is the standard single-sample multiple-importance-sampling combinator.
type MixturePDF struct {
	a, b PDF
}

// NewMixturePDF creates a 50/50 mixture of two PDFs
func NewMixturePDF(a, b PDF) *MixturePDF {
	return &MixturePDF{a: a, b: b}
}

// Generate forwards to one of the two strategies, chosen uniformly
func (p *MixturePDF) Generate(random *rand.Rand) Vec3 {
	if random.Float64() < 0.5 {
		return p.a.Generate(random)
	}
	return p.b.Generate(random)
}

// Value returns the mean of the two children's densities
func (p *MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.a.Value(direction) + 0.5*p.b.Value(direction)
}
