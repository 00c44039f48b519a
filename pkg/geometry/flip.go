package geometry

import (
	"github.com/df07/go-cornell-tracer/pkg/core"
)

// FlipNormals negates a child shape's reported normal, leaving t, point and
// texture coordinates unchanged. Used to turn a rectangle's front face
// inward for box interiors.
type FlipNormals struct {
	Child core.Hittable
}

// NewFlipNormals wraps a shape with a normal flip
func NewFlipNormals(child core.Hittable) *FlipNormals {
	return &FlipNormals{Child: child}
}

// Hit tests the child shape and negates the resulting normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	hit, isHit := f.Child.Hit(ray, tMin, tMax)
	if !isHit {
		return nil, false
	}

	hit.Normal = hit.Normal.Negate()
	return hit, true
}
