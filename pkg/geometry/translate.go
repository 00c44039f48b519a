package geometry

import (
	"github.com/df07/go-cornell-tracer/pkg/core"
)

// Translate shifts a child shape by a fixed offset. Intersection is done in
// the child's local frame by shifting the ray the opposite way; t is
// forwarded unchanged since translation does not rescale distance.
type Translate struct {
	Child  core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps a shape with a translation
func NewTranslate(child core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Child: child, Offset: offset}
}

// Hit tests the translated shape
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	local := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Child.Hit(local, tMin, tMax)
	if !isHit {
		return nil, false
	}

	// Normals are unaffected by pure translation
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}
