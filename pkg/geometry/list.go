package geometry

import (
	"math/rand"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// List is a flat, insertion-ordered aggregate of shapes. A hit is the
// minimum-t hit over all members; every member is tested per ray.
type List struct {
	Objects []core.Hittable
}

// NewList creates a list aggregate from the given shapes
func NewList(objects ...core.Hittable) *List {
	return &List{Objects: objects}
}

// Add appends shapes to the list
func (l *List) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit returns the closest hit among all members within [tMin, tMax]
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestT); isHit {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// Lights is an aggregate of sampleable shapes, used to direct rays toward
// the scene's emitters. Sampling picks a member uniformly; the density is
// the mean over all members.
type Lights struct {
	Shapes []core.Sampleable
}

// NewLights creates a light aggregate from the given shapes
func NewLights(shapes ...core.Sampleable) *Lights {
	return &Lights{Shapes: shapes}
}

// Hit returns the closest hit among all member shapes
func (l *Lights) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestT); isHit {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// SampleDirection forwards to a uniformly chosen member shape. With no
// members it returns the zero direction, which DirectionPDF scores as 0.
func (l *Lights) SampleDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if len(l.Shapes) == 0 {
		return core.Vec3{}
	}
	shape := l.Shapes[random.Intn(len(l.Shapes))]
	return shape.SampleDirection(origin, random)
}

// DirectionPDF returns the mean density over all member shapes
func (l *Lights) DirectionPDF(origin, direction core.Vec3) float64 {
	if len(l.Shapes) == 0 {
		return 0
	}

	sum := 0.0
	for _, shape := range l.Shapes {
		sum += shape.DirectionPDF(origin, direction)
	}
	return sum / float64(len(l.Shapes))
}
