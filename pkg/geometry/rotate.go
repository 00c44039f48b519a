package geometry

import (
	"math"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// Axis selects a coordinate axis for rotation
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotate rotates a child shape about a coordinate axis. Rays are rotated
// into the child's local frame by the inverse angle; hit points and normals
// are rotated back by the forward angle. t is forwarded unchanged.
type Rotate struct {
	Child    core.Hittable
	axis     Axis
	sinTheta float64
	cosTheta float64
}

// NewRotate wraps a shape with a rotation of the given angle in degrees
func NewRotate(child core.Hittable, axis Axis, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180.0
	return &Rotate{
		Child:    child,
		axis:     axis,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// Hit tests the rotated shape
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Rotate the ray into child space by the inverse angle
	local := core.NewRay(
		rotateAbout(ray.Origin, r.axis, -r.sinTheta, r.cosTheta),
		rotateAbout(ray.Direction, r.axis, -r.sinTheta, r.cosTheta),
		ray.Time,
	)

	hit, isHit := r.Child.Hit(local, tMin, tMax)
	if !isHit {
		return nil, false
	}

	// Rotate the hit back into parent space by the forward angle
	hit.Point = rotateAbout(hit.Point, r.axis, r.sinTheta, r.cosTheta)
	hit.Normal = rotateAbout(hit.Normal, r.axis, r.sinTheta, r.cosTheta)
	return hit, true
}

// rotateAbout rotates v about the given axis, using the cyclic (a, b) plane
// convention so AxisY reproduces the standard x' = cos·x + sin·z rotation
func rotateAbout(v core.Vec3, axis Axis, sin, cos float64) core.Vec3 {
	a := (int(axis) + 1) % 3
	b := (int(axis) + 2) % 3
	va, vb := v.Axis(a), v.Axis(b)
	return v.
		WithAxis(a, cos*va-sin*vb).
		WithAxis(b, sin*va+cos*vb)
}
