package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// Plane selects which pair of axes an axis-aligned rectangle spans.
// The plane name gives the (a, b) in-plane axes; the remaining axis holds
// the rectangle's fixed coordinate and its normal.
type Plane int

const (
	PlaneXY Plane = iota // spans X and Y, fixed Z, normal +Z
	PlaneYZ              // spans Y and Z, fixed X, normal +X
	PlaneZX              // spans Z and X, fixed Y, normal +Y
)

// axes returns the in-plane axis indices and the fixed axis index
func (p Plane) axes() (aAxis, bAxis, kAxis int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneYZ:
		return 1, 2, 0
	default:
		return 2, 0, 1
	}
}

// Rect represents an axis-aligned rectangle at a fixed coordinate K on one
// of the three coordinate planes, bounded by [A0,A1]×[B0,B1] in-plane
type Rect struct {
	Plane          Plane
	A0, A1, B0, B1 float64
	K              float64
	Material       core.Material
}

// NewRect creates a new axis-aligned rectangle
func NewRect(plane Plane, a0, a1, b0, b1, k float64, material core.Material) *Rect {
	return &Rect{
		Plane:    plane,
		A0:       a0,
		A1:       a1,
		B0:       b0,
		B1:       b1,
		K:        k,
		Material: material,
	}
}

// Hit tests if a ray intersects with the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	aAxis, bAxis, kAxis := r.Plane.axes()

	// Ray parallel to the plane never crosses it
	dirK := ray.Direction.Axis(kAxis)
	if math.Abs(dirK) < 1e-12 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(kAxis)) / dirK
	if t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.Vec3{}.WithAxis(kAxis, 1),
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}, true
}

// Area returns the surface area of the rectangle
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// SampleDirection samples a direction from origin toward a uniformly chosen
// point on the rectangle
func (r *Rect) SampleDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	aAxis, bAxis, kAxis := r.Plane.axes()

	a := r.A0 + random.Float64()*(r.A1-r.A0)
	b := r.B0 + random.Float64()*(r.B1-r.B0)
	point := core.Vec3{}.
		WithAxis(aAxis, a).
		WithAxis(bAxis, b).
		WithAxis(kAxis, r.K)

	return point.Subtract(origin)
}

// DirectionPDF converts the rectangle's uniform area density to a
// solid-angle density as seen from origin along direction
func (r *Rect) DirectionPDF(origin, direction core.Vec3) float64 {
	hit, isHit := r.Hit(core.NewRay(origin, direction, 0), 0.001, math.Inf(1))
	if !isHit {
		return 0
	}

	// pdf_solid_angle = distance² / (cos(θ) · area)
	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine < 1e-12 {
		return 0
	}
	return distSquared / (cosine * r.Area())
}
