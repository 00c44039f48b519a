package geometry

import (
	"github.com/df07/go-cornell-tracer/pkg/core"
)

// Box is an axis-aligned box built from six rectangles. The faces at the
// minimum coordinates are normal-flipped so every face points outward.
type Box struct {
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates an axis-aligned box spanning [p0, p1]
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := NewList(
		NewRect(PlaneXY, p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewFlipNormals(NewRect(PlaneXY, p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)),
		NewRect(PlaneZX, p0.Z, p1.Z, p0.X, p1.X, p1.Y, material),
		NewFlipNormals(NewRect(PlaneZX, p0.Z, p1.Z, p0.X, p1.X, p0.Y, material)),
		NewRect(PlaneYZ, p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewFlipNormals(NewRect(PlaneYZ, p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit returns the nearest face hit within [tMin, tMax]
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}
