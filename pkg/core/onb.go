package core

import "math"

// ONB is a right-handed orthonormal basis built around a single direction.
// W points along the direction the basis was built from.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis is the given direction
func NewONB(direction Vec3) ONB {
	w := direction.Normalize()

	// Find a vector not parallel to w to seed the tangent
	var nt Vec3
	if math.Abs(w.X) > 0.9 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	u := nt.Cross(w).Normalize()
	v := w.Cross(u)

	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector from basis-local coordinates to world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
