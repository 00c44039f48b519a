package material

import (
	"math/rand"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// DiffuseLight is an emissive material for area lights. It never scatters.
type DiffuseLight struct {
	Emit ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates an emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material with a texture
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emission}
}

// Scatter absorbs all incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is unused for non-scattering materials
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission color only when the ray hits the front face
// (one-sided emission)
func (dl *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if hit.Normal.Dot(rayIn.Direction) < 0 {
		return dl.Emit.Evaluate(hit.U, hit.V, hit.Point)
	}
	return core.Vec3{}
}
