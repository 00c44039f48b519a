package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract. Clear glass does not absorb, so attenuation is
// always (1,1,1).
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts when Snell's law allows it, choosing reflection instead
// with probability given by Schlick's approximation. Always specular.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// The geometric normal tells us whether we are entering or exiting
	dirDotNormal := rayIn.Direction.Dot(hit.Normal)
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dirDotNormal > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotNormal / rayIn.Direction.Length()
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / rayIn.Direction.Length()
	}

	if refracted, ok := refract(rayIn.Direction, outwardNormal, niOverNt); ok {
		if random.Float64() >= schlick(cosine, d.RefractiveIndex) {
			return core.ScatterRecord{
				SpecularRay: core.NewRay(hit.Point, refracted, rayIn.Time),
				Attenuation: attenuation,
			}, true
		}
	}

	// Total internal reflection, or the Fresnel coin-flip chose reflection
	reflected := reflect(rayIn.Direction, hit.Normal)
	return core.ScatterRecord{
		SpecularRay: core.NewRay(hit.Point, reflected, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// ScatteringPDF is unused for specular materials
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// refract applies Snell's law, reporting false when the discriminant is
// negative and refraction is geometrically impossible
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}

	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// schlick approximates the Fresnel reflectance coefficient
func schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
