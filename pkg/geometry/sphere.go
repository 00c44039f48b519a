package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	return &core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   outwardNormal,
		U:        u,
		V:        v,
		Material: s.Material,
	}, true
}

// SampleDirection samples a direction from origin toward the sphere,
// uniform over the cone subtended by the visible cap
func (s *Sphere) SampleDirection(origin core.Vec3, random *rand.Rand) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distSquared := toCenter.LengthSquared()

	// From inside the sphere every direction hits it
	if distSquared <= s.Radius*s.Radius {
		return core.RandomUnitVector(random)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distSquared)
	uvw := core.NewONB(toCenter)
	return uvw.Local(core.RandomConeDirection(cosThetaMax, random))
}

// DirectionPDF returns the solid-angle density of SampleDirection along
// direction, 0 if the direction misses the sphere
func (s *Sphere) DirectionPDF(origin, direction core.Vec3) float64 {
	if _, isHit := s.Hit(core.NewRay(origin, direction, 0), 0.001, math.Inf(1)); !isHit {
		return 0
	}

	toCenter := s.Center.Subtract(origin)
	distSquared := toCenter.LengthSquared()

	if distSquared <= s.Radius*s.Radius {
		// Uniform over the full sphere of directions
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distSquared)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	if solidAngle < 1e-12 {
		return 0
	}
	return 1.0 / solidAngle
}

// sphereUV maps a unit vector on the sphere to (u, v) texture coordinates
func sphereUV(p core.Vec3) (float64, float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	u := 1.0 - (phi+math.Pi)/(2.0*math.Pi)
	v := (theta + math.Pi/2.0) / math.Pi
	return u, v
}
