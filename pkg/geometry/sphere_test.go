package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), 0)

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:         "hit from inside keeps the outward normal",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			expectedT:    1.0,
			// Normal is geometric, never flipped toward the ray
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, 0)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_PointOnSurface(t *testing.T) {
	center := core.NewVec3(3, -2, 5)
	radius := 2.5
	sphere := NewSphere(center, radius, nil)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		origin := core.NewVec3(
			20*random.Float64()-10,
			20*random.Float64()-10,
			-10,
		)
		direction := center.Subtract(origin).Add(core.RandomInUnitSphere(random))

		hit, isHit := sphere.Hit(core.NewRay(origin, direction, 0), 0.001, math.Inf(1))
		if !isHit {
			continue
		}

		// Hit point lies on the sphere surface
		radial := hit.Point.Subtract(center)
		if math.Abs(radial.Length()-radius) > 1e-9 {
			t.Fatalf("hit point off surface by %g", math.Abs(radial.Length()-radius))
		}

		// Normal is unit length and parallel to the radial direction
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Fatalf("normal not unit length: %f", hit.Normal.Length())
		}
		if radial.Normalize().Subtract(hit.Normal).Length() > 1e-9 {
			t.Fatalf("normal %v not parallel to radial %v", hit.Normal, radial.Normalize())
		}
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 0)

	// tMax before the near intersection
	if hit, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// tMin past both intersections
	if hit, isHit := sphere.Hit(ray, 3.5, 1000.0); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// tMin between the two roots selects the far intersection
	hit, isHit := sphere.Hit(ray, 1.5, 1000.0)
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got t=%f", hit.T)
	}
}

func TestSphere_SampleDirection_HitsSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 5, 0), 1.0, nil)
	origin := core.NewVec3(0, 0, 0)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		direction := sphere.SampleDirection(origin, random)

		if _, isHit := sphere.Hit(core.NewRay(origin, direction, 0), 0.001, math.Inf(1)); !isHit {
			t.Fatalf("sampled direction %v misses the sphere", direction)
		}
		if sphere.DirectionPDF(origin, direction) <= 0 {
			t.Fatalf("sampled direction %v has non-positive density", direction)
		}
	}
}

func TestSphere_DirectionPDF(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 5, 0), 1.0, nil)
	origin := core.NewVec3(0, 0, 0)

	// Missing direction has zero density
	if got := sphere.DirectionPDF(origin, core.NewVec3(1, 0, 0)); got != 0 {
		t.Errorf("expected zero density on miss, got %f", got)
	}

	// Toward the center, density is the inverse cone solid angle
	cosThetaMax := math.Sqrt(1.0 - 1.0/25.0)
	expected := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
	if got := sphere.DirectionPDF(origin, core.NewVec3(0, 1, 0)); math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected density %f, got %f", expected, got)
	}

	// From inside, density is uniform over the sphere of directions
	inside := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	if got := inside.DirectionPDF(origin, core.NewVec3(0, 1, 0)); math.Abs(got-1.0/(4.0*math.Pi)) > 1e-12 {
		t.Errorf("expected uniform density %f, got %f", 1.0/(4.0*math.Pi), got)
	}
}
