package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-cornell-tracer/pkg/core"
)

func TestBox_Hit_NearestFace(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2), nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "from +Z",
			rayOrigin:      core.NewVec3(1, 1, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      3.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "from -Z hits the flipped face",
			rayOrigin:      core.NewVec3(1, 1, -3),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      3.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "from +Y",
			rayOrigin:      core.NewVec3(1, 6, 1),
			rayDirection:   core.NewVec3(0, -1, 0),
			expectedT:      4.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "from -X hits the flipped face",
			rayOrigin:      core.NewVec3(-2, 1, 1),
			rayDirection:   core.NewVec3(1, 0, 0),
			expectedT:      2.0,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection, 0), 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestBox_Hit_FromInside(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2), nil)
	ray := core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 1), 0)

	hit, isHit := box.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
}

func TestBox_Hit_Miss(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2), nil)
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, 1), 0)

	if hit, isHit := box.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}
