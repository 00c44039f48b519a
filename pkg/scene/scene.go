package scene

import (
	"github.com/df07/go-cornell-tracer/pkg/core"
	"github.com/df07/go-cornell-tracer/pkg/geometry"
	"github.com/df07/go-cornell-tracer/pkg/renderer"
)

// Scene bundles the world geometry, the shapes worth sampling toward, and
// the camera. All of it is immutable after construction and safe to share
// across render workers.
type Scene struct {
	Camera *renderer.Camera
	World  core.Hittable
	Lights *geometry.Lights
}

// LightSampler returns the sampleable light aggregate, or nil when the
// scene has no shapes to direct rays toward
func (s *Scene) LightSampler() core.Sampleable {
	if s.Lights == nil || len(s.Lights.Shapes) == 0 {
		return nil
	}
	return s.Lights
}
