package material

import (
	"github.com/df07/go-cornell-tracer/pkg/core"
)

// ColorSource supplies a color for a surface location, so albedo and
// emission can be solid or textured
type ColorSource interface {
	Evaluate(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a constant-color source
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a constant-color source
func NewSolidColor(color core.Vec3) SolidColor {
	return SolidColor{Color: color}
}

// Evaluate returns the constant color regardless of location
func (s SolidColor) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
