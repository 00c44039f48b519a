package scene

import (
	"github.com/df07/go-cornell-tracer/pkg/core"
	"github.com/df07/go-cornell-tracer/pkg/geometry"
	"github.com/df07/go-cornell-tracer/pkg/material"
	"github.com/df07/go-cornell-tracer/pkg/renderer"
)

// NewCornellScene creates the classic Cornell box: red/green side walls,
// white floor, ceiling and back wall, a ceiling light, a glass sphere and
// a rotated aluminum box. The light rect and the glass sphere are both
// importance sampled.
func NewCornellScene(aspectRatio float64) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15.0, 15.0, 15.0))
	glass := material.NewDielectric(1.5)
	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)

	lightShape := geometry.NewRect(geometry.PlaneZX, 227, 332, 213, 343, 554, light)
	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass)

	world := geometry.NewList(
		// Green wall at x=555 faces inward, red wall at x=0 already does
		geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 555, green)),
		geometry.NewRect(geometry.PlaneYZ, 0, 555, 0, 555, 0, red),
		// Ceiling light faces down into the box
		geometry.NewFlipNormals(lightShape),
		geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneZX, 0, 555, 0, 555, 555, white)),
		geometry.NewRect(geometry.PlaneZX, 0, 555, 0, 555, 0, white),
		geometry.NewFlipNormals(geometry.NewRect(geometry.PlaneXY, 0, 555, 0, 555, 555, white)),
		glassSphere,
		geometry.NewTranslate(
			geometry.NewRotate(
				geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), aluminum),
				geometry.AxisY, 15,
			),
			core.NewVec3(265, 0, 295),
		),
	)

	lights := geometry.NewLights(lightShape, glassSphere)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   aspectRatio,
		Aperture:      0.0,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
	})

	return &Scene{
		Camera: camera,
		World:  world,
		Lights: lights,
	}
}
