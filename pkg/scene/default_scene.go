package scene

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
)

// NewDefaultScene creates a small sphere resting on a large ground sphere
func NewDefaultScene(aspectRatio float64) *Scene {
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.4, -1), 100),
	)
	return newScene("default", aspectRatio, world)
}

// NewEmptyScene creates a scene with only the sky
func NewEmptyScene(aspectRatio float64) *Scene {
	return newScene("empty", aspectRatio, geometry.NewWorld())
}
