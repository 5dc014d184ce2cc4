package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-diffuse-raytracer/pkg/geometry"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        *geometry.World
}

// builders maps scene names to constructors
var builders = map[string]func(aspectRatio float64) *Scene{
	"default": NewDefaultScene,
	"empty":   NewEmptyScene,
}

// Create builds the named scene for the given aspect ratio
func Create(name string, aspectRatio float64) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene type: %q (available: %v)", name, Names())
	}
	if aspectRatio <= 0 {
		return nil, fmt.Errorf("invalid aspect ratio %f: must be positive", aspectRatio)
	}
	return build(aspectRatio), nil
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newScene(name string, aspectRatio float64, world *geometry.World) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = aspectRatio

	return &Scene{
		Name:         name,
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        world,
	}
}
