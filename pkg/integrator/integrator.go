package integrator

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler, depth int) core.Color
}
