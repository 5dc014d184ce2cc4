package integrator

import (
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// DiffuseIntegrator traces rays through a world of purely diffuse surfaces
// lit by a vertical sky gradient.
type DiffuseIntegrator struct {
	Albedo    float64    // Fraction of light kept per bounce
	TMin      float64    // Inclusive lower bound for hits; only excludes t == 0
	TMax      float64    // Inclusive upper bound for hits
	SkyTop    core.Color // Background when looking straight up
	SkyBottom core.Color // Background when looking straight down
}

// NewDiffuseIntegrator creates an integrator with albedo 0.5, a white-to-blue
// sky and hits accepted anywhere in (0, +Inf).
func NewDiffuseIntegrator() *DiffuseIntegrator {
	// TMin only rejects t == 0. Scattered rays start exactly on the surface
	// and often re-hit it at t around 1e-16, so some shadow acne is expected.
	// The estimator is defined with this bound; raising it changes the image.
	return &DiffuseIntegrator{
		Albedo:    0.5,
		TMin:      math.SmallestNonzeroFloat64,
		TMax:      math.Inf(1),
		SkyTop:    core.NewVec3(0.5, 0.7, 1.0),
		SkyBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor returns the color for a given ray
func (d *DiffuseIntegrator) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Zero()
	}

	var hit core.HitRecord
	if !world.Hit(ray, d.TMin, d.TMax, &hit) {
		return d.Background(ray)
	}

	// Scatter around the normal. This is not a cosine-weighted sample and
	// the fixed albedo is applied without a pdf term.
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))
	scattered := core.NewRay(hit.Point, direction)

	return d.RayColor(scattered, world, sampler, depth-1).Multiply(d.Albedo)
}

// Background returns the sky gradient color seen along the ray
func (d *DiffuseIntegrator) Background(ray core.Ray) core.Color {
	unitDirection := ray.Direction.UnitVector()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return d.SkyBottom.Multiply(1.0 - t).Add(d.SkyTop.Multiply(t))
}
