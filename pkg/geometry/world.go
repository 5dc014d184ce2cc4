package geometry

import "github.com/df07/go-diffuse-raytracer/pkg/core"

// World is a list of hittable objects that is itself hittable.
// Objects are never mutated after being added.
type World struct {
	Objects []core.Hittable
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...core.Hittable) *World {
	return &World{Objects: objects}
}

// Add appends an object to the world
func (w *World) Add(object core.Hittable) {
	w.Objects = append(w.Objects, object)
}

// Clear removes all objects
func (w *World) Clear() {
	w.Objects = nil
}

// Len returns the number of objects
func (w *World) Len() int {
	return len(w.Objects)
}

// Hit scans every object and keeps the closest hit in [tMin, tMax].
// Each accepted hit narrows the upper bound for the remaining objects.
func (w *World) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	var scratch core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range w.Objects {
		if object.Hit(ray, tMin, closestSoFar, &scratch) {
			hitAnything = true
			closestSoFar = scratch.T
			*rec = scratch
		}
	}

	return hitAnything
}
