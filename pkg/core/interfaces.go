package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is implemented by anything a ray can intersect.
// Hit reports whether the ray meets the object at some tMin <= t <= tMax.
// On success rec holds the intersection; on failure rec is left unchanged.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, rec *HitRecord) bool
}
