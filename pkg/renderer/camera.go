package renderer

import (
	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// CameraConfig describes the fixed pinhole camera
type CameraConfig struct {
	AspectRatio    float64 // Viewport width / height
	ViewportHeight float64 // Height of the image plane in world units
	FocalLength    float64 // Distance from the eye to the image plane
}

// DefaultCameraConfig returns a 16:9 camera with a 2-unit tall viewport one unit away
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering. It sits at the world origin looking down -Z.
type Camera struct {
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a simple camera
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v), nominally in [0, 1].
// (0, 0) is the lower-left corner of the viewport.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Origin returns the eye position
func (c *Camera) Origin() core.Point { return c.origin }

// LowerLeftCorner returns the lower-left corner of the viewport
func (c *Camera) LowerLeftCorner() core.Point { return c.lowerLeftCorner }

// Horizontal returns the full-width viewport span
func (c *Camera) Horizontal() core.Vec3 { return c.horizontal }

// Vertical returns the full-height viewport span
func (c *Camera) Vertical() core.Vec3 { return c.vertical }
