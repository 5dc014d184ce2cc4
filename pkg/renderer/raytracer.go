package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns a 400x225 image at 100 samples and 50 bounces
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate rejects configurations that would produce a degenerate image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d: both dimensions must be positive", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("invalid samples per pixel %d: must be positive", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth %d: must not be negative", c.MaxDepth)
	}
	return nil
}

// Raytracer handles the rendering process
type Raytracer struct {
	world      core.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the diffuse integrator
func NewRaytracer(world core.Hittable, camera *Camera, config SamplingConfig, sampler core.Sampler, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewDiffuseIntegrator(),
		config:     config,
		sampler:    sampler,
		logger:     logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Config returns the current sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render traces every pixel and returns the unnormalized color sums.
// Rows are visited from the top (y = height-1) down to the bottom.
func (rt *Raytracer) Render() (*Image, RenderStats) {
	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height
	pixels := make([]core.Color, width*height)

	// A single row or column has no span to divide across
	uDenom := float64(max(width-1, 1))
	vDenom := float64(max(height-1, 1))

	for y := height - 1; y >= 0; y-- {
		rt.logger.Printf("Scanline remaining: %d\n", y)

		for x := 0; x < width; x++ {
			pixelColor := core.Zero()

			for s := 0; s < rt.config.SamplesPerPixel; s++ {
				u := (float64(x) + rt.sampler.Get1D()) / uDenom
				v := (float64(y) + rt.sampler.Get1D()) / vDenom

				ray := rt.camera.GetRay(u, v)
				pixelColor = pixelColor.Add(rt.integrator.RayColor(ray, rt.world, rt.sampler, rt.config.MaxDepth))
			}

			pixels[y*width+x] = pixelColor
		}
	}

	img := NewImage(width, height)
	if err := img.SetData(pixels); err != nil {
		// pixels was sized from the same config, so this cannot fail
		panic(err)
	}

	rt.logger.Printf("Done!\n")

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Elapsed:         time.Since(startTime),
	}
	return img, stats
}
