package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// maxChannel is the largest value kept before scaling to [0, 255]
const maxChannel = 0.999

// Image holds per-pixel color sums. Pixel (x, y) lives at index y*width + x
// with y = 0 being the bottom row.
type Image struct {
	width  int
	height int
	pixels []core.Color
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// At returns the accumulated color at (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.pixels[y*img.width+x]
}

// Set stores the accumulated color at (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.pixels[y*img.width+x] = c
}

// Add accumulates a sample into (x, y)
func (img *Image) Add(x, y int, c core.Color) {
	i := y*img.width + x
	img.pixels[i] = img.pixels[i].Add(c)
}

// SetData replaces all pixel sums at once
func (img *Image) SetData(pixels []core.Color) error {
	if len(pixels) != img.width*img.height {
		return fmt.Errorf("pixel data has %d entries, want %d for %dx%d image",
			len(pixels), img.width*img.height, img.width, img.height)
	}
	img.pixels = pixels
	return nil
}

// QuantizeChannel converts a channel sum into an 8-bit value: average over
// the samples, gamma-correct with sqrt, clamp to [0, 0.999] and scale by 256.
func QuantizeChannel(sum float64, samplesPerPixel int) int {
	scale := 1.0 / float64(samplesPerPixel)
	gamma := math.Sqrt(sum * scale)
	return int(math.Floor(256 * core.Clamp(gamma, 0.0, maxChannel)))
}

func quantize(c core.Color, samplesPerPixel int) (int, int, int) {
	return QuantizeChannel(c.X, samplesPerPixel),
		QuantizeChannel(c.Y, samplesPerPixel),
		QuantizeChannel(c.Z, samplesPerPixel)
}

// WritePPM encodes the image as a plain-text P3 pixmap, top row first
func (img *Image) WritePPM(w io.Writer, samplesPerPixel int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.width, img.height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := img.height - 1; y >= 0; y-- {
		for x := 0; x < img.width; x++ {
			r, g, b := quantize(img.At(x, y), samplesPerPixel)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("failed to write pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// ToRGBA converts the image with the same tone mapping as WritePPM.
// Row 0 of the result is the top of the render.
func (img *Image) ToRGBA(samplesPerPixel int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))

	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			r, g, b := quantize(img.At(x, y), samplesPerPixel)
			out.SetRGBA(x, img.height-1-y, color.RGBA{
				R: uint8(r),
				G: uint8(g),
				B: uint8(b),
				A: 255,
			})
		}
	}

	return out
}
