package renderer

import (
	"fmt"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// WritePreviewPNG writes a PNG thumbnail of the render no larger than
// maxSize on either side. Images already within bounds are written as-is.
func WritePreviewPNG(w io.Writer, img *Image, samplesPerPixel int, maxSize uint) error {
	if maxSize == 0 {
		return fmt.Errorf("preview size must be positive")
	}

	thumb := resize.Thumbnail(maxSize, maxSize, img.ToRGBA(samplesPerPixel), resize.Bilinear)

	if err := png.Encode(w, thumb); err != nil {
		return fmt.Errorf("failed to encode preview PNG: %w", err)
	}
	return nil
}
