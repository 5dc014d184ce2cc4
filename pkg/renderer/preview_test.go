package renderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

func TestWritePreviewPNG_Size(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxSize       uint
		wantW, wantH  int
	}{
		{"downscaled keeps aspect", 40, 20, 10, 10, 5},
		{"small image untouched", 4, 2, 10, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.width, tt.height)
			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					img.Set(x, y, core.NewVec3(0.25, 0.5, 1))
				}
			}

			var buf bytes.Buffer
			if err := WritePreviewPNG(&buf, img, 1, tt.maxSize); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			decoded, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("Preview is not a valid PNG: %v", err)
			}
			bounds := decoded.Bounds()
			if bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestWritePreviewPNG_RejectsZeroSize(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePreviewPNG(&buf, NewImage(2, 2), 1, 0); err == nil {
		t.Error("Expected error for zero preview size")
	}
}
