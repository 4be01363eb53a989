package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Save encodes img to path. The output format is chosen by file extension;
// PNG, JPEG, GIF, TIFF, and BMP are supported.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image to %s: %w", path, err)
	}
	return nil
}

// Smooth applies a Gaussian blur with the given radius and returns the
// result as a normalized NRGBA buffer. A radius <= 0 returns the input
// unchanged.
//
// Blurring both inputs before comparison suppresses single-pixel sensor or
// encoder noise that would otherwise register as differences.
func Smooth(img *image.NRGBA, radius float64) *image.NRGBA {
	if radius <= 0 {
		return img
	}
	return ToNRGBA(blur.Gaussian(img, radius))
}
