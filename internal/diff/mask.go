package diff

import "image"

// PixelClass is the per-pixel classification produced by Compare.
type PixelClass uint8

const (
	// Same means no perceptible difference at this position.
	Same PixelClass = iota

	// Different means a perceptible difference where the second image is
	// lighter than (or equal in brightness to) the first.
	Different

	// DifferentDarker means a perceptible difference where the second image
	// is darker than the first. Render paints these with DiffColorAlt when
	// one is configured.
	DifferentDarker

	// Antialiased marks a visually different pixel that matches the profile
	// of an anti-aliased edge. It does not count as a difference unless
	// Options.IncludeAA is set.
	Antialiased
)

// IsDifference reports whether the class counts toward the difference
// total.
func (c PixelClass) IsDifference() bool {
	return c == Different || c == DifferentDarker
}

// Mask holds the per-pixel classification for one comparison, row-major.
type Mask struct {
	Width  int
	Height int
	Pix    []PixelClass
}

func newMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]PixelClass, width*height),
	}
}

// At returns the classification at (x, y). Coordinates must be in bounds.
func (m *Mask) At(x, y int) PixelClass {
	return m.Pix[y*m.Width+x]
}

// validateBuffer checks that an NRGBA buffer is in the engine's canonical
// form: contiguous rows and a pixel count matching the declared dimensions.
func validateBuffer(img *image.NRGBA) error {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if img.Stride != w*4 || len(img.Pix) != w*h*4 {
		return &InternalConsistencyError{Width: w, Height: h, Stride: img.Stride, Length: len(img.Pix)}
	}
	return nil
}
