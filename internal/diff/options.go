package diff

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Options configures a comparison. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Threshold is the fraction of the maximum perceptual distance above
	// which two pixels count as different, in [0, 1]. Smaller is more
	// sensitive.
	Threshold float64

	// IncludeAA counts anti-aliased edge pixels as differences instead of
	// classifying them separately.
	IncludeAA bool

	// Alpha is the blend factor used by Render for unchanged pixels, in
	// [0, 1]: 0 keeps the source pixel unchanged, 1 fully desaturates it.
	Alpha float64

	// AAColor highlights anti-aliased pixels in the rendered diff.
	AAColor color.NRGBA

	// DiffColor highlights differing pixels in the rendered diff.
	DiffColor color.NRGBA

	// DiffColorAlt, when non-nil, highlights pixels that got darker in the
	// second image, distinguishing direction of change.
	DiffColorAlt *color.NRGBA

	// Workers is the number of goroutines for the pixel pass. Zero or
	// negative means one per available CPU.
	Workers int
}

// DefaultOptions returns the engine defaults: threshold 0.1, anti-aliasing
// excluded, alpha 0.1, yellow anti-aliasing highlight, magenta difference
// highlight.
func DefaultOptions() Options {
	return Options{
		Threshold: 0.1,
		IncludeAA: false,
		Alpha:     0.1,
		AAColor:   color.NRGBA{R: 255, G: 255, B: 0, A: 255},
		DiffColor: color.NRGBA{R: 255, G: 0, B: 255, A: 255},
	}
}

// Validate checks that the numeric options are within their documented
// ranges.
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("threshold must be in [0, 1], got %v", o.Threshold)
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %v", o.Alpha)
	}
	return nil
}

// ParseHexColor parses a "#RRGGBB" hex string (the leading '#' is optional)
// into an opaque NRGBA color.
func ParseHexColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
