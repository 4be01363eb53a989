package diff

import (
	"image"
	"image/color"
)

// Render paints the comparison mask over the first image and returns a new
// buffer; the input is left untouched.
//
// Differing pixels are painted with DiffColor, or DiffColorAlt (when set)
// where the second image is darker. Anti-aliased pixels are painted with
// AAColor. Unchanged pixels are blended toward their own brightness by
// Alpha, which fades the untouched content so highlights stand out: Alpha 0
// keeps the original pixel, Alpha 1 replaces it with its gray value.
func Render(a *image.NRGBA, mask *Mask, opts Options) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, mask.Width, mask.Height))

	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			pos := (y*mask.Width + x) * 4

			switch mask.Pix[y*mask.Width+x] {
			case Different:
				putPixel(out.Pix, pos, opts.DiffColor)
			case DifferentDarker:
				if opts.DiffColorAlt != nil {
					putPixel(out.Pix, pos, *opts.DiffColorAlt)
				} else {
					putPixel(out.Pix, pos, opts.DiffColor)
				}
			case Antialiased:
				putPixel(out.Pix, pos, opts.AAColor)
			default:
				drawFadedPixel(a.Pix, out.Pix, pos, opts.Alpha)
			}
		}
	}

	return out
}

func putPixel(pix []uint8, pos int, c color.NRGBA) {
	pix[pos] = c.R
	pix[pos+1] = c.G
	pix[pos+2] = c.B
	pix[pos+3] = 255
}

// drawFadedPixel writes the source pixel blended toward its own luma by
// alpha. The output is always opaque; transparency in the source has already
// influenced the luma through white compositing.
func drawFadedPixel(src, dst []uint8, pos int, alpha float64) {
	r := float64(src[pos])
	g := float64(src[pos+1])
	b := float64(src[pos+2])
	a := float64(src[pos+3]) / 255

	if a < 1 {
		r = blendWhite(r, a)
		g = blendWhite(g, a)
		b = blendWhite(b, a)
	}

	gray := rgb2y(r, g, b)
	dst[pos] = uint8(r + (gray-r)*alpha)
	dst[pos+1] = uint8(g + (gray-g)*alpha)
	dst[pos+2] = uint8(b + (gray-b)*alpha)
	dst[pos+3] = 255
}
