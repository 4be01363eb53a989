package diff

// Coefficients from "Measuring perceived color difference using YIQ NTSC
// transmission color space in mobile applications" by Y. Kotsarenko and
// F. Ramos. These are load-bearing constants: changing them shifts the
// effective sensitivity of the threshold, so they must stay stable across
// versions for reproducible results.
//
// maxYIQDelta is the squared YIQ distance between pure black and pure
// white, the largest value the metric can produce.
const maxYIQDelta = 35215.0

func rgb2y(r, g, b float64) float64 { return r*0.29889531 + g*0.58662247 + b*0.11448223 }
func rgb2i(r, g, b float64) float64 { return r*0.59597799 - g*0.27417610 - b*0.32180189 }
func rgb2q(r, g, b float64) float64 { return r*0.21147017 - g*0.52261711 + b*0.31114694 }

// blendWhite composites one channel of a semi-transparent pixel against a
// white backdrop, which is what a viewer perceives the pixel blended with.
func blendWhite(c, alpha float64) float64 {
	return 255 + (c-255)*alpha
}

// colorDelta returns the squared YIQ distance between the pixel at pos1 in
// pix1 and the pixel at pos2 in pix2. Pixels with alpha below 255 are
// composited against white first, so fully transparent pixels compare equal
// regardless of their RGB channels. The sign encodes direction: negative
// when the second pixel is darker than the first. With yOnly set, only the
// brightness difference is returned.
func colorDelta(pix1, pix2 []uint8, pos1, pos2 int, yOnly bool) float64 {
	r1 := float64(pix1[pos1])
	g1 := float64(pix1[pos1+1])
	b1 := float64(pix1[pos1+2])
	a1 := float64(pix1[pos1+3])

	r2 := float64(pix2[pos2])
	g2 := float64(pix2[pos2+1])
	b2 := float64(pix2[pos2+2])
	a2 := float64(pix2[pos2+3])

	if r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2 {
		return 0
	}

	if a1 < 255 {
		a1 /= 255
		r1 = blendWhite(r1, a1)
		g1 = blendWhite(g1, a1)
		b1 = blendWhite(b1, a1)
	}
	if a2 < 255 {
		a2 /= 255
		r2 = blendWhite(r2, a2)
		g2 = blendWhite(g2, a2)
		b2 = blendWhite(b2, a2)
	}

	y1 := rgb2y(r1, g1, b1)
	y2 := rgb2y(r2, g2, b2)
	y := y1 - y2

	if yOnly {
		return y
	}

	i := rgb2i(r1, g1, b1) - rgb2i(r2, g2, b2)
	q := rgb2q(r1, g1, b1) - rgb2q(r2, g2, b2)

	delta := 0.5053*y*y + 0.299*i*i + 0.1957*q*q

	if y1 > y2 {
		return -delta
	}
	return delta
}
