package diff

import "image"

// antialiased reports whether the pixel at (x1, y1) in img looks like part
// of an anti-aliased edge rather than a structural change, following the
// intensity-slope heuristic of "Anti-aliased Pixel and Intensity Slope
// Detector" (V. Vysniauskas, 2009).
//
// The 3x3 neighborhood is clamped at the image border; missing samples are
// treated as absent, with the border itself contributing one equal-neighbor
// credit so that edge pixels are not misread as smoothing.
func antialiased(img, other *image.NRGBA, x1, y1, width, height int) bool {
	x0 := max(x1-1, 0)
	y0 := max(y1-1, 0)
	x2 := min(x1+1, width-1)
	y2 := min(y1+1, height-1)

	zeroes := 0
	if x1 == x0 || x1 == x2 || y1 == y0 || y1 == y2 {
		zeroes = 1
	}

	var minDelta, maxDelta float64
	var minX, minY, maxX, maxY int

	pos1 := (y1*width + x1) * 4
	for x := x0; x <= x2; x++ {
		for y := y0; y <= y2; y++ {
			if x == x1 && y == y1 {
				continue
			}

			// Brightness delta between the center pixel and this neighbor.
			delta := colorDelta(img.Pix, img.Pix, pos1, (y*width+x)*4, true)

			switch {
			case delta == 0:
				zeroes++
				// More than two equal siblings rules out anti-aliasing.
				if zeroes > 2 {
					return false
				}
			case delta < minDelta:
				minDelta = delta
				minX, minY = x, y
			case delta > maxDelta:
				maxDelta = delta
				maxX, maxY = x, y
			}
		}
	}

	// An anti-aliased pixel sits on a slope: it needs both a darker and a
	// brighter neighbor.
	if minDelta == 0 || maxDelta == 0 {
		return false
	}

	// The darkest or brightest neighbor must belong to a flat area in both
	// images, otherwise the slope is a real content boundary that moved.
	return (hasManySiblings(img, minX, minY, width, height) && hasManySiblings(other, minX, minY, width, height)) ||
		(hasManySiblings(img, maxX, maxY, width, height) && hasManySiblings(other, maxX, maxY, width, height))
}

// hasManySiblings reports whether the pixel at (x1, y1) has three or more
// adjacent pixels with exactly its color, i.e. sits in a flat area.
func hasManySiblings(img *image.NRGBA, x1, y1, width, height int) bool {
	x0 := max(x1-1, 0)
	y0 := max(y1-1, 0)
	x2 := min(x1+1, width-1)
	y2 := min(y1+1, height-1)

	zeroes := 0
	if x1 == x0 || x1 == x2 || y1 == y0 || y1 == y2 {
		zeroes = 1
	}

	pos1 := (y1*width + x1) * 4
	for x := x0; x <= x2; x++ {
		for y := y0; y <= y2; y++ {
			if x == x1 && y == y1 {
				continue
			}

			pos2 := (y*width + x) * 4
			if img.Pix[pos1] == img.Pix[pos2] &&
				img.Pix[pos1+1] == img.Pix[pos2+1] &&
				img.Pix[pos1+2] == img.Pix[pos2+2] &&
				img.Pix[pos1+3] == img.Pix[pos2+3] {
				zeroes++
			}
			if zeroes > 2 {
				return true
			}
		}
	}

	return false
}
