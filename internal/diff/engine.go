package diff

import (
	"image"
	"math"
	"runtime"
	"sync"
)

// Statistics aggregates the outcome of one comparison. DiffPercentage is
// computed once from the final counts rather than accumulated per pixel, so
// it carries no floating-point drift on large images.
type Statistics struct {
	// DiffCount is the number of pixels classified as different.
	DiffCount int64

	// AACount is the number of pixels classified as anti-aliased. Always
	// zero when Options.IncludeAA is set.
	AACount int64

	// TotalPixels is width times height.
	TotalPixels int64

	// DiffPercentage is 100 * DiffCount / TotalPixels.
	DiffPercentage float64
}

// Compare classifies every pixel position of a against b and returns the
// aggregate statistics together with the per-pixel mask.
//
// Both buffers must have identical dimensions; a mismatch fails with
// *DimensionMismatchError before any pixel work. A buffer whose layout
// disagrees with its declared dimensions fails with
// *InternalConsistencyError. Compare is a pure computation: it never
// modifies its inputs and produces identical output for identical input
// regardless of worker count.
func Compare(a, b *image.NRGBA, opts Options) (Statistics, *Mask, error) {
	aw, ah := a.Bounds().Dx(), a.Bounds().Dy()
	bw, bh := b.Bounds().Dx(), b.Bounds().Dy()
	if aw != bw || ah != bh {
		return Statistics{}, nil, &DimensionMismatchError{AWidth: aw, AHeight: ah, BWidth: bw, BHeight: bh}
	}
	if err := validateBuffer(a); err != nil {
		return Statistics{}, nil, err
	}
	if err := validateBuffer(b); err != nil {
		return Statistics{}, nil, err
	}

	w, h := aw, ah
	mask := newMask(w, h)
	total := int64(w) * int64(h)
	if total == 0 {
		return Statistics{}, mask, nil
	}

	maxDelta := maxYIQDelta * opts.Threshold * opts.Threshold

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > h {
		workers = h
	}

	// Each band gets its own counters; classification depends only on the
	// pixel's own neighborhood, never on another pixel's result, so bands
	// share nothing but read-only input.
	diffCounts := make([]int64, workers)
	aaCounts := make([]int64, workers)

	rowsPerWorker := h / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		startY := i * rowsPerWorker
		endY := startY + rowsPerWorker
		if i == workers-1 {
			endY = h
		}
		go func(band, startY, endY int) {
			defer wg.Done()
			diffCounts[band], aaCounts[band] = classifyRows(a, b, mask, opts, maxDelta, startY, endY)
		}(i, startY, endY)
	}
	wg.Wait()

	// Summing in band order keeps the totals independent of goroutine
	// scheduling.
	stats := Statistics{TotalPixels: total}
	for i := 0; i < workers; i++ {
		stats.DiffCount += diffCounts[i]
		stats.AACount += aaCounts[i]
	}
	stats.DiffPercentage = float64(stats.DiffCount) / float64(total) * 100

	return stats, mask, nil
}

// classifyRows runs the per-pixel classification for rows [startY, endY) and
// returns the band-local difference and anti-aliasing counts.
func classifyRows(a, b *image.NRGBA, mask *Mask, opts Options, maxDelta float64, startY, endY int) (diffCount, aaCount int64) {
	w, h := mask.Width, mask.Height
	for y := startY; y < endY; y++ {
		rowStart := y * w * 4
		for x := 0; x < w; x++ {
			pos := rowStart + x*4

			// Fast path: bit-identical pixels, the overwhelming majority in
			// near-identical screenshots. The mask is already Same.
			if a.Pix[pos] == b.Pix[pos] &&
				a.Pix[pos+1] == b.Pix[pos+1] &&
				a.Pix[pos+2] == b.Pix[pos+2] &&
				a.Pix[pos+3] == b.Pix[pos+3] {
				continue
			}

			delta := colorDelta(a.Pix, b.Pix, pos, pos, false)
			if math.Abs(delta) <= maxDelta {
				continue
			}

			if !opts.IncludeAA && (antialiased(a, b, x, y, w, h) || antialiased(b, a, x, y, w, h)) {
				mask.Pix[y*w+x] = Antialiased
				aaCount++
				continue
			}

			if delta < 0 {
				mask.Pix[y*w+x] = DifferentDarker
			} else {
				mask.Pix[y*w+x] = Different
			}
			diffCount++
		}
	}
	return diffCount, aaCount
}
