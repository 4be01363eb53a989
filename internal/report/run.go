package report

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/pixelproof/imgdiff/internal/diff"
	"github.com/pixelproof/imgdiff/internal/imaging"
)

// Request describes one comparison to run end to end.
type Request struct {
	// PathA and PathB are the two images to compare, in order. The rendered
	// diff is painted over PathA's content.
	PathA string
	PathB string

	// Options configures the pixel engine and renderer.
	Options diff.Options

	// OutputPath, when non-empty, is where the rendered diff image is
	// saved. Empty skips rendering entirely.
	OutputPath string

	// BlurRadius, when positive, smooths both inputs with a Gaussian of
	// this sigma before comparison to suppress sub-pixel rendering noise.
	BlurRadius float64

	// ReportRegions clusters differing pixels into bounding boxes and
	// includes them in the result.
	ReportRegions bool
}

// Run executes a comparison request and always returns a Result, never an
// error: every failure path is folded into a failed Result so callers can
// serialize it uniformly.
func Run(ctx context.Context, req Request) Result {
	started := time.Now()
	fail := func(err error) Result {
		return Failed(err, elapsedMS(started))
	}

	if err := req.Options.Validate(); err != nil {
		return fail(err)
	}

	imgA, imgB, err := imaging.LoadPair(ctx, req.PathA, req.PathB)
	if err != nil {
		return fail(err)
	}

	a := imaging.ToNRGBA(imgA)
	b := imaging.ToNRGBA(imgB)

	if req.BlurRadius > 0 {
		a = imaging.Smooth(a, req.BlurRadius)
		b = imaging.Smooth(b, req.BlurRadius)
	}

	stats, mask, err := diff.Compare(a, b, req.Options)
	if err != nil {
		return fail(err)
	}
	if os.Getenv("IMGDIFF_LOG_LEVEL") == "debug" {
		log.Printf("compared %dx%d: %d different, %d anti-aliased", mask.Width, mask.Height, stats.DiffCount, stats.AACount)
	}

	result := Succeeded(stats, mask.Width, mask.Height, 0)

	if req.OutputPath != "" {
		rendered := diff.Render(a, mask, req.Options)
		if err := imaging.Save(rendered, req.OutputPath); err != nil {
			return fail(err)
		}
		result.OutputPath = req.OutputPath
	}

	if req.ReportRegions {
		result.Regions = mask.Regions()
	}

	result.DurationMS = elapsedMS(started)
	return result
}

func elapsedMS(started time.Time) float64 {
	return float64(time.Since(started)) / float64(time.Millisecond)
}
