package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pixelproof/imgdiff/internal/diff"
)

// Result is the externally visible outcome of one comparison. It serializes
// to the JSON object consumed by wrapper tooling, so the field set and tags
// are part of the tool's contract and must not change shape casually.
//
// A Result is either a success or a failure, never both: build one with
// Succeeded or Failed.
type Result struct {
	// Success reports whether the comparison ran to completion.
	Success bool `json:"success"`

	// Error holds the failure message. Present only when Success is false.
	Error string `json:"error,omitempty"`

	// DiffCount is the number of pixels classified as different.
	DiffCount int64 `json:"diff_count"`

	// TotalPixels is width times height of the compared images.
	TotalPixels int64 `json:"total_pixels"`

	// DiffPercentage is 100 * DiffCount / TotalPixels.
	DiffPercentage float64 `json:"diff_percentage"`

	// AACount is the number of pixels attributed to anti-aliasing rather
	// than content change.
	AACount int64 `json:"aa_count"`

	// Width and Height are the shared dimensions of the compared images.
	Width  int `json:"width"`
	Height int `json:"height"`

	// DurationMS is the elapsed wall-clock time of the comparison in
	// milliseconds.
	DurationMS float64 `json:"duration_ms"`

	// OutputPath names the written diff image. Present only when one was
	// requested and saved.
	OutputPath string `json:"output_path,omitempty"`

	// Regions lists the clustered change bounding boxes. Present only when
	// region reporting was requested.
	Regions []diff.Region `json:"regions,omitempty"`
}

// Succeeded builds a successful Result from the engine statistics.
func Succeeded(stats diff.Statistics, width, height int, durationMS float64) Result {
	return Result{
		Success:        true,
		DiffCount:      stats.DiffCount,
		TotalPixels:    stats.TotalPixels,
		DiffPercentage: stats.DiffPercentage,
		AACount:        stats.AACount,
		Width:          width,
		Height:         height,
		DurationMS:     durationMS,
	}
}

// Failed builds a failed Result carrying only the error message and timing.
func Failed(err error, durationMS float64) Result {
	return Result{
		Success:    false,
		Error:      err.Error(),
		DurationMS: durationMS,
	}
}

// ExitCode maps the result onto the process exit convention: 0 on success,
// 1 on failure.
func (r Result) ExitCode() int {
	if r.Success {
		return 0
	}
	return 1
}

// WriteJSON writes the result as a single JSON object followed by a
// newline.
func (r Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(r)
}

// WriteText writes the human-readable success summary to out. Failures do
// not use WriteText; their message goes to stderr instead.
func (r Result) WriteText(out io.Writer) {
	fmt.Fprintln(out, "Diff completed successfully!")
	fmt.Fprintf(out, "Image dimensions: %dx%d\n", r.Width, r.Height)
	fmt.Fprintf(out, "Different pixels: %d\n", r.DiffCount)
	fmt.Fprintf(out, "Total pixels: %d\n", r.TotalPixels)
	fmt.Fprintf(out, "Difference percentage: %.2f%%\n", r.DiffPercentage)
	if r.OutputPath != "" {
		fmt.Fprintf(out, "Output saved to: %s\n", r.OutputPath)
	}
	for _, reg := range r.Regions {
		fmt.Fprintf(out, "Changed region: %dx%d at (%d, %d)\n", reg.Width, reg.Height, reg.X, reg.Y)
	}
}
