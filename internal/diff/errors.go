package diff

import "fmt"

// DimensionMismatchError reports that the two images being compared do not
// have identical dimensions. Comparison is refused outright; mismatched
// inputs are never clipped or aligned.
type DimensionMismatchError struct {
	AWidth, AHeight int
	BWidth, BHeight int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("image dimensions do not match: %dx%d vs %dx%d",
		e.AWidth, e.AHeight, e.BWidth, e.BHeight)
}

// InternalConsistencyError reports a pixel buffer whose declared dimensions
// disagree with its actual layout. This signals corruption upstream of the
// engine and is never tolerated silently.
type InternalConsistencyError struct {
	Width, Height int
	Stride        int
	Length        int
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("pixel buffer inconsistent with dimensions %dx%d: stride %d, length %d",
		e.Width, e.Height, e.Stride, e.Length)
}
