package imaging

import "fmt"

// InputNotFoundError reports that an input path does not resolve to readable
// content. It is raised before any decode attempt.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input not found: %s", e.Path)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

// DecodeError reports that a file exists but cannot be parsed as a supported
// image encoding.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
