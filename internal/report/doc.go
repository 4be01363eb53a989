// Package report turns one image comparison into a machine- or
// human-readable result.
//
// # Overview
//
// The package owns the full lifecycle of a comparison request: loading and
// normalizing both inputs, running the pixel engine, rendering and saving
// the optional diff image, and timing the whole operation. The outcome is a
// Result that serializes to a stable JSON shape consumed by wrapper tooling.
//
// # Result Construction
//
// Results are built only through Succeeded and Failed, never by filling the
// struct directly. A failed result carries an error message and timing but
// no statistics, and a successful one carries statistics but no error, so
// the two paths cannot be mixed.
package report
