// Package diff implements the perceptual pixel comparison engine.
//
// Compare classifies every pixel position of two equally sized NRGBA
// buffers as same, different, or anti-aliased, using the squared color
// distance in the YIQ NTSC transmission color space ("Measuring perceived
// color difference using YIQ NTSC transmission color space in mobile
// applications", Y. Kotsarenko and F. Ramos). Semi-transparent pixels are
// composited against a white backdrop before the distance is taken, so a
// fully transparent pixel compares equal no matter what RGB values sit
// underneath it.
//
// Anti-aliased edge pixels are detected with the intensity-slope heuristic
// from "Anti-aliased Pixel and Intensity Slope Detector" (V. Vysniauskas,
// 2009): a candidate pixel with at most two equal-brightness neighbors whose
// darkest or brightest neighbor sits in a flat area of both images is
// treated as edge smoothing, not content change.
//
// The per-pixel pass is partitioned into row bands processed by parallel
// workers. Each band accumulates its own counters and the totals are summed
// in band order, so results are identical for any worker count.
//
// Render turns a classification mask into a visual diff image; Regions
// clusters differing pixels into bounding boxes. Both are separate from
// Compare so that statistics-only callers never pay for rendering.
package diff
