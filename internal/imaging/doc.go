// Package imaging handles decoding, normalization, and encoding of the images
// that flow through the comparison pipeline.
//
// Decoding accepts PNG, JPEG, and GIF via the standard library, plus BMP,
// TIFF, and WebP via golang.org/x/image. Decoded images are normalized to
// *image.NRGBA: a contiguous row-major buffer of 4-channel (R, G, B, A)
// pixels in the 0-255 range. Sources without an alpha channel come out fully
// opaque (alpha = 255). No resizing or color-space conversion happens here.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Load, LoadPair, and Save
// are stateless and can be called concurrently.
//
// # Error Handling
//
// Load distinguishes two failure classes so callers can report them
// precisely:
//   - *InputNotFoundError: the path does not resolve to readable content
//     (checked before any decode attempt)
//   - *DecodeError: content exists but is not a supported image encoding
package imaging
