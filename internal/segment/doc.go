// Package segment extracts discrete symbols from a captured frame so each can
// be recognized independently downstream.
//
// The pipeline converts a frame to grayscale, computes a global Otsu threshold
// from the luminance histogram, binarizes the frame into a foreground mask,
// labels 4-connected foreground components with an explicit-stack flood fill,
// filters out sub-threshold noise, pads and clips the surviving bounding
// boxes, sorts them into reading order, and materializes one white-backed
// PNG crop per box.
//
// # Coordinate System
//
// All coordinates are 0-based with (0,0) at the top-left corner, X increasing
// rightward and Y increasing downward. Intermediate buffers (luminance, mask,
// visited flags) are flat row-major slices addressed as y*width+x.
//
// # Polarity
//
// Dark-on-light polarity is assumed: ink is darker than the background, so
// pixels below the threshold are foreground. This is a fixed policy, not a
// property detected from the image.
//
// # Lifecycle
//
// Extract is a pure, synchronous function of its inputs. Every working buffer
// is allocated per call and released on return; no state persists between
// frames, and calls on different frames may run concurrently.
//
// # Degenerate Inputs
//
// A zero-area frame or a frame with no foreground pixels yields an empty
// result rather than an error.
package segment
