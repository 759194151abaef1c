// Package imaging provides frame access and presentation helpers for the
// symbol extraction server.
//
// It owns the decode-once frame cache, rectangular inspection crops, and the
// annotated overlay used to review segmentation output. All operations work
// with standard Go image.Image types and a coordinate system where (0,0) is
// at the top-left corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// Pixel coordinates are 0-based. For regions, (x1,y1) is inclusive and
// (x2,y2) is exclusive.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use by multiple goroutines. The remaining
// operations are stateless and may be called concurrently on different
// images.
//
// # Error Handling
//
// Functions return errors for coordinates outside image bounds, invalid
// region specifications, file I/O failures during loading, and encoding
// failures during output.
package imaging
