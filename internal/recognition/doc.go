// Package recognition turns extracted symbol crops into text.
//
// Recognition is deliberately decoupled from segmentation: the pipeline in
// internal/segment produces index-aligned crops, and this package invokes a
// Recognizer once per crop, concurrently and independently, so one symbol's
// failure or delay never blocks its siblings. Each symbol's outcome occupies
// its own slot, addressed by index.
//
// The default Recognizer wraps the Tesseract engine via gosseract/v2 and
// requires Tesseract to be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Any other backend (e.g., a remote recognition model) can be plugged in by
// implementing the one-method Recognizer interface.
package recognition
