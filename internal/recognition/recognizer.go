package recognition

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/sync/errgroup"

	"github.com/sketchlens/symbol-mcp/internal/segment"
)

// Recognizer converts a single symbol image to text.
//
// Implementations may be slow or fallible (OCR engines, remote models); the
// batch layer isolates each call so failures stay per-symbol.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Symbol is the recognition outcome for one crop slot.
type Symbol struct {
	// Index is the slot in the extraction result this outcome belongs to.
	Index int `json:"index"`

	// Text is the recognized content; empty when recognition failed.
	Text string `json:"text"`

	// Error describes a per-symbol failure. Empty on success.
	Error string `json:"error,omitempty"`
}

// defaultConcurrency bounds how many recognitions run at once.
const defaultConcurrency = 4

// RecognizeAll invokes the recognizer once per crop, concurrently, and
// returns one Symbol per slot in input order.
//
// Empty crop placeholders (failed extractions) are reported as failed slots
// without touching the recognizer. A failing or slow symbol never aborts the
// others; the context cancels all outstanding recognitions.
func RecognizeAll(ctx context.Context, rec Recognizer, crops []segment.CropImage, concurrency int) []Symbol {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	symbols := make([]Symbol, len(crops))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, crop := range crops {
		symbols[i].Index = i
		if crop.Empty() {
			symbols[i].Error = "empty crop: extraction failed for this symbol"
			continue
		}

		g.Go(func() error {
			// Each worker writes only its own slot; errors are recorded
			// there instead of propagating, so siblings keep running.
			img, err := decodeCrop(crops[i])
			if err != nil {
				symbols[i].Error = err.Error()
				return nil
			}
			text, err := rec.Recognize(ctx, img)
			if err != nil {
				symbols[i].Error = err.Error()
				return nil
			}
			symbols[i].Text = text
			return nil
		})
	}
	g.Wait()

	return symbols
}

// decodeCrop turns a base64 PNG crop back into an image.
func decodeCrop(crop segment.CropImage) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(crop.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode crop: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode crop: %w", err)
	}
	return img, nil
}
