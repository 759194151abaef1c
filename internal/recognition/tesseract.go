package recognition

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes symbols with the Tesseract OCR engine.
//
// Each crop holds a single glyph or short token, so the engine runs in
// single-character page segmentation mode. A fresh client is created per call
// because gosseract clients are not safe for concurrent use.
type Tesseract struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// Whitelist restricts recognition to these characters when non-empty.
	// Useful for math input, e.g. "0123456789+-=xy()".
	Whitelist string
}

// NewTesseract returns a Tesseract recognizer for the given language code.
// An empty language defaults to "eng".
func NewTesseract(language string) *Tesseract {
	if language == "" {
		language = "eng"
	}
	return &Tesseract{Language: language}
}

// Recognize runs OCR on one symbol crop and returns the trimmed text.
//
// Tesseract operates on files, so the crop is written to a temporary PNG and
// removed afterward. Context cancellation is checked before the engine is
// invoked; the engine call itself is not interruptible.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", "symbol-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, img); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_CHAR); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if t.Whitelist != "" {
		if err := client.SetWhitelist(t.Whitelist); err != nil {
			return "", fmt.Errorf("failed to set whitelist: %w", err)
		}
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}
