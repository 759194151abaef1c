package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sketchlens/symbol-mcp/internal/imaging"
	"github.com/sketchlens/symbol-mcp/internal/segment"
)

// writeSymbolFrame writes a white PNG with black squares at the given
// (x, y, size) triples and returns its path.
func writeSymbolFrame(t *testing.T, w, h int, squares [][3]int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, white)
		}
	}
	black := color.RGBA{0, 0, 0, 255}
	for _, sq := range squares {
		for dy := 0; dy < sq[2]; dy++ {
			for dx := 0; dx < sq[2]; dx++ {
				img.Set(sq[0]+dx, sq[1]+dy, black)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create frame: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode frame: %v", err)
	}
	return path
}

func TestHandleImageLoad(t *testing.T) {
	path := writeSymbolFrame(t, 80, 60, nil)
	s := New()

	result, err := s.executeTool("image_load", mustArgs(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("image_load failed: %v", err)
	}

	info, ok := result.(*imaging.FrameInfo)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if info.Width != 80 || info.Height != 60 {
		t.Errorf("dimensions: got %dx%d, want 80x60", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
}

func TestHandleImageLoad_MissingFile(t *testing.T) {
	s := New()
	_, err := s.executeTool("image_load", mustArgs(t, map[string]interface{}{"path": "/no/such/frame.png"}))
	if err == nil {
		t.Error("image_load should fail for a missing file")
	}
}

func TestHandleImageDimensions(t *testing.T) {
	path := writeSymbolFrame(t, 33, 44, nil)
	s := New()

	result, err := s.executeTool("image_dimensions", mustArgs(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("image_dimensions failed: %v", err)
	}

	dims, ok := result.(*imaging.DimensionsResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if dims.Width != 33 || dims.Height != 44 {
		t.Errorf("dimensions: got %dx%d, want 33x44", dims.Width, dims.Height)
	}
}

func TestHandleImageCrop(t *testing.T) {
	path := writeSymbolFrame(t, 50, 50, nil)
	s := New()

	result, err := s.executeTool("image_crop", mustArgs(t, map[string]interface{}{
		"path": path, "x1": 0, "y1": 0, "x2": 25, "y2": 20,
	}))
	if err != nil {
		t.Fatalf("image_crop failed: %v", err)
	}

	crop, ok := result.(*imaging.CropResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if crop.Width != 25 || crop.Height != 20 {
		t.Errorf("crop dimensions: got %dx%d, want 25x20", crop.Width, crop.Height)
	}
}

func TestHandleSymbolsExtract(t *testing.T) {
	path := writeSymbolFrame(t, 100, 100, [][3]int{
		{10, 10, 12},
		{60, 10, 12},
	})
	s := New()

	result, err := s.executeTool("symbols_extract", mustArgs(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("symbols_extract failed: %v", err)
	}

	extraction, ok := result.(*segment.Result)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if len(extraction.Boxes) != 2 {
		t.Fatalf("boxes: got %d, want 2", len(extraction.Boxes))
	}
	if len(extraction.Crops) != 2 {
		t.Fatalf("crops: got %d, want 2", len(extraction.Crops))
	}
	// Same row band, so reading order is left to right.
	if extraction.Boxes[0].X > extraction.Boxes[1].X {
		t.Errorf("boxes out of reading order: %+v", extraction.Boxes)
	}
}

func TestHandleSymbolsExtract_ExplicitZeroPadding(t *testing.T) {
	path := writeSymbolFrame(t, 100, 100, [][3]int{{10, 10, 12}})
	s := New()

	result, err := s.executeTool("symbols_extract", mustArgs(t, map[string]interface{}{
		"path": path, "padding": 0, "min_area": 1, "min_dimension": 1,
	}))
	if err != nil {
		t.Fatalf("symbols_extract failed: %v", err)
	}

	extraction := result.(*segment.Result)
	if len(extraction.Boxes) != 1 {
		t.Fatalf("boxes: got %d, want 1", len(extraction.Boxes))
	}
	// padding: 0 must not fall back to the default of 4.
	want := segment.Box{X: 10, Y: 10, Width: 12, Height: 12, Area: 144}
	if extraction.Boxes[0] != want {
		t.Errorf("box: got %+v, want %+v", extraction.Boxes[0], want)
	}
}

func TestHandleSymbolsExtract_MaxSymbols(t *testing.T) {
	squares := make([][3]int, 5)
	for i := range squares {
		squares[i] = [3]int{10 + i*18, 10 + i*15, 10}
	}
	path := writeSymbolFrame(t, 120, 120, squares)
	s := New()

	result, err := s.executeTool("symbols_extract", mustArgs(t, map[string]interface{}{
		"path": path, "max_symbols": 2, "min_area": 1, "min_dimension": 1,
	}))
	if err != nil {
		t.Fatalf("symbols_extract failed: %v", err)
	}

	extraction := result.(*segment.Result)
	if len(extraction.Boxes) != 2 {
		t.Errorf("boxes: got %d, want 2", len(extraction.Boxes))
	}
}

func TestHandleSymbolsAnnotate(t *testing.T) {
	path := writeSymbolFrame(t, 100, 100, [][3]int{{20, 20, 15}})
	s := New()

	result, err := s.executeTool("symbols_annotate", mustArgs(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("symbols_annotate failed: %v", err)
	}

	overlay, ok := result.(*imaging.OverlayResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if overlay.SymbolCount != 1 {
		t.Errorf("symbol count: got %d, want 1", overlay.SymbolCount)
	}
	if overlay.Width != 100 || overlay.Height != 100 {
		t.Errorf("overlay dimensions: got %dx%d, want 100x100", overlay.Width, overlay.Height)
	}
	if overlay.ImageBase64 == "" {
		t.Error("overlay image is empty")
	}
}

func TestHandleSymbolsRecognize_MissingFile(t *testing.T) {
	// The frame must be validated before any OCR engine is touched.
	s := New()
	_, err := s.executeTool("symbols_recognize", mustArgs(t, map[string]interface{}{
		"path": "/no/such/frame.png",
	}))
	if err == nil {
		t.Error("symbols_recognize should fail for a missing file")
	}
}

func TestExecuteTool_MalformedArguments(t *testing.T) {
	s := New()
	tools := []string{"image_load", "image_dimensions", "image_crop", "symbols_extract", "symbols_annotate", "symbols_recognize"}

	for _, name := range tools {
		t.Run(name, func(t *testing.T) {
			if _, err := s.executeTool(name, json.RawMessage(`{"path":42}`)); err == nil {
				t.Errorf("%s should reject malformed arguments", name)
			}
		})
	}
}

func mustArgs(t *testing.T, v map[string]interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}
	return raw
}
