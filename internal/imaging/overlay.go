package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/sketchlens/symbol-mcp/internal/segment"
)

// OverlayResult contains the frame with every extracted symbol outlined and
// numbered, encoded as base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	SymbolCount int    `json:"symbol_count"`
}

// goldenAngle spaces consecutive hues so neighboring boxes never share a
// similar color, regardless of how many symbols were found.
const goldenAngle = 137.507764

// AnnotateSymbols renders segmentation output for visual review: each
// bounding box is outlined in a distinct hue and labeled with its reading
// order index.
func AnnotateSymbols(img image.Image, boxes []segment.Box) (*OverlayResult, error) {
	bounds := img.Bounds()
	result := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	for i, b := range boxes {
		c := boxColor(i)
		drawRectOutline(result, b, c)
		drawIndexLabel(result, b.X+2, b.Y+2, strconv.Itoa(i), c)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &OverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		SymbolCount: len(boxes),
	}, nil
}

// boxColor returns the outline color for the i-th box, stepping the hue
// wheel by the golden angle at fixed saturation and value.
func boxColor(i int) color.RGBA {
	hue := math.Mod(float64(i)*goldenAngle, 360)
	r, g, b := colorful.Hsv(hue, 0.85, 0.9).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawRectOutline draws a 2-pixel box outline clipped to the image.
func drawRectOutline(img *image.RGBA, b segment.Box, c color.RGBA) {
	set := func(x, y int) {
		if x >= 0 && x < img.Bounds().Dx() && y >= 0 && y < img.Bounds().Dy() {
			img.Set(x, y, c)
		}
	}

	for t := 0; t < 2; t++ {
		for x := b.X; x < b.X+b.Width; x++ {
			set(x, b.Y+t)
			set(x, b.Y+b.Height-1-t)
		}
		for y := b.Y; y < b.Y+b.Height; y++ {
			set(b.X+t, y)
			set(b.X+b.Width-1-t, y)
		}
	}
}

// drawIndexLabel draws a small numeric label with a 3x5 pixel font on a
// contrasting background patch.
func drawIndexLabel(img *image.RGBA, x, y int, text string, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7
	fg := color.RGBA{255, 255, 255, 255}

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if px >= 0 && px < width && py >= 0 && py < height {
				img.Set(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if px >= 0 && px < width && py >= 0 && py < height {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
