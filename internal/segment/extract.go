package segment

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Options configures a single extraction run. The zero value of every field
// except Padding means "use the default"; Padding zero is meaningful (no
// padding) and only negative values are clamped.
type Options struct {
	// MaxSymbols caps the number of returned boxes. Default 12.
	MaxSymbols int

	// Padding is added around each surviving box on every side, clipped to
	// the frame. Default 4 via DefaultOptions; negative values are treated
	// as 0.
	Padding int

	// MinArea is the noise floor in foreground pixels.
	// Default max(80, totalPixels/5000).
	MinArea int

	// MinDimension is the minimum unpadded box width and height. Default 6.
	MinDimension int

	// Scale upscales each crop by this factor before encoding, for
	// recognizers that prefer larger glyphs. Default 1.0 (no resampling).
	Scale float64

	// Smooth applies a Gaussian blur with this radius to the frame before
	// grayscale conversion, suppressing capture noise ahead of thresholding.
	// Default 0 (off).
	Smooth float64
}

// DefaultOptions returns the documented defaults for a frame of the given
// dimensions.
func DefaultOptions(width, height int) Options {
	return Options{
		MaxSymbols:   12,
		Padding:      4,
		MinArea:      defaultMinArea(width * height),
		MinDimension: 6,
		Scale:        1.0,
	}
}

func defaultMinArea(totalPixels int) int {
	minArea := totalPixels / 5000
	if minArea < 80 {
		minArea = 80
	}
	return minArea
}

// normalized fills unset fields with defaults and clamps invalid values.
func (o Options) normalized(totalPixels int) Options {
	if o.MaxSymbols <= 0 {
		o.MaxSymbols = 12
	}
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.MinArea <= 0 {
		o.MinArea = defaultMinArea(totalPixels)
	}
	if o.MinDimension <= 0 {
		o.MinDimension = 6
	}
	if o.Scale <= 0 {
		o.Scale = 1.0
	}
	return o
}

// CropImage is one encoded symbol crop.
//
// A zero-value CropImage is the placeholder for a symbol whose crop could not
// be materialized; it keeps its slot so crops stay index-aligned with boxes,
// and callers must treat it as "extraction failed for this symbol".
type CropImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Empty reports whether the crop is a failed-extraction placeholder.
func (c CropImage) Empty() bool {
	return c.ImageBase64 == ""
}

// Result pairs each bounding box with its crop, 1:1 by index, in reading
// order.
type Result struct {
	Boxes []Box       `json:"bounding_boxes"`
	Crops []CropImage `json:"cropped_images"`
}

// Extract runs the full segmentation pipeline on a frame.
//
// Stages run strictly forward: grayscale, histogram, Otsu threshold,
// binarization, component labeling, noise filtering, padding, ordering, and
// cropping. A zero-area frame or a frame with no foreground pixels returns an
// empty result. The frame is only read; all working buffers are scoped to
// this call.
//
// The returned error is currently always nil.
func Extract(img image.Image, opts Options) (*Result, error) {
	empty := &Result{Boxes: []Box{}, Crops: []CropImage{}}
	if img == nil {
		return empty, nil
	}

	src := img
	if opts.Smooth > 0 {
		src = blur.Gaussian(img, opts.Smooth)
	}

	gray, width, height := grayscale(src)
	if len(gray) == 0 {
		return empty, nil
	}
	opts = opts.normalized(width * height)

	hist := histogram(gray)
	threshold := OtsuThreshold(hist, len(gray))
	mask := binarize(gray, threshold)

	boxes := labelComponents(mask, width, height)
	boxes = filterBoxes(boxes, opts.MinArea, opts.MinDimension)
	if len(boxes) == 0 {
		return empty, nil
	}
	for i := range boxes {
		boxes[i] = padBox(boxes[i], opts.Padding, width, height)
	}
	boxes = orderBoxes(boxes, opts.MaxSymbols)

	crops := make([]CropImage, len(boxes))
	for i, b := range boxes {
		crops[i] = cropSymbol(img, b, opts.Scale)
	}

	return &Result{Boxes: boxes, Crops: crops}, nil
}

// cropSymbol materializes one symbol as a base64 PNG.
//
// The output image is exactly the padded box size, filled white, with the
// source region composited at (0,0) so transparent capture pixels read as
// background. Encoding failure yields the zero-value placeholder instead of
// aborting the batch.
func cropSymbol(img image.Image, b Box, scale float64) CropImage {
	if b.Width <= 0 || b.Height <= 0 {
		return CropImage{}
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	srcOrigin := img.Bounds().Min.Add(image.Pt(b.X, b.Y))
	draw.Draw(dst, dst.Bounds(), img, srcOrigin, draw.Over)

	var out image.Image = dst
	if scale != 1.0 {
		w := int(math.Round(float64(b.Width) * scale))
		h := int(math.Round(float64(b.Height) * scale))
		if w < 1 || h < 1 {
			return CropImage{}
		}
		out = imaging.Resize(dst, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return CropImage{}
	}

	outBounds := out.Bounds()
	return CropImage{
		Width:       outBounds.Dx(),
		Height:      outBounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}
}
