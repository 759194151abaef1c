package segment

import "image"

// grayscale reduces a frame to a flat row-major luminance buffer.
//
// Luminance uses the ITU-R BT.601 weights rounded to the nearest integer:
//
//	Y = round(0.299*R + 0.587*G + 0.114*B)
//
// The returned slice has exactly width*height entries; a zero-area frame
// returns a nil slice.
func grayscale(img image.Image) ([]uint8, int, int) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}

	gray := make([]uint8, width*height)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA() returns 16-bit channels; shift down to 8-bit first.
			// Integer rounding: (299R + 587G + 114B + 500) / 1000.
			lum := (299*(r>>8) + 587*(g>>8) + 114*(b>>8) + 500) / 1000
			gray[i] = uint8(lum)
			i++
		}
	}
	return gray, width, height
}

// histogram tabulates luminance frequency across 256 buckets.
// The sum of all counts equals len(gray).
func histogram(gray []uint8) [256]int {
	var hist [256]int
	for _, v := range gray {
		hist[v]++
	}
	return hist
}
