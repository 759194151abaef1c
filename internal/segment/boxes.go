package segment

import "sort"

// Box is the bounding box of one labeled component in frame coordinates.
//
// Area is the true foreground pixel count of the originating component, not
// Width*Height, and is unaffected by padding.
type Box struct {
	X      int `json:"x"`      // Left edge (0-based)
	Y      int `json:"y"`      // Top edge (0-based)
	Width  int `json:"width"`  // Horizontal extent in pixels
	Height int `json:"height"` // Vertical extent in pixels
	Area   int `json:"area"`   // Foreground pixel count of the component
}

// filterBoxes drops components below the noise floor: area under minArea, or
// an unpadded width or height under minDim. Filtering happens before padding
// so stray pixels and thin speckle lines are judged on their raw extents.
func filterBoxes(boxes []Box, minArea, minDim int) []Box {
	kept := boxes[:0]
	for _, b := range boxes {
		if b.Area < minArea || b.Width < minDim || b.Height < minDim {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// padBox expands a box by padding pixels on every side and clips it to the
// frame. The clipped extent is min(frame edge - padded origin, raw + 2*pad),
// so a box that already touches an edge keeps its full intersection with the
// frame. Negative padding must be clamped by the caller.
func padBox(b Box, padding, width, height int) Box {
	x := b.X - padding
	if x < 0 {
		x = 0
	}
	y := b.Y - padding
	if y < 0 {
		y = 0
	}
	w := b.Width + 2*padding
	if w > width-x {
		w = width - x
	}
	h := b.Height + 2*padding
	if h > height-y {
		h = height - y
	}
	return Box{X: x, Y: y, Width: w, Height: h, Area: b.Area}
}

// orderBoxes sorts boxes into reading order (ascending y, ties by ascending
// x) and truncates to at most maxSymbols entries, keeping the topmost and
// leftmost regions.
//
// The y-then-x sort approximates left-to-right reading for horizontally laid
// out symbols. Symbols stacked within the same row band, exponents, and
// fraction bars can misorder; that is a known limitation of the heuristic.
func orderBoxes(boxes []Box, maxSymbols int) []Box {
	sort.SliceStable(boxes, func(i, j int) bool {
		if boxes[i].Y != boxes[j].Y {
			return boxes[i].Y < boxes[j].Y
		}
		return boxes[i].X < boxes[j].X
	})
	if len(boxes) > maxSymbols {
		boxes = boxes[:maxSymbols]
	}
	return boxes
}
