package segment

// labelComponents finds all 4-connected foreground components in a mask and
// returns one bounding box per component. Nothing is filtered here; boxes are
// produced in row-major discovery order.
//
// The scan visits pixels in row-major order and flood-fills from each
// unvisited foreground pixel. The fill uses an explicit stack of flat
// y*width+x indices rather than recursion, so components spanning large
// fractions of the frame cannot exhaust call depth. A separate visited flag
// set guarantees every pixel is processed at most once across the whole scan.
//
// Only aggregate statistics are tracked per component (extents and pixel
// count); member pixels are not retained.
func labelComponents(mask []bool, width, height int) []Box {
	visited := make([]bool, len(mask))
	var stack []int
	var boxes []Box

	for start, fg := range mask {
		if !fg || visited[start] {
			continue
		}

		minX, minY := width, height
		maxX, maxY := 0, 0
		area := 0

		stack = append(stack[:0], start)
		visited[start] = true
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x := idx % width
			y := idx / width
			area++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}

			// 4-connectivity: left, right, up, down. No diagonals.
			if x > 0 && mask[idx-1] && !visited[idx-1] {
				visited[idx-1] = true
				stack = append(stack, idx-1)
			}
			if x < width-1 && mask[idx+1] && !visited[idx+1] {
				visited[idx+1] = true
				stack = append(stack, idx+1)
			}
			if y > 0 && mask[idx-width] && !visited[idx-width] {
				visited[idx-width] = true
				stack = append(stack, idx-width)
			}
			if y < height-1 && mask[idx+width] && !visited[idx+width] {
				visited[idx+width] = true
				stack = append(stack, idx+width)
			}
		}

		boxes = append(boxes, Box{
			X:      minX,
			Y:      minY,
			Width:  maxX - minX + 1,
			Height: maxY - minY + 1,
			Area:   area,
		})
	}

	return boxes
}
