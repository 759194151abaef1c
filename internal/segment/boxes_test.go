package segment

import "testing"

func TestFilterBoxes(t *testing.T) {
	boxes := []Box{
		{X: 0, Y: 0, Width: 10, Height: 10, Area: 90},  // kept
		{X: 20, Y: 0, Width: 10, Height: 10, Area: 40}, // area too small
		{X: 40, Y: 0, Width: 3, Height: 10, Area: 90},  // too narrow
		{X: 60, Y: 0, Width: 10, Height: 3, Area: 90},  // too short
	}

	kept := filterBoxes(boxes, 80, 6)
	if len(kept) != 1 {
		t.Fatalf("kept: got %d, want 1", len(kept))
	}
	if kept[0].X != 0 {
		t.Errorf("wrong box survived: %+v", kept[0])
	}
}

func TestFilterBoxes_UsesUnpaddedDimensions(t *testing.T) {
	// A 5x5 box fails minDimension 6 even though padding would later grow it.
	boxes := []Box{{X: 10, Y: 10, Width: 5, Height: 5, Area: 100}}
	if kept := filterBoxes(boxes, 1, 6); len(kept) != 0 {
		t.Errorf("thin box survived filtering: %+v", kept)
	}
}

func TestPadBox(t *testing.T) {
	tests := []struct {
		name    string
		in      Box
		padding int
		w, h    int
		want    Box
	}{
		{
			name:    "interior box",
			in:      Box{X: 10, Y: 10, Width: 5, Height: 5, Area: 25},
			padding: 2,
			w:       100, h: 100,
			want: Box{X: 8, Y: 8, Width: 9, Height: 9, Area: 25},
		},
		{
			name: "clipped at top-left, width capped by frame",
			// The 10x10 corner scenario: clip to
			// min(imageWidth - paddedX, rawWidth + 2*padding).
			in:      Box{X: 2, Y: 2, Width: 3, Height: 3, Area: 9},
			padding: 4,
			w:       10, h: 10,
			want: Box{X: 0, Y: 0, Width: 10, Height: 10, Area: 9},
		},
		{
			name:    "touching right edge keeps frame intersection",
			in:      Box{X: 95, Y: 40, Width: 5, Height: 5, Area: 25},
			padding: 3,
			w:       100, h: 100,
			want: Box{X: 92, Y: 37, Width: 8, Height: 11, Area: 25},
		},
		{
			name:    "zero padding is identity",
			in:      Box{X: 2, Y: 2, Width: 3, Height: 3, Area: 9},
			padding: 0,
			w:       10, h: 10,
			want: Box{X: 2, Y: 2, Width: 3, Height: 3, Area: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padBox(tt.in, tt.padding, tt.w, tt.h)
			if got != tt.want {
				t.Errorf("padBox: got %+v, want %+v", got, tt.want)
			}
			if got.X < 0 || got.Y < 0 || got.X+got.Width > tt.w || got.Y+got.Height > tt.h {
				t.Errorf("padded box %+v exceeds %dx%d frame", got, tt.w, tt.h)
			}
		})
	}
}

func TestOrderBoxes(t *testing.T) {
	boxes := []Box{
		{X: 50, Y: 20},
		{X: 10, Y: 20},
		{X: 30, Y: 5},
		{X: 0, Y: 40},
	}

	ordered := orderBoxes(boxes, 12)
	want := []Box{
		{X: 30, Y: 5},
		{X: 10, Y: 20},
		{X: 50, Y: 20},
		{X: 0, Y: 40},
	}
	for i, b := range ordered {
		if b != want[i] {
			t.Errorf("position %d: got %+v, want %+v", i, b, want[i])
		}
	}
}

func TestOrderBoxes_Truncates(t *testing.T) {
	boxes := []Box{
		{X: 0, Y: 50},
		{X: 0, Y: 10},
		{X: 0, Y: 30},
		{X: 0, Y: 20},
		{X: 0, Y: 40},
	}

	ordered := orderBoxes(boxes, 3)
	if len(ordered) != 3 {
		t.Fatalf("length: got %d, want 3", len(ordered))
	}
	// Must be the prefix of the full sorted list: topmost survive.
	for i, wantY := range []int{10, 20, 30} {
		if ordered[i].Y != wantY {
			t.Errorf("position %d: got y=%d, want %d", i, ordered[i].Y, wantY)
		}
	}
}
