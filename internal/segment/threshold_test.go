package segment

import "testing"

func TestOtsuThreshold_Bimodal(t *testing.T) {
	// Two narrow clusters far apart; the threshold must fall strictly
	// between them.
	var hist [256]int
	hist[50] = 500
	hist[200] = 500

	threshold := OtsuThreshold(hist, 1000)
	if threshold <= 50 || threshold >= 200 {
		t.Errorf("threshold %d not strictly between clusters at 50 and 200", threshold)
	}
}

func TestOtsuThreshold_BimodalUneven(t *testing.T) {
	var hist [256]int
	hist[30] = 100
	hist[220] = 900

	threshold := OtsuThreshold(hist, 1000)
	if threshold <= 30 || threshold >= 220 {
		t.Errorf("threshold %d not strictly between clusters at 30 and 220", threshold)
	}
}

func TestOtsuThreshold_Uniform(t *testing.T) {
	// A fully uniform image never produces positive variance; the default
	// threshold applies.
	tests := []struct {
		name  string
		value int
	}{
		{"all black", 0},
		{"all gray", 128},
		{"all white", 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hist [256]int
			hist[tt.value] = 10000

			if got := OtsuThreshold(hist, 10000); got != 128 {
				t.Errorf("threshold: got %d, want 128", got)
			}
		})
	}
}

func TestOtsuThreshold_EmptyHistogram(t *testing.T) {
	var hist [256]int
	if got := OtsuThreshold(hist, 0); got != 128 {
		t.Errorf("threshold for empty histogram: got %d, want 128", got)
	}
}

func TestOtsuThreshold_FirstMaximumWins(t *testing.T) {
	// Values only at 0 and 255: every threshold from 1 to 255 separates the
	// same two classes with identical variance, so the first candidate must
	// be kept.
	var hist [256]int
	hist[0] = 500
	hist[255] = 500

	if got := OtsuThreshold(hist, 1000); got != 1 {
		t.Errorf("tie-break: got %d, want 1", got)
	}
}

func TestBinarize(t *testing.T) {
	gray := []uint8{0, 99, 100, 101, 255}
	mask := binarize(gray, 100)

	want := []bool{true, true, false, false, false}
	for i, fg := range want {
		if mask[i] != fg {
			t.Errorf("mask[%d]: got %v, want %v", i, mask[i], fg)
		}
	}
}
