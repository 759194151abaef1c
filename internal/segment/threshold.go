package segment

// defaultThreshold is returned when no candidate threshold produces a
// positive inter-class variance (a fully uniform frame).
const defaultThreshold = 128

// OtsuThreshold computes the global binarization threshold that maximizes
// inter-class variance between the background class (luminance < t) and the
// foreground class (luminance >= t).
//
// All 256 candidate thresholds are evaluated in a single linear pass using
// cumulative weighted sums, so class means never need recomputing from
// scratch. Candidates where either class has zero weight contribute no
// variance and are skipped. The first threshold achieving the maximum
// variance wins; later ties do not displace it.
func OtsuThreshold(hist [256]int, totalPixels int) int {
	if totalPixels <= 0 {
		return defaultThreshold
	}

	var totalSum float64
	for v, count := range hist {
		totalSum += float64(v) * float64(count)
	}

	var (
		bestThreshold = defaultThreshold
		bestVariance  float64

		weightBg float64 // pixels with luminance < t
		sumBg    float64 // weighted luminance sum of the background class
	)
	for t := 0; t < 256; t++ {
		if t > 0 {
			weightBg += float64(hist[t-1])
			sumBg += float64(t-1) * float64(hist[t-1])
		}
		weightFg := float64(totalPixels) - weightBg
		if weightBg == 0 || weightFg == 0 {
			continue
		}

		meanBg := sumBg / weightBg
		meanFg := (totalSum - sumBg) / weightFg
		diff := meanBg - meanFg
		variance := weightBg * weightFg * diff * diff

		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = t
		}
	}

	return bestThreshold
}

// binarize produces the foreground mask for a luminance buffer.
// Dark-on-light polarity: pixels strictly below the threshold are foreground.
func binarize(gray []uint8, threshold int) []bool {
	mask := make([]bool, len(gray))
	for i, v := range gray {
		mask[i] = int(v) < threshold
	}
	return mask
}
