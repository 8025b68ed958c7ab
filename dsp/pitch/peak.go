package pitch

import "math"

// lagRange converts a frequency band to the inclusive lag range searched in
// an autocorrelation vector of length n:
//
//	minLag = floor(sampleRate / maxHz), at least 1
//	maxLag = floor(sampleRate / minHz), at most n-3
//
// Both bounds leave room for the neighbours read by the local-maximum test
// and the parabolic fit. An empty band yields (1, 0).
func lagRange(sampleRate, minHz, maxHz float64, n int) (minLag, maxLag int) {
	lo := math.Floor(sampleRate / maxHz)
	hi := math.Floor(sampleRate / minHz)

	if lo < 1 {
		lo = 1
	}
	if limit := float64(n - 3); hi > limit {
		hi = limit
	}
	// Compare before converting: lo may be far beyond the int range.
	if !(lo <= hi) {
		return 1, 0
	}
	return int(lo), int(hi)
}

// findPeak returns the highest strict local maximum of ac within
// [minLag, maxLag]. value is 0 and found is false when there is none with a
// positive height.
func findPeak(ac []float64, minLag, maxLag int) (index int, value float64, found bool) {
	for i := minLag; i <= maxLag; i++ {
		cur := ac[i]
		if cur > value && cur > ac[i-1] && cur > ac[i+1] {
			value = cur
			index = i
			found = true
		}
	}
	return index, value, found
}

// lagToFrequency converts a lag in samples to Hz.
func lagToFrequency(sampleRate, lag float64) float64 {
	if lag <= 0 {
		return 0
	}
	return sampleRate / lag
}
