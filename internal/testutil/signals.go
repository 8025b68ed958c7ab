package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	return DeterministicSinePhase(freqHz, sampleRate, amplitude, 0, length)
}

// DeterministicSinePhase generates a sine wave starting at phase (radians).
func DeterministicSinePhase(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ScaleToRMS scales data in place so its RMS equals rms. All-zero input is
// left unchanged.
func ScaleToRMS(data []float64, rms float64) []float64 {
	var sumSq float64
	for _, v := range data {
		sumSq += v * v
	}
	if sumSq == 0 {
		return data
	}
	scale := rms / math.Sqrt(sumSq/float64(len(data)))
	for i := range data {
		data[i] *= scale
	}
	return data
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NextPowerOf2 returns the smallest power of 2 >= n.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
