// Package time computes time-domain level statistics of a sample block.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pitch/dsp/core"
)

// Stats holds block level statistics.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Peak          float64 // max |x|
	Peak_dB       float64
	CrestFactor   float64 // peak / RMS (linear)
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	ZeroCrossings int
}

// Calculate computes all level statistics of signal.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMS_dB:  math.Inf(-1),
			Peak_dB: math.Inf(-1),
		}
	}

	energy := Energy(signal)
	nf := float64(n)
	rms := math.Sqrt(energy / nf)

	var peak float64
	zeroCrossings := 0
	for i, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		DC:            floats.Sum(signal) / nf,
		RMS:           rms,
		RMS_dB:        core.LinearToDB(rms),
		Peak:          peak,
		Peak_dB:       core.LinearToDB(peak),
		CrestFactor:   crest,
		Energy:        energy,
		Power:         energy / nf,
		ZeroCrossings: zeroCrossings,
	}
}

// Energy returns the sum of squared samples.
func Energy(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return floats.Dot(signal, signal)
}

// RMS returns the root-mean-square of the signal: sqrt(sum(x^2) / N).
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(Energy(signal) / float64(len(signal)))
}
