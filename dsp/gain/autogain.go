package gain

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pitch/dsp/core"
	timestats "github.com/cwbudde/algo-pitch/stats/time"
)

const (
	// DefaultTargetLevel is the RMS level AutoGain steers towards.
	DefaultTargetLevel = 0.3
	// DefaultSmoothing is the fraction of the new target gain blended in
	// per update.
	DefaultSmoothing = 0.1
	// MinGain and MaxGain bound the applied gain.
	MinGain = 0.1
	MaxGain = 10.0
)

// AutoGain is a block-rate automatic gain control. It is not safe for
// concurrent use.
type AutoGain struct {
	gain        float64
	targetLevel float64
	smoothing   float64
}

// NewAutoGain returns an AutoGain at unity gain with the default target and
// smoothing.
func NewAutoGain() *AutoGain {
	return &AutoGain{
		gain:        1,
		targetLevel: DefaultTargetLevel,
		smoothing:   DefaultSmoothing,
	}
}

// Gain returns the current linear gain.
func (a *AutoGain) Gain() float64 { return a.gain }

// TargetLevel returns the target RMS level.
func (a *AutoGain) TargetLevel() float64 { return a.targetLevel }

// Smoothing returns the smoothing factor.
func (a *AutoGain) Smoothing() float64 { return a.smoothing }

// SetTargetLevel sets the target RMS, clamped to [0, 1].
func (a *AutoGain) SetTargetLevel(level float64) {
	if math.IsNaN(level) {
		return
	}
	a.targetLevel = core.Clamp(level, 0, 1)
}

// SetTargetLevelDB sets the target RMS in dBFS, clamped to at most 0 dBFS.
func (a *AutoGain) SetTargetLevelDB(db float64) {
	a.SetTargetLevel(core.DBToLinear(db))
}

// GainDB returns the current gain in dB.
func (a *AutoGain) GainDB() float64 {
	return core.LinearToDB(a.gain)
}

// SetSmoothing sets the smoothing factor, clamped to [0, 1]. 0 freezes the
// gain; 1 jumps straight to the target.
func (a *AutoGain) SetSmoothing(s float64) {
	if math.IsNaN(s) {
		return
	}
	a.smoothing = core.Clamp(s, 0, 1)
}

// Update moves the gain towards targetLevel/rms and returns it. A zero or
// invalid rms leaves the gain unchanged.
func (a *AutoGain) Update(rms float64) float64 {
	if !core.IsFinitePositive(rms) {
		return a.gain
	}
	target := core.Clamp(a.targetLevel/rms, MinGain, MaxGain)
	a.gain = a.gain*(1-a.smoothing) + target*a.smoothing
	return a.gain
}

// ProcessInPlace scales samples by the current gain.
func (a *AutoGain) ProcessInPlace(samples []float64) {
	vecmath.ScaleBlock(samples, samples, a.gain)
}

// ProcessBlock measures the RMS of samples, updates the gain and applies it
// in place. It returns the input RMS.
func (a *AutoGain) ProcessBlock(samples []float64) float64 {
	rms := timestats.RMS(samples)
	a.Update(rms)
	a.ProcessInPlace(samples)
	return rms
}

// Reset returns to unity gain, keeping target and smoothing.
func (a *AutoGain) Reset() {
	a.gain = 1
}
