package pitch

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pitch/dsp/conv"
	"github.com/cwbudde/algo-pitch/dsp/core"
)

const (
	// DefaultMinFrequency is the lowest detectable fundamental in Hz.
	DefaultMinFrequency = 20.0
	// DefaultMaxFrequency is the highest detectable fundamental in Hz.
	DefaultMaxFrequency = 2000.0
	// DefaultCorrelationThreshold is the normalized autocorrelation a peak
	// must exceed to count as pitched.
	DefaultCorrelationThreshold = 0.8
	// DefaultMinSignalStrength is the RMS a block must exceed to be analysed.
	DefaultMinSignalStrength = 0.001
	// DefaultSmoothingWindow is the number of accepted estimates the median
	// is taken over.
	DefaultSmoothingWindow = 4
)

// Errors returned by New and the detection methods.
var (
	ErrInvalidSampleRate      = core.ErrInvalidSampleRate
	ErrInvalidBufferSize      = core.ErrInvalidBlockSize
	ErrInputLengthMismatch    = errors.New("pitch: input length does not match buffer size")
	ErrInvalidFrequencyRange  = errors.New("pitch: invalid frequency range")
	ErrInvalidThreshold       = errors.New("pitch: invalid threshold")
	ErrInvalidSmoothingWindow = errors.New("pitch: smoothing window must be at least 1")
)

type config struct {
	minFreq     float64
	maxFreq     float64
	threshold   float64
	minStrength float64
	window      int
	method      conv.Method
	observer    Observer
	err         error
}

func defaultConfig() config {
	return config{
		minFreq:     DefaultMinFrequency,
		maxFreq:     DefaultMaxFrequency,
		threshold:   DefaultCorrelationThreshold,
		minStrength: DefaultMinSignalStrength,
		window:      DefaultSmoothingWindow,
		method:      conv.MethodDirect,
	}
}

func (c *config) validate() error {
	if c.err != nil {
		return c.err
	}
	if !core.IsFinitePositive(c.minFreq) || !core.IsFinitePositive(c.maxFreq) || c.maxFreq <= c.minFreq {
		return fmt.Errorf("%w: [%v, %v] Hz", ErrInvalidFrequencyRange, c.minFreq, c.maxFreq)
	}
	if math.IsNaN(c.threshold) || c.threshold < 0 || c.threshold >= 1 {
		return fmt.Errorf("%w: correlation threshold %v not in [0, 1)", ErrInvalidThreshold, c.threshold)
	}
	if math.IsNaN(c.minStrength) || math.IsInf(c.minStrength, 0) || c.minStrength < 0 {
		return fmt.Errorf("%w: minimum signal strength %v", ErrInvalidThreshold, c.minStrength)
	}
	if c.window < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSmoothingWindow, c.window)
	}
	return nil
}

// Option configures a Detector at construction.
type Option func(*config)

// WithFrequencyRange limits detection to fundamentals in [minHz, maxHz].
func WithFrequencyRange(minHz, maxHz float64) Option {
	return func(c *config) {
		c.minFreq = minHz
		c.maxFreq = maxHz
	}
}

// WithInstrument applies the frequency range of an instrument preset.
func WithInstrument(inst Instrument) Option {
	return func(c *config) {
		minHz, maxHz, ok := inst.Range()
		if !ok {
			c.err = fmt.Errorf("%w: %v", ErrUnknownInstrument, inst)
			return
		}
		c.minFreq = minHz
		c.maxFreq = maxHz
	}
}

// WithCorrelationThreshold sets the normalized peak height, in [0, 1), that
// a block must exceed to be reported as pitched.
func WithCorrelationThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
	}
}

// WithMinSignalStrength sets the RMS level at or below which blocks are
// treated as silence.
func WithMinSignalStrength(rms float64) Option {
	return func(c *config) {
		c.minStrength = rms
	}
}

// WithSmoothingWindow sets how many accepted estimates the median spans.
func WithSmoothingWindow(n int) Option {
	return func(c *config) {
		c.window = n
	}
}

// WithMethod selects the autocorrelation strategy. Both strategies produce
// the same vector up to rounding; MethodFFT is faster for large blocks.
func WithMethod(m conv.Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithObserver installs a diagnostics observer called once per analysed
// block. A nil observer disables diagnostics.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}
