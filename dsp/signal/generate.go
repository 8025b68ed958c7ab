// Package signal synthesizes deterministic test tones and noise for pitch
// detection.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pitch/dsp/core"
)

// Errors returned by Generator methods and Mix.
var (
	ErrInvalidLength    = errors.New("signal: sample count must be > 0")
	ErrInvalidAmplitude = errors.New("signal: amplitude must be >= 0")
	ErrInvalidFrequency = errors.New("signal: frequency must be positive and below Nyquist")
)

// Generator creates deterministic signals at a shared sample rate.
type Generator struct {
	cfg   core.ProcessorConfig
	seed  int64
	phase float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used by WhiteNoise.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithPhase sets the starting phase in radians of Sine and Harmonic.
func WithPhase(phase float64) Option {
	return func(g *Generator) {
		g.phase = phase
	}
}

// NewGenerator creates a generator from processor options.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates amplitude·sin(2π·f·i/fs + phase).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Harmonic(freqHz, amplitude, 1, samples)
}

// Harmonic generates a fundamental plus overtones 2..harmonics, overtone k
// weighted 1/k, scaled so the weights sum to amplitude.
func (g *Generator) Harmonic(freqHz, amplitude float64, harmonics, samples int) ([]float64, error) {
	if err := g.check(amplitude, samples); err != nil {
		return nil, err
	}
	if !core.IsFinitePositive(freqHz) || freqHz >= g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, freqHz, g.cfg.SampleRate)
	}
	harmonics = max(harmonics, 1)

	var norm float64
	for k := 1; k <= harmonics; k++ {
		norm += 1 / float64(k)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for k := 1; k <= harmonics; k++ {
		if float64(k)*freqHz >= g.cfg.SampleRate/2 {
			break
		}
		weight := amplitude / (float64(k) * norm)
		for i := range out {
			out[i] += weight * math.Sin(float64(k)*(step*float64(i)+g.phase))
		}
	}
	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude]. Every call
// restarts from the configured seed.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := g.check(amplitude, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func (g *Generator) check(amplitude float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}
	if amplitude < 0 || math.IsNaN(amplitude) {
		return fmt.Errorf("%w: %v", ErrInvalidAmplitude, amplitude)
	}
	return g.cfg.Validate()
}

// Mix sums equal-length signals into a new slice.
func Mix(signals ...[]float64) ([]float64, error) {
	if len(signals) == 0 || len(signals[0]) == 0 {
		return nil, fmt.Errorf("%w: nothing to mix", ErrInvalidLength)
	}
	out := make([]float64, len(signals[0]))
	for i, s := range signals {
		if len(s) != len(out) {
			return nil, fmt.Errorf("%w: signal %d has %d samples, want %d", ErrInvalidLength, i, len(s), len(out))
		}
		floats.Add(out, s)
	}
	return out, nil
}

// Normalize scales data to targetPeak absolute amplitude and returns a new
// slice. All-zero input yields zeros.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: target peak %v", ErrInvalidAmplitude, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: nothing to normalize", ErrInvalidLength)
	}

	peak := math.Max(floats.Max(data), -floats.Min(data))
	out := make([]float64, len(data))
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}
	floats.ScaleTo(out, targetPeak/peak, data)
	return out, nil
}
