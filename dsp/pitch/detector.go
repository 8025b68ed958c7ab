package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-pitch/dsp/buffer"
	"github.com/cwbudde/algo-pitch/dsp/conv"
	"github.com/cwbudde/algo-pitch/dsp/core"
	"github.com/cwbudde/algo-pitch/dsp/interp"
	timestats "github.com/cwbudde/algo-pitch/stats/time"
)

// Detector estimates the fundamental frequency of fixed-size blocks.
//
// The sample rate and buffer size are fixed for the lifetime of a Detector.
// The smoothing window persists across calls, so one Detector serves one
// audio stream. A Detector is not safe for concurrent use.
type Detector struct {
	cfg        config
	sampleRate float64
	bufferSize int
	minLag     int
	maxLag     int

	current  *buffer.Buffer
	ac       []float64
	autocorr *conv.AutoCorrelator
	smoother *Smoother
}

// New constructs a Detector for blocks of bufferSize samples at sampleRate Hz.
// The sample buffer starts zero-filled and the smoothing window empty.
func New(sampleRate float64, bufferSize int, opts ...Option) (*Detector, error) {
	stream := core.ProcessorConfig{SampleRate: sampleRate, BlockSize: bufferSize}
	if err := stream.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	autocorr, err := conv.NewAutoCorrelator(bufferSize, cfg.method)
	if err != nil {
		return nil, fmt.Errorf("pitch: %w", err)
	}

	minLag, maxLag := lagRange(sampleRate, cfg.minFreq, cfg.maxFreq, bufferSize)

	return &Detector{
		cfg:        cfg,
		sampleRate: sampleRate,
		bufferSize: bufferSize,
		minLag:     minLag,
		maxLag:     maxLag,
		current:    buffer.New(bufferSize),
		ac:         make([]float64, bufferSize),
		autocorr:   autocorr,
		smoother:   NewSmoother(cfg.window),
	}, nil
}

// SampleRate returns the configured sample rate in Hz.
func (d *Detector) SampleRate() float64 { return d.sampleRate }

// BufferSize returns the required block length.
func (d *Detector) BufferSize() int { return d.bufferSize }

// LagRange returns the inclusive lag range searched for peaks. It is (1, 0)
// when no lag of the block falls inside the configured band.
func (d *Detector) LagRange() (minLag, maxLag int) { return d.minLag, d.maxLag }

// Window returns a copy of the accepted estimates currently smoothed, oldest
// first.
func (d *Detector) Window() []float64 { return d.smoother.Values() }

// Reset clears the smoothing window and zeroes the sample buffer.
func (d *Detector) Reset() {
	d.smoother.Reset()
	d.current.Zero()
}

// Detect analyses one block and returns the smoothed fundamental in Hz, or 0
// when the block is silent or carries no reliable pitch. A block whose length
// differs from BufferSize is rejected with ErrInputLengthMismatch.
func (d *Detector) Detect(samples []float64) (float64, error) {
	res, err := d.Analyze(samples)
	if err != nil {
		return 0, err
	}
	return res.Frequency, nil
}

// DetectFloat32 is Detect for float32 PCM blocks.
func (d *Detector) DetectFloat32(samples []float32) (float64, error) {
	if err := d.current.LoadFloat32(samples); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInputLengthMismatch, err)
	}
	res, err := d.analyze()
	if err != nil {
		return 0, err
	}
	return res.Frequency, nil
}

// Analyze is Detect with the full per-block diagnostics, including whether a
// zero frequency came from silence or from unpitched signal.
func (d *Detector) Analyze(samples []float64) (Result, error) {
	if err := d.current.Load(samples); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInputLengthMismatch, err)
	}
	return d.analyze()
}

func (d *Detector) analyze() (Result, error) {
	x := d.current.Samples()

	res := Result{Strength: timestats.RMS(x)}
	if res.Strength <= d.cfg.minStrength {
		res.Status = StatusSilence
		d.observe(res)
		return res, nil
	}

	if err := d.autocorr.ComputeNormalized(d.ac, x); err != nil {
		return Result{}, fmt.Errorf("pitch: %w", err)
	}

	index, value, found := findPeak(d.ac, d.minLag, d.maxLag)
	res.Correlation = value
	if !found || value <= d.cfg.threshold {
		res.Status = StatusUnpitched
		d.observe(res)
		return res, nil
	}

	res.Lag, _ = interp.ParabolicPeak(d.ac, index)
	res.Raw = lagToFrequency(d.sampleRate, res.Lag)
	res.Frequency = d.smoother.Push(res.Raw)
	res.Status = StatusPitched
	d.observe(res)
	return res, nil
}

func (d *Detector) observe(res Result) {
	if d.cfg.observer != nil {
		d.cfg.observer.Observe(res)
	}
}
