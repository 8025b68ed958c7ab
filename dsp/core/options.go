package core

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by ProcessorConfig.Validate.
var (
	ErrInvalidSampleRate = errors.New("core: sample rate must be positive and finite")
	ErrInvalidBlockSize  = errors.New("core: block size must be positive")
)

// ProcessorConfig defines the stream settings shared by block processors:
// the rate samples arrive at and the fixed number of samples per block.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns CD-rate defaults with a 1024-sample block,
// about 23 ms of audio per block.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BlockSize:  1024,
	}
}

// WithSampleRate sets the processing sample rate.
// Non-positive or non-finite values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if IsFinitePositive(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
// Non-positive values are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether cfg describes a usable stream.
func (cfg ProcessorConfig) Validate() error {
	if !IsFinitePositive(cfg.SampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if cfg.BlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, cfg.BlockSize)
	}
	return nil
}

// BlockDuration returns the duration of one block in seconds.
func (cfg ProcessorConfig) BlockDuration() float64 {
	if cfg.SampleRate <= 0 {
		return 0
	}
	return float64(cfg.BlockSize) / cfg.SampleRate
}

// IsFinitePositive reports whether v is a finite value greater than zero.
func IsFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
