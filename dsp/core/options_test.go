package core

import (
	"errors"
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(48000), WithBlockSize(2048))
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want 48000", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithSampleRate(math.NaN()), WithBlockSize(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestProcessorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProcessorConfig
		wantErr error
	}{
		{name: "default", cfg: DefaultProcessorConfig()},
		{name: "zero rate", cfg: ProcessorConfig{SampleRate: 0, BlockSize: 1024}, wantErr: ErrInvalidSampleRate},
		{name: "negative rate", cfg: ProcessorConfig{SampleRate: -44100, BlockSize: 1024}, wantErr: ErrInvalidSampleRate},
		{name: "inf rate", cfg: ProcessorConfig{SampleRate: math.Inf(1), BlockSize: 1024}, wantErr: ErrInvalidSampleRate},
		{name: "zero block", cfg: ProcessorConfig{SampleRate: 44100, BlockSize: 0}, wantErr: ErrInvalidBlockSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBlockDuration(t *testing.T) {
	cfg := ProcessorConfig{SampleRate: 1000, BlockSize: 250}
	if got := cfg.BlockDuration(); got != 0.25 {
		t.Fatalf("BlockDuration() = %v, want 0.25", got)
	}
}
