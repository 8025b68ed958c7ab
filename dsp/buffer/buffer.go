package buffer

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when a block does not match the buffer length.
var ErrLengthMismatch = errors.New("buffer: block length mismatch")

// Buffer holds the most recent block of samples. Its length is fixed at
// construction. DSP functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the fixed number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Load replaces the buffer contents with src. The buffer is left untouched
// when len(src) differs from Len().
func (b *Buffer) Load(src []float64) error {
	if len(src) != len(b.samples) {
		return fmt.Errorf("%w: got %d samples, want %d", ErrLengthMismatch, len(src), len(b.samples))
	}
	copy(b.samples, src)
	return nil
}

// LoadFloat32 is Load for float32 PCM, widening each sample.
func (b *Buffer) LoadFloat32(src []float32) error {
	if len(src) != len(b.samples) {
		return fmt.Errorf("%w: got %d samples, want %d", ErrLengthMismatch, len(src), len(b.samples))
	}
	for i, v := range src {
		b.samples[i] = float64(v)
	}
	return nil
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}
