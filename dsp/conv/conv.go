package conv

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by autocorrelation functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrUnknownMethod  = errors.New("conv: unknown autocorrelation method")
)

// Method selects how an AutoCorrelator computes its lags.
type Method int

const (
	// MethodDirect sums each lag in the time domain.
	MethodDirect Method = iota

	// MethodFFT computes all lags from the zero-padded power spectrum.
	MethodFFT
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name ("direct", "fft") to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "direct", "":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodDirect, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
