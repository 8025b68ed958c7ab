package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// minFFTSize is the smallest transform the FFT method plans.
const minFFTSize = 16

// AutoCorrelator computes the biased autocorrelation of fixed-length blocks.
// All scratch space, including the FFT plan, is allocated once so Compute
// does not allocate.
//
// An AutoCorrelator is not safe for concurrent use.
type AutoCorrelator struct {
	n      int
	method Method

	// FFT method only
	fftSize  int
	plan     *algofft.Plan[complex128]
	frame    []complex128
	spectrum []complex128
	re       []float64
	im       []float64
	power    []float64
}

// NewAutoCorrelator creates an autocorrelator for blocks of length n.
func NewAutoCorrelator(n int, method Method) (*AutoCorrelator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: block length %d", ErrEmptyInput, n)
	}

	a := &AutoCorrelator{n: n, method: method}

	switch method {
	case MethodDirect:
	case MethodFFT:
		// Linear (non-circular) correlation needs at least 2n-1 points.
		a.fftSize = max(nextPowerOf2(2*n-1), minFFTSize)

		plan, err := algofft.NewPlan64(a.fftSize)
		if err != nil {
			return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
		}

		a.plan = plan
		a.frame = make([]complex128, a.fftSize)
		a.spectrum = make([]complex128, a.fftSize)
		a.re = make([]float64, a.fftSize)
		a.im = make([]float64, a.fftSize)
		a.power = make([]float64, a.fftSize)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}

	return a, nil
}

// Len returns the block length.
func (a *AutoCorrelator) Len() int { return a.n }

// Method returns the configured strategy.
func (a *AutoCorrelator) Method() Method { return a.method }

// FFTSize returns the transform length, or 0 for the direct method.
func (a *AutoCorrelator) FFTSize() int { return a.fftSize }

// Compute writes the unnormalized biased autocorrelation of x into dst.
// Both slices must have length Len().
func (a *AutoCorrelator) Compute(dst, x []float64) error {
	if len(x) != a.n || len(dst) != a.n {
		return fmt.Errorf("%w: input %d, output %d, want %d", ErrLengthMismatch, len(x), len(dst), a.n)
	}

	if a.method == MethodFFT {
		return a.computeFFT(dst, x)
	}

	autoCorrelateDirect(dst, x)
	return nil
}

// ComputeNormalized is Compute followed by NormalizeMax.
func (a *AutoCorrelator) ComputeNormalized(dst, x []float64) error {
	if err := a.Compute(dst, x); err != nil {
		return err
	}
	NormalizeMax(dst)
	return nil
}

func (a *AutoCorrelator) computeFFT(dst, x []float64) error {
	for i := range a.frame {
		a.frame[i] = 0
	}
	for i, v := range x {
		a.frame[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.spectrum, a.frame); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i, c := range a.spectrum {
		a.re[i] = real(c)
		a.im[i] = imag(c)
	}
	vecmath.Power(a.power, a.re, a.im)
	for i, p := range a.power {
		a.spectrum[i] = complex(p, 0)
	}

	if err := a.plan.Inverse(a.frame, a.spectrum); err != nil {
		return fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	for lag := range dst {
		dst[lag] = real(a.frame[lag])
	}
	return nil
}

// autoCorrelateDirect fills dst[L] with the dot product of x[:n-L] and x[L:].
func autoCorrelateDirect(dst, x []float64) {
	n := len(x)
	for lag := 0; lag < n; lag++ {
		dst[lag] = floats.Dot(x[:n-lag], x[lag:])
	}
}

// AutoCorrelate returns the unnormalized biased autocorrelation of x for lags
// 0..len(x)-1 using the direct method.
func AutoCorrelate(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]float64, len(x))
	autoCorrelateDirect(out, x)
	return out, nil
}

// NormalizeMax divides every element of ac by the single largest value of ac.
// When that maximum is not positive (all-zero input) ac is left untouched.
// It returns the divisor, or 0 if nothing was scaled.
func NormalizeMax(ac []float64) float64 {
	if len(ac) == 0 {
		return 0
	}

	peak := floats.Max(ac)
	if !(peak > 0) {
		return 0
	}

	// Divide rather than scale by 1/peak so the maximum becomes exactly 1.
	for i := range ac {
		ac[i] /= peak
	}
	return peak
}
