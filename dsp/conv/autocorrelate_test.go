package conv

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestAutoCorrelateKnownValues(t *testing.T) {
	got, err := AutoCorrelate([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("AutoCorrelate() error = %v", err)
	}

	// Biased: support shrinks with lag and no 1/(N-L) correction is applied.
	want := []float64{14, 8, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ac[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAutoCorrelateEmpty(t *testing.T) {
	_, err := AutoCorrelate(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("AutoCorrelate(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestAutoCorrelatorMethodsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 2, 3, 17, 64, 1000, 1024} {
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.Float64()*2 - 1
		}

		direct, err := NewAutoCorrelator(n, MethodDirect)
		if err != nil {
			t.Fatalf("NewAutoCorrelator(direct) error = %v", err)
		}
		fft, err := NewAutoCorrelator(n, MethodFFT)
		if err != nil {
			t.Fatalf("NewAutoCorrelator(fft) error = %v", err)
		}
		if fft.FFTSize() < 2*n-1 {
			t.Fatalf("FFTSize() = %d, want >= %d", fft.FFTSize(), 2*n-1)
		}

		want := make([]float64, n)
		got := make([]float64, n)
		if err := direct.Compute(want, x); err != nil {
			t.Fatalf("direct Compute() error = %v", err)
		}
		if err := fft.Compute(got, x); err != nil {
			t.Fatalf("fft Compute() error = %v", err)
		}

		tol := 1e-9 * math.Max(1, want[0])
		for i := range want {
			if math.Abs(got[i]-want[i]) > tol {
				t.Fatalf("n=%d lag %d: fft %v, direct %v", n, i, got[i], want[i])
			}
		}
	}
}

func TestComputeNormalizedPeakIsOne(t *testing.T) {
	for _, method := range []Method{MethodDirect, MethodFFT} {
		t.Run(method.String(), func(t *testing.T) {
			const n = 512
			x := make([]float64, n)
			for i := range x {
				x[i] = 0.3 * math.Sin(2*math.Pi*float64(i)/37)
			}

			ac, err := NewAutoCorrelator(n, method)
			if err != nil {
				t.Fatalf("NewAutoCorrelator() error = %v", err)
			}
			dst := make([]float64, n)
			if err := ac.ComputeNormalized(dst, x); err != nil {
				t.Fatalf("ComputeNormalized() error = %v", err)
			}

			peak := math.Inf(-1)
			for _, v := range dst {
				peak = math.Max(peak, v)
			}
			if math.Abs(peak-1) > 1e-12 {
				t.Fatalf("max = %v, want 1", peak)
			}
		})
	}
}

func TestComputeNormalizedAllZero(t *testing.T) {
	for _, method := range []Method{MethodDirect, MethodFFT} {
		t.Run(method.String(), func(t *testing.T) {
			ac, err := NewAutoCorrelator(128, method)
			if err != nil {
				t.Fatalf("NewAutoCorrelator() error = %v", err)
			}
			dst := make([]float64, 128)
			if err := ac.ComputeNormalized(dst, make([]float64, 128)); err != nil {
				t.Fatalf("ComputeNormalized() error = %v", err)
			}
			for i, v := range dst {
				if v != 0 {
					t.Fatalf("ac[%d] = %v, want 0", i, v)
				}
			}
		})
	}
}

func TestNormalizeMax(t *testing.T) {
	ac := []float64{2, -4, 8, 1}
	if d := NormalizeMax(ac); d != 8 {
		t.Fatalf("NormalizeMax() divisor = %v, want 8", d)
	}
	want := []float64{0.25, -0.5, 1, 0.125}
	for i := range want {
		if ac[i] != want[i] {
			t.Fatalf("ac[%d] = %v, want %v", i, ac[i], want[i])
		}
	}

	neg := []float64{-1, -2}
	if d := NormalizeMax(neg); d != 0 {
		t.Fatalf("NormalizeMax(non-positive) divisor = %v, want 0", d)
	}
	if neg[0] != -1 || neg[1] != -2 {
		t.Fatalf("non-positive vector must be left untouched: %v", neg)
	}

	if d := NormalizeMax(nil); d != 0 {
		t.Fatalf("NormalizeMax(nil) = %v, want 0", d)
	}
}

func TestAutoCorrelatorErrors(t *testing.T) {
	if _, err := NewAutoCorrelator(0, MethodDirect); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("NewAutoCorrelator(0) error = %v, want ErrEmptyInput", err)
	}
	if _, err := NewAutoCorrelator(8, Method(42)); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("NewAutoCorrelator(bad method) error = %v, want ErrUnknownMethod", err)
	}

	ac, err := NewAutoCorrelator(8, MethodDirect)
	if err != nil {
		t.Fatalf("NewAutoCorrelator() error = %v", err)
	}
	if err := ac.Compute(make([]float64, 8), make([]float64, 7)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Compute(short input) error = %v, want ErrLengthMismatch", err)
	}
	if err := ac.Compute(make([]float64, 9), make([]float64, 8)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Compute(long output) error = %v, want ErrLengthMismatch", err)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{in: "direct", want: MethodDirect},
		{in: "", want: MethodDirect},
		{in: " FFT ", want: MethodFFT},
		{in: "yin", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMethod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if s := Method(9).String(); s != "Method(9)" {
		t.Fatalf("String() = %q", s)
	}
}
