// Package conv provides one-sided biased autocorrelation for block analysis.
//
// For a block x of length N the autocorrelation at lag L is
//
//	ac[L] = sum_{i=0}^{N-L-1} x[i] * x[i+L],   0 <= L < N
//
// with no 1/(N-L) correction, so the support shrinks with lag. Two strategies
// compute the same vector:
//
//   - Direct: O(N^2) dot products, exact up to summation order.
//   - FFT: Wiener-Khinchin (IFFT of the power spectrum) on a zero-padded
//     frame of at least 2N-1 points, O(N log N).
//
// # Usage
//
// For repeated blocks of the same length, create a reusable autocorrelator:
//
//	ac, err := conv.NewAutoCorrelator(1024, conv.MethodDirect)
//	err = ac.ComputeNormalized(dst, block)
//
// For one-shot analysis use [AutoCorrelate] and [NormalizeMax].
package conv
