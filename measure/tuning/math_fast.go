//go:build fastmath

package tuning

import (
	"github.com/meko-christian/algo-approx"
)

const ln2 = 0.693147180559945309417232121458

// mathLog2 computes log2(x) as ln(x)/ln(2) using the fast approximation.
func mathLog2(x float64) float64 {
	return approx.FastLog(x) / ln2
}

// mathPower2 computes 2^x as e^(x·ln 2) using the fast approximation.
func mathPower2(x float64) float64 {
	return approx.FastExp(x * ln2)
}
