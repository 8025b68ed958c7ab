package interp

import "math"

// CurvatureEpsilon is the smallest |a| for which a parabola is treated as
// having a well defined vertex.
const CurvatureEpsilon = 1e-6

// Parabolic fits y = a*x^2 + b*x + c through (-1, y0), (0, y1), (1, y2) with
//
//	a = (y0 + y2 - 2*y1) / 2
//	b = (y2 - y0) / 2
//
// and returns the vertex offset -b/(2a) relative to the centre point.
// When |a| < CurvatureEpsilon the peak is flat and ok is false; the offset is
// then 0 and callers should keep the integer position.
func Parabolic(y0, y1, y2 float64) (offset float64, ok bool) {
	a := (y0 + y2 - 2*y1) / 2
	b := (y2 - y0) / 2

	if math.Abs(a) < CurvatureEpsilon {
		return 0, false
	}
	return -b / (2 * a), true
}

// ParabolicPeak refines the integer peak index i of data to a fractional
// position. Indices without both neighbours, and degenerate peaks, return
// float64(i) with ok false.
func ParabolicPeak(data []float64, i int) (position float64, ok bool) {
	if i <= 0 || i >= len(data)-1 {
		return float64(i), false
	}

	offset, ok := Parabolic(data[i-1], data[i], data[i+1])
	return float64(i) + offset, ok
}
