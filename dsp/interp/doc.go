// Package interp provides sub-sample peak interpolation for discrete
// sequences such as autocorrelation vectors and magnitude spectra.
//
//   - [Parabolic]:     vertex offset of the parabola through three points
//   - [ParabolicPeak]: bounds-checked refinement of a peak index in a slice
package interp
