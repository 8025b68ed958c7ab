// Package pitch estimates the fundamental frequency of monophonic audio,
// one fixed-size block at a time.
//
// Each call to [Detector.Detect] runs the same pipeline:
//
//  1. The block replaces the detector's sample buffer wholesale.
//  2. Blocks whose RMS does not exceed the minimum signal strength are
//     rejected as silence.
//  3. The biased autocorrelation is computed for every lag and divided by its
//     maximum.
//  4. The strongest strict local maximum inside the lag range of the allowed
//     frequency band is located. Peaks not above the correlation threshold
//     are rejected as unpitched.
//  5. The peak lag is refined with 3-point parabolic interpolation and
//     converted to Hz.
//  6. The estimate enters a short FIFO whose upper median is returned.
//
// Rejected blocks return 0 and never touch the smoothing window.
// [Detector.Analyze] exposes the same pipeline with a tri-state [Status] so
// callers can tell silence from unpitched input.
package pitch
