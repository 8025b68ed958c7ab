package pitch

import "fmt"

// Status classifies the outcome of analysing one block.
type Status int

const (
	// StatusSilence means the block RMS did not exceed the minimum signal
	// strength.
	StatusSilence Status = iota
	// StatusUnpitched means the block carried signal but no autocorrelation
	// peak exceeded the correlation threshold.
	StatusUnpitched
	// StatusPitched means a fundamental was found and entered the smoothing
	// window.
	StatusPitched
)

func (s Status) String() string {
	switch s {
	case StatusSilence:
		return "silence"
	case StatusUnpitched:
		return "unpitched"
	case StatusPitched:
		return "pitched"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes the analysis of one block.
type Result struct {
	Status Status

	// Frequency is the smoothed estimate in Hz, or 0 unless Status is
	// StatusPitched. It is the value Detect returns.
	Frequency float64

	// Raw is this block's unsmoothed estimate in Hz.
	Raw float64

	// Strength is the block RMS.
	Strength float64

	// Correlation is the normalized autocorrelation of the strongest peak in
	// the search range (0 for silent blocks).
	Correlation float64

	// Lag is the refined peak lag in samples.
	Lag float64
}

// Pitched reports whether the block produced a frequency.
func (r Result) Pitched() bool {
	return r.Status == StatusPitched
}
