package tuning

import (
	"errors"
	"fmt"
	"math"
)

const (
	// A4Number is the MIDI note number of A4.
	A4Number = 69
	// DefaultTolerance is the deviation in cents still considered in tune.
	DefaultTolerance = 15.0
)

// ErrInvalidFrequency is returned for frequencies that are not positive and
// finite.
var ErrInvalidFrequency = errors.New("tuning: frequency must be positive and finite")

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Reference fixes the pitch of A4 in Hz.
type Reference struct {
	A4 float64
}

// Standard is concert pitch, A4 = 440 Hz.
var Standard = Reference{A4: 440}

// Frequency returns the equal-tempered frequency of a MIDI note.
func (r Reference) Frequency(note int) float64 {
	return r.A4 * mathPower2(float64(note-A4Number)/12)
}

// Note is the nearest equal-tempered note to a measured frequency.
type Note struct {
	Number    int     // MIDI note number
	Name      string  // pitch class and octave, e.g. "C#5"
	Octave    int     // scientific octave
	Frequency float64 // equal-tempered frequency of Number in Hz
	Cents     float64 // measured deviation from Frequency
}

// Closest returns the note nearest to freq.
func (r Reference) Closest(freq float64) (Note, error) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return Note{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, freq)
	}
	if math.IsNaN(r.A4) || math.IsInf(r.A4, 0) || r.A4 <= 0 {
		return Note{}, fmt.Errorf("%w: reference A4 %v", ErrInvalidFrequency, r.A4)
	}

	number := roundHalfUp(12*mathLog2(freq/r.A4)) + A4Number
	et := r.Frequency(number)
	return Note{
		Number:    number,
		Name:      NoteName(number),
		Octave:    octave(number),
		Frequency: et,
		Cents:     1200 * mathLog2(freq/et),
	}, nil
}

// roundHalfUp rounds to the nearest integer, ties towards +Inf, so a
// frequency exactly a quarter-tone below a note maps to that note.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// NoteName formats a MIDI note number as pitch class plus octave. MIDI 60 is
// "C4" and 69 is "A4".
func NoteName(number int) string {
	return fmt.Sprintf("%s%d", noteNames[((number%12)+12)%12], octave(number))
}

func octave(number int) int {
	return int(math.Floor(float64(number-12) / 12))
}

// Deviation says which way a note is off.
type Deviation int

const (
	InTune Deviation = iota
	Flat
	Sharp
)

func (d Deviation) String() string {
	switch d {
	case InTune:
		return "in tune"
	case Flat:
		return "flat"
	case Sharp:
		return "sharp"
	default:
		return fmt.Sprintf("Deviation(%d)", int(d))
	}
}

// InTune reports whether |Cents| is within tolerance.
func (n Note) InTune(tolerance float64) bool {
	return math.Abs(n.Cents) <= tolerance
}

// Direction classifies the deviation against DefaultTolerance.
func (n Note) Direction() Deviation {
	return n.DirectionWithin(DefaultTolerance)
}

// DirectionWithin classifies the deviation against tolerance.
func (n Note) DirectionWithin(tolerance float64) Deviation {
	switch {
	case n.InTune(tolerance):
		return InTune
	case n.Cents < 0:
		return Flat
	default:
		return Sharp
	}
}
