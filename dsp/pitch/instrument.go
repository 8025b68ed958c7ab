package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownInstrument is returned for an Instrument without a preset.
var ErrUnknownInstrument = errors.New("pitch: unknown instrument")

// Instrument selects a frequency range preset.
type Instrument int

const (
	// InstrumentChromatic covers the full default band, 20-2000 Hz.
	InstrumentChromatic Instrument = iota
	// InstrumentGuitar covers 60-1000 Hz: E2 (82.4 Hz) plus upper register
	// and overtone headroom.
	InstrumentGuitar
	// InstrumentBass covers 20-400 Hz, down to the B0 string of a five-string
	// bass.
	InstrumentBass
)

var instrumentRanges = map[Instrument][2]float64{
	InstrumentChromatic: {DefaultMinFrequency, DefaultMaxFrequency},
	InstrumentGuitar:    {60, 1000},
	InstrumentBass:      {20, 400},
}

var instrumentNames = map[Instrument]string{
	InstrumentChromatic: "chromatic",
	InstrumentGuitar:    "guitar",
	InstrumentBass:      "bass",
}

// Range returns the preset band in Hz.
func (i Instrument) Range() (minHz, maxHz float64, ok bool) {
	r, ok := instrumentRanges[i]
	return r[0], r[1], ok
}

func (i Instrument) String() string {
	if name, ok := instrumentNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Instrument(%d)", int(i))
}

// ParseInstrument maps a preset name ("chromatic", "guitar", "bass") to an
// Instrument.
func ParseInstrument(name string) (Instrument, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for inst, n := range instrumentNames {
		if n == name {
			return inst, nil
		}
	}
	return InstrumentChromatic, fmt.Errorf("%w: %q", ErrUnknownInstrument, name)
}
