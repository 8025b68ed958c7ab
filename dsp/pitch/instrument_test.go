package pitch

import (
	"errors"
	"testing"
)

func TestParseInstrument(t *testing.T) {
	tests := []struct {
		in   string
		want Instrument
	}{
		{"chromatic", InstrumentChromatic},
		{"Guitar", InstrumentGuitar},
		{" bass ", InstrumentBass},
	}
	for _, tc := range tests {
		got, err := ParseInstrument(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseInstrument(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
		if _, _, ok := got.Range(); !ok {
			t.Fatalf("%v has no range", got)
		}
	}

	if _, err := ParseInstrument("theremin"); !errors.Is(err, ErrUnknownInstrument) {
		t.Fatalf("ParseInstrument(theremin) error = %v, want ErrUnknownInstrument", err)
	}
}

func TestInstrumentRange(t *testing.T) {
	lo, hi, ok := InstrumentBass.Range()
	if !ok || lo != 20 || hi != 400 {
		t.Fatalf("bass range = (%v, %v, %v)", lo, hi, ok)
	}
	if _, _, ok := Instrument(-1).Range(); ok {
		t.Fatal("invalid instrument reported a range")
	}
	if got := Instrument(9).String(); got != "Instrument(9)" {
		t.Fatalf("String() = %q", got)
	}
}
