package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pitch/dsp/pitch"
	"github.com/cwbudde/algo-pitch/internal/testutil"
)

// pcm16WAV encodes interleaved frames as a 16-bit PCM WAV file.
func pcm16WAV(t *testing.T, sampleRate, channels int, interleaved []float64) []byte {
	t.Helper()
	var buf bytes.Buffer
	dataSize := len(interleaved) * 2
	le := binary.LittleEndian

	buf.WriteString("RIFF")
	binary.Write(&buf, le, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, le, uint32(16))
	binary.Write(&buf, le, uint16(1))
	binary.Write(&buf, le, uint16(channels))
	binary.Write(&buf, le, uint32(sampleRate))
	binary.Write(&buf, le, uint32(sampleRate*channels*2))
	binary.Write(&buf, le, uint16(channels*2))
	binary.Write(&buf, le, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, le, uint32(dataSize))
	for _, v := range interleaved {
		binary.Write(&buf, le, int16(math.Round(v*math.MaxInt16)))
	}
	return buf.Bytes()
}

func TestReadWAVDownmix(t *testing.T) {
	const n = 4096
	tone := testutil.DeterministicSine(220, 44100, 0.5, n)
	stereo := make([]float64, 2*n)
	for i, v := range tone {
		stereo[2*i] = v
		stereo[2*i+1] = v
	}

	src, err := readWAV(bytes.NewReader(pcm16WAV(t, 44100, 2, stereo)))
	if err != nil {
		t.Fatalf("readWAV() error = %v", err)
	}
	if src.sampleRate != 44100 {
		t.Fatalf("sample rate = %v, want 44100", src.sampleRate)
	}
	if len(src.samples) != n {
		t.Fatalf("got %d mono samples, want %d", len(src.samples), n)
	}
	testutil.RequireSliceNearlyEqual(t, src.samples, tone, 1e-3)
}

func TestRunWAVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a3.wav")
	data := pcm16WAV(t, 44100, 1, testutil.DeterministicSine(220, 44100, 0.5, 8192))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-size", "2048", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "A3") || !strings.Contains(out, "pitched 4/4 blocks") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunSynth(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-synth", "220", "-size", "2048", "-duration", "0.5", "-summary"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if got := stdout.String(); !strings.HasPrefix(got, "pitched 10/10 blocks, mean 220.") {
		t.Fatalf("summary = %q", got)
	}
}

func TestRunVerboseLogsBlocks(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-synth", "440", "-size", "1024", "-duration", "0.1", "-v", "-agc"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if n := strings.Count(stderr.String(), `msg="pitch block"`); n != 4 {
		t.Fatalf("logged %d blocks, want 4:\n%s", n, stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no input", nil, 1},
		{"bad instrument", []string{"-instrument", "kazoo", "-synth", "220"}, 1},
		{"bad method", []string{"-method", "fast", "-synth", "220"}, 1},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.wav")}, 1},
		{"synth above nyquist", []string{"-synth", "30000"}, 1},
		{"bad window", []string{"-synth", "220", "-window", "0"}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != tc.code {
				t.Fatalf("run(%q) = %d, want %d; stderr: %s", tc.args, code, tc.code, stderr.String())
			}
			if !strings.Contains(stderr.String(), "error: ") {
				t.Fatalf("stderr missing error line: %s", stderr.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-h) = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "Usage: pitchinfo") {
		t.Fatalf("usage missing: %s", stderr.String())
	}
}

func TestSummarize(t *testing.T) {
	rows := []row{
		{result: pitch.Result{Status: pitch.StatusPitched, Frequency: 220}},
		{result: pitch.Result{Status: pitch.StatusSilence}},
		{result: pitch.Result{Status: pitch.StatusPitched, Frequency: 222}},
		{result: pitch.Result{Status: pitch.StatusPitched, Frequency: 218}},
	}
	s := summarize(rows)
	if s.blocks != 4 || s.pitched != 3 {
		t.Fatalf("counts = %d/%d, want 3/4", s.pitched, s.blocks)
	}
	if s.mean != 220 || s.median != 220 || math.Abs(s.stddev-2) > 1e-12 {
		t.Fatalf("summary = %+v", s)
	}

	one := summarize(rows[:1])
	if one.stddev != 0 || one.median != 220 {
		t.Fatalf("single-value summary = %+v", one)
	}
}
