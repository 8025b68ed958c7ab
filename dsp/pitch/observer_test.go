package pitch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cwbudde/algo-pitch/internal/testutil"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d := mustNew(t, 44100, 1024, WithObserver(NewLogObserver(logger)))
	if _, err := d.Detect(testutil.DeterministicSine(220, 44100, 0.5, 1024)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"level=DEBUG", `msg="pitch block"`, "status=pitched", "frequency_hz=220."} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestLogObserverLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	NewLogObserver(logger).Observe(Result{Status: StatusSilence})
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}

	NewLogObserver(logger).WithLevel(slog.LevelInfo).Observe(Result{Status: StatusSilence})
	if !strings.Contains(buf.String(), "status=silence") {
		t.Fatalf("info record missing: %q", buf.String())
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{
		StatusSilence:   "silence",
		StatusUnpitched: "unpitched",
		StatusPitched:   "pitched",
		Status(7):       "Status(7)",
	} {
		if got := s.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
