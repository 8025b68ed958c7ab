// Command pitchinfo runs the block pitch detector over WAV files or a
// synthesized tone and prints the per-block estimates.
//
// Usage:
//
//	pitchinfo [flags] file.wav ...
//	pitchinfo [flags] -synth 220
//
// Examples:
//
//	pitchinfo -instrument guitar -size 4096 take1.wav
//	pitchinfo -synth 110 -harmonics 6 -noise 0.05
//	pitchinfo -agc -method fft -v quiet.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-pitch/dsp/conv"
	"github.com/cwbudde/algo-pitch/dsp/core"
	"github.com/cwbudde/algo-pitch/dsp/gain"
	"github.com/cwbudde/algo-pitch/dsp/pitch"
	"github.com/cwbudde/algo-pitch/measure/tuning"
)

type options struct {
	size       int
	instrument pitch.Instrument
	method     conv.Method
	threshold  float64
	minRMS     float64
	window     int
	agc        bool
	agcTarget  float64
	a4         float64

	synth     float64
	rate      float64
	harmonics int
	duration  float64
	noise     float64
	seed      int64

	summaryOnly bool
	verbose     bool
	files       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sources, err := loadSources(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ref := tuning.Reference{A4: opts.a4}
	for _, src := range sources {
		rows, err := analyze(src, opts, ref, logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", src.name, err)
			return 1
		}
		if len(sources) > 1 {
			fmt.Fprintf(stdout, "== %s (%.0f Hz)\n", src.name, src.sampleRate)
		}
		if !opts.summaryOnly {
			printRows(stdout, rows)
		}
		printSummary(stdout, summarize(rows))
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts       options
		instrument string
		method     string
	)

	fs := flag.NewFlagSet("pitchinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.size, "size", 2048, "block size in samples")
	fs.StringVar(&instrument, "instrument", "chromatic", "frequency range preset: chromatic, guitar, bass")
	fs.StringVar(&method, "method", "direct", "autocorrelation method: direct, fft")
	fs.Float64Var(&opts.threshold, "threshold", pitch.DefaultCorrelationThreshold, "normalized correlation a peak must exceed")
	fs.Float64Var(&opts.minRMS, "min-rms", pitch.DefaultMinSignalStrength, "RMS at or below which a block is silence")
	fs.IntVar(&opts.window, "window", pitch.DefaultSmoothingWindow, "median smoothing window")
	fs.BoolVar(&opts.agc, "agc", false, "apply automatic gain control before detection")
	fs.Float64Var(&opts.agcTarget, "agc-target", core.LinearToDB(gain.DefaultTargetLevel), "AGC target level in dBFS")
	fs.Float64Var(&opts.a4, "a4", 440, "reference pitch of A4 in Hz")
	fs.Float64Var(&opts.synth, "synth", 0, "analyse a synthesized tone at this frequency instead of files")
	fs.Float64Var(&opts.rate, "rate", 44100, "sample rate for -synth")
	fs.IntVar(&opts.harmonics, "harmonics", 1, "number of harmonics for -synth")
	fs.Float64Var(&opts.duration, "duration", 1, "length of -synth in seconds")
	fs.Float64Var(&opts.noise, "noise", 0, "white noise amplitude added to -synth")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed for -synth")
	fs.BoolVar(&opts.summaryOnly, "summary", false, "print only the summary line")
	fs.BoolVar(&opts.verbose, "v", false, "log per-block diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pitchinfo [flags] file.wav ...\n")
		fmt.Fprintf(stderr, "       pitchinfo [flags] -synth <Hz>\n\n")
		fmt.Fprintf(stderr, "Detects the fundamental frequency of consecutive blocks.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  pitchinfo -instrument guitar -size 4096 take1.wav\n")
		fmt.Fprintf(stderr, "  pitchinfo -synth 110 -harmonics 6 -noise 0.05\n")
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	var err error
	if opts.instrument, err = pitch.ParseInstrument(instrument); err != nil {
		return opts, err
	}
	if opts.method, err = conv.ParseMethod(method); err != nil {
		return opts, err
	}
	opts.files = fs.Args()
	if opts.synth == 0 && len(opts.files) == 0 {
		fs.Usage()
		return opts, fmt.Errorf("no input: give WAV files or -synth")
	}
	return opts, nil
}

func (o options) detectorOptions() []pitch.Option {
	return []pitch.Option{
		pitch.WithInstrument(o.instrument),
		pitch.WithMethod(o.method),
		pitch.WithCorrelationThreshold(o.threshold),
		pitch.WithMinSignalStrength(o.minRMS),
		pitch.WithSmoothingWindow(o.window),
	}
}
