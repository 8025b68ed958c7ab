package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-pitch/dsp/gain"
	"github.com/cwbudde/algo-pitch/dsp/pitch"
	"github.com/cwbudde/algo-pitch/measure/tuning"
	timestats "github.com/cwbudde/algo-pitch/stats/time"
)

type row struct {
	index   int
	seconds float64
	levelDB float64
	result  pitch.Result
	note    tuning.Note
}

func analyze(src source, opts options, ref tuning.Reference, logger *slog.Logger) ([]row, error) {
	detOpts := opts.detectorOptions()
	if opts.verbose {
		detOpts = append(detOpts, pitch.WithObserver(pitch.NewLogObserver(logger)))
	}
	d, err := pitch.New(src.sampleRate, opts.size, detOpts...)
	if err != nil {
		return nil, err
	}

	blocks := len(src.samples) / opts.size
	logger.Info("analysing",
		slog.String("source", src.name),
		slog.Float64("sample_rate", src.sampleRate),
		slog.Int("block_size", opts.size),
		slog.Int("blocks", blocks))

	var agc *gain.AutoGain
	if opts.agc {
		agc = gain.NewAutoGain()
		agc.SetTargetLevelDB(opts.agcTarget)
	}

	block := make([]float64, opts.size)
	rows := make([]row, 0, blocks)
	for i := range blocks {
		copy(block, src.samples[i*opts.size:(i+1)*opts.size])
		r := row{
			index:   i,
			seconds: float64(i*opts.size) / src.sampleRate,
			levelDB: timestats.Calculate(block).RMS_dB,
		}
		if agc != nil {
			agc.ProcessBlock(block)
			logger.Debug("agc", slog.Int("block", i), slog.Float64("gain_db", agc.GainDB()))
		}

		if r.result, err = d.Analyze(block); err != nil {
			return nil, err
		}
		if r.result.Pitched() {
			if r.note, err = ref.Closest(r.result.Frequency); err != nil {
				return nil, err
			}
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func printRows(w io.Writer, rows []row) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Block\tTime (s)\tLevel (dBFS)\tStatus\tCorr\tFreq (Hz)\tNote\tCents\t\n")
	for _, r := range rows {
		freq, note, cents := "-", "-", "-"
		if r.result.Pitched() {
			freq = fmt.Sprintf("%.2f", r.result.Frequency)
			note = r.note.Name
			cents = fmt.Sprintf("%+.0f", r.note.Cents)
		}
		fmt.Fprintf(tw, "%d\t%.3f\t%s\t%s\t%.3f\t%s\t%s\t%s\t\n",
			r.index, r.seconds, formatDB(r.levelDB), r.result.Status, r.result.Correlation, freq, note, cents)
	}
	tw.Flush()
}

func formatDB(db float64) string {
	if math.IsInf(db, -1) {
		return "-inf"
	}
	return fmt.Sprintf("%.1f", db)
}

type summary struct {
	blocks  int
	pitched int
	mean    float64
	stddev  float64
	median  float64
}

func summarize(rows []row) summary {
	s := summary{blocks: len(rows)}
	freqs := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.result.Pitched() {
			freqs = append(freqs, r.result.Frequency)
		}
	}
	s.pitched = len(freqs)
	if s.pitched == 0 {
		return s
	}

	s.mean, s.stddev = stat.MeanStdDev(freqs, nil)
	if s.pitched == 1 {
		s.stddev = 0
	}
	slices.Sort(freqs)
	s.median = stat.Quantile(0.5, stat.Empirical, freqs, nil)
	return s
}

func printSummary(w io.Writer, s summary) {
	if s.pitched == 0 {
		fmt.Fprintf(w, "pitched 0/%d blocks\n", s.blocks)
		return
	}
	fmt.Fprintf(w, "pitched %d/%d blocks, mean %.2f Hz, stddev %.2f Hz, median %.2f Hz\n",
		s.pitched, s.blocks, s.mean, s.stddev, s.median)
}
