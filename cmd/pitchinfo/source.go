package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mjibson/go-dsp/wav"

	"github.com/cwbudde/algo-pitch/dsp/core"
	"github.com/cwbudde/algo-pitch/dsp/signal"
)

const readChunk = 8192

type source struct {
	name       string
	sampleRate float64
	samples    []float64
}

func loadSources(opts options) ([]source, error) {
	if opts.synth != 0 {
		src, err := synthesize(opts)
		if err != nil {
			return nil, err
		}
		return []source{src}, nil
	}

	sources := make([]source, 0, len(opts.files))
	for _, path := range opts.files {
		src, err := readWAVFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func synthesize(opts options) (source, error) {
	n := int(opts.duration * opts.rate)
	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(opts.rate)},
		signal.WithSeed(opts.seed),
	)

	tone, err := g.Harmonic(opts.synth, 0.5, opts.harmonics, n)
	if err != nil {
		return source{}, err
	}
	if opts.noise > 0 {
		noise, err := g.WhiteNoise(opts.noise, n)
		if err != nil {
			return source{}, err
		}
		if tone, err = signal.Mix(tone, noise); err != nil {
			return source{}, err
		}
	}
	return source{
		name:       fmt.Sprintf("synth %.2f Hz", opts.synth),
		sampleRate: opts.rate,
		samples:    tone,
	}, nil
}

func readWAVFile(path string) (source, error) {
	f, err := os.Open(path)
	if err != nil {
		return source{}, err
	}
	defer f.Close()

	src, err := readWAV(f)
	if err != nil {
		return source{}, err
	}
	src.name = path
	return src, nil
}

// readWAV decodes a PCM WAV stream and averages its channels to mono.
func readWAV(r io.Reader) (source, error) {
	w, err := wav.New(r)
	if err != nil {
		return source{}, err
	}
	channels := int(w.NumChannels)
	if channels < 1 {
		return source{}, fmt.Errorf("wav: invalid channel count %d", channels)
	}

	var mono []float64
	for {
		frame, err := w.ReadFloats(readChunk * channels)
		for i := 0; i+channels <= len(frame); i += channels {
			var sum float64
			for c := range channels {
				sum += float64(frame[i+c])
			}
			mono = append(mono, sum/float64(channels))
		}
		if errors.Is(err, io.EOF) || (err == nil && len(frame) == 0) {
			break
		}
		if err != nil {
			return source{}, err
		}
	}
	return source{sampleRate: float64(w.SampleRate), samples: mono}, nil
}
