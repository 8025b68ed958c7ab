package pitch

import (
	"context"
	"log/slog"
)

// Observer receives the diagnostics of every analysed block. Observers run
// synchronously on the detecting goroutine and cannot alter the result.
type Observer interface {
	Observe(Result)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Result)

// Observe calls f(r).
func (f ObserverFunc) Observe(r Result) { f(r) }

// LogObserver writes one structured record per block to a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogObserver returns an observer logging at debug level. A nil logger
// uses slog.Default().
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of o that logs at level.
func (o *LogObserver) WithLevel(level slog.Level) *LogObserver {
	return &LogObserver{logger: o.logger, level: level}
}

// Observe logs r.
func (o *LogObserver) Observe(r Result) {
	ctx := context.Background()
	if !o.logger.Enabled(ctx, o.level) {
		return
	}
	o.logger.LogAttrs(ctx, o.level, "pitch block",
		slog.String("status", r.Status.String()),
		slog.Float64("strength", r.Strength),
		slog.Float64("correlation", r.Correlation),
		slog.Float64("raw_hz", r.Raw),
		slog.Float64("frequency_hz", r.Frequency),
	)
}
