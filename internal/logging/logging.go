// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"

	"tasksync/internal/config"
)

// New returns a logger writing to w in the configured format.
// Debug level is enabled by cfg.Debug; otherwise only errors are written,
// so stderr carries nothing but the command's own "error:" line.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelError
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return NewWithLevel(w, cfg.LogFormat, level)
}

// NewWithLevel returns a logger with an explicit level.
func NewWithLevel(w io.Writer, format string, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
