// Package logging builds the slog loggers shared by quizzer commands.
package logging

import (
	"io"
	"log/slog"

	"quizzer/internal/config"
)

// Options selects the logger level and destination.
type Options struct {
	Level   string
	Verbose bool
}

// New returns a text logger writing to w. Verbose forces debug output.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level, err := config.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
