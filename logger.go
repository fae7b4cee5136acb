package main

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide structured logger: JSON records on
// stdout, filtered at the given level. Every component receives this logger
// through the container.
func NewLogger(level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
