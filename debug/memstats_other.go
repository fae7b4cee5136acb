//go:build !linux

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op where no RSS source is wired up.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
