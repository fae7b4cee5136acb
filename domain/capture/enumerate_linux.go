//go:build linux

package capture

import (
	"log/slog"
	"path/filepath"
	"sort"
)

// SystemEnumerator discovers video capture nodes by glob. Nodes that fail
// the probe (metadata nodes, output devices, missing YUYV) are skipped.
type SystemEnumerator struct {
	Glob   string
	Logger *slog.Logger
}

func NewSystemEnumerator(glob string, logger *slog.Logger) *SystemEnumerator {
	if glob == "" {
		glob = "/dev/video*"
	}
	return &SystemEnumerator{Glob: glob, Logger: logger}
}

func (e *SystemEnumerator) Devices() []Device {
	paths, err := filepath.Glob(e.Glob)
	if err != nil {
		e.log().Warn("device glob failed", slog.String("glob", e.Glob), slog.Any("error", err))
		return nil
	}
	sort.Strings(paths)
	var devices []Device
	for _, path := range paths {
		dev, err := openV4L2Device(path)
		if err != nil {
			e.log().Debug("skipping node", slog.String("path", path), slog.Any("error", err))
			continue
		}
		devices = append(devices, dev)
	}
	return devices
}

func (e *SystemEnumerator) log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
