//go:build !linux

package capture

import "log/slog"

// SystemEnumerator finds no devices on platforms without a V4L2 backend.
type SystemEnumerator struct {
	Glob   string
	Logger *slog.Logger
}

func NewSystemEnumerator(glob string, logger *slog.Logger) *SystemEnumerator {
	return &SystemEnumerator{Glob: glob, Logger: logger}
}

func (e *SystemEnumerator) Devices() []Device { return nil }

// AccessAuthorizer grants unconditionally: with no camera access to gate,
// the empty enumerator's missing-device path is the right degradation, not
// an authorization failure.
type AccessAuthorizer struct {
	Glob  string
	asked bool
}

func NewAccessAuthorizer(glob string) *AccessAuthorizer {
	return &AccessAuthorizer{Glob: glob}
}

func (a *AccessAuthorizer) Status() AuthStatus {
	if !a.asked {
		return AuthUndetermined
	}
	return AuthAuthorized
}

func (a *AccessAuthorizer) Request() bool {
	a.asked = true
	return true
}
