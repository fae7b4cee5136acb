//go:build linux

package capture

import (
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// AccessAuthorizer maps filesystem access on the video nodes onto the
// authorization states. On Linux there is no runtime permission prompt;
// the "request" is an access check whose outcome sticks for the process
// lifetime, the way a platform permission grant would.
type AccessAuthorizer struct {
	Glob string

	mu     sync.Mutex
	asked  bool
	status AuthStatus
}

func NewAccessAuthorizer(glob string) *AccessAuthorizer {
	if glob == "" {
		glob = "/dev/video*"
	}
	return &AccessAuthorizer{Glob: glob, status: AuthUndetermined}
}

func (a *AccessAuthorizer) Status() AuthStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.asked {
		return AuthUndetermined
	}
	return a.status
}

// Request resolves the undetermined state by probing the nodes. Any node
// readable and writable by this process counts as a grant. EACCES on every
// node means denied; other failures (no nodes at all) count as restricted.
func (a *AccessAuthorizer) Request() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.asked {
		return a.status == AuthAuthorized
	}
	a.asked = true
	paths, _ := filepath.Glob(a.Glob)
	sawDenied := false
	for _, path := range paths {
		err := unix.Access(path, unix.R_OK|unix.W_OK)
		if err == nil {
			a.status = AuthAuthorized
			return true
		}
		if err == unix.EACCES {
			sawDenied = true
		}
	}
	if sawDenied {
		a.status = AuthDenied
	} else {
		a.status = AuthRestricted
	}
	return false
}
