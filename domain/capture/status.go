package capture

// Status enumerates finite states of the capture session. It is the single
// source of truth for UI state: failures never propagate to Start/Stop
// callers and are observable only here (and via Controller.LastError).
type Status int

const (
	StatusUninitialized Status = iota
	StatusMissingDevice
	StatusUnauthorized
	StatusRunning
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusMissingDevice:
		return "missing-device"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StatusListener is called on each status transition, on the session queue.
// Listeners must not call back into the Controller synchronously.
type StatusListener func(prev, next Status)
