package capture

// AuthStatus is the four-way outcome of a camera-use authorization query.
type AuthStatus int

const (
	// AuthUndetermined means no decision has been made yet; Request must be
	// called to obtain one.
	AuthUndetermined AuthStatus = iota
	AuthAuthorized
	AuthDenied
	AuthRestricted
)

func (a AuthStatus) String() string {
	switch a {
	case AuthUndetermined:
		return "undetermined"
	case AuthAuthorized:
		return "authorized"
	case AuthDenied:
		return "denied"
	case AuthRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// Authorizer answers whether the application may use the camera.
//
// Status is a cached, non-blocking query. Request resolves an undetermined
// status and may block for as long as the platform needs (there is no
// timeout; the Controller suspends its session queue for the duration).
type Authorizer interface {
	Status() AuthStatus
	Request() bool
}
