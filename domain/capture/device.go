package capture

// DeviceInfo identifies an enumerated capture device.
type DeviceInfo struct {
	Path string // platform handle, e.g. /dev/video0
	Name string // human-readable card name
}

// Device is the platform capture contract consumed by the Controller. It
// wraps the native device plus its delivery session: configuration setters,
// a begin/commit configuration bracket, and start/stop of frame delivery.
// Implementations deliver frames on a dedicated goroutine of their own.
type Device interface {
	Info() DeviceInfo

	// Eligibility predicates, checked during enumeration.
	Connected() bool
	Suspended() bool
	HasTorch() bool

	// Formats lists the supported resolution / frame rate combinations.
	Formats() []Format

	// Open attaches the device as a capture input. It must succeed before
	// configuration or delivery.
	Open() error
	Close() error

	// Configuration bracket. Setters must only be called between
	// BeginConfiguration and CommitConfiguration.
	BeginConfiguration() error
	CommitConfiguration() error
	SetActiveFormat(f Format) error
	// SetFrameRate applies frame-duration bounds derived from the chosen
	// frame rate range.
	SetFrameRate(min, max float64) error
	MaxZoom() float64
	SetZoom(factor float64) error

	// SetTorch switches the flash LED into torch (continuous) mode.
	SetTorch(on bool) error

	// Start begins frame delivery to cb; Stop ends it. Both are idempotent
	// at the controller level, not here.
	Start(cb FrameCallback) error
	Stop() error
}

// Enumerator lists candidate video capture devices. The Controller applies
// the eligibility predicates on top of it.
type Enumerator interface {
	Devices() []Device
}
