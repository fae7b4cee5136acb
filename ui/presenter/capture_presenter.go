package presenter

// CaptureLifecycle narrows what the presenter needs from the capture layer.
type CaptureLifecycle interface {
	Start()
	Stop()
}

// CapturePresenter owns presentation logic for the start and stop controls.
// The capture layer linearizes requests itself, so the presenter only
// dispatches; the status presenter reflects the outcome once it lands.
type CapturePresenter struct {
	ctl CaptureLifecycle
}

func NewCapturePresenter(ctl CaptureLifecycle) *CapturePresenter {
	return &CapturePresenter{ctl: ctl}
}

// StartRequested handles the start control. Dispatched off the UI thread:
// starting can block on an authorization prompt.
func (p *CapturePresenter) StartRequested() {
	if p == nil || p.ctl == nil {
		return
	}
	go p.ctl.Start()
}

// StopRequested handles the stop control.
func (p *CapturePresenter) StopRequested() {
	if p == nil || p.ctl == nil {
		return
	}
	go p.ctl.Stop()
}
