package presenter

import (
	"sync"
	"time"

	"github.com/soocke/pulse-cam-go/domain/capture"
	"github.com/soocke/pulse-cam-go/ui/model"
)

// StatusView receives status-driven UI updates.
type StatusView interface {
	SetStatusLabel(string)
	SetControls(startEnabled, stopEnabled bool)
	PreviewReset()
}

// StatusPresenter receives capture status transitions and reflects them on
// the view. Transitions arrive from the capture layer's session queue and
// are flushed on the UI tick, so all view mutation stays on the UI thread.
type StatusPresenter struct {
	model *model.CaptureModel
	view  StatusView

	mu      sync.Mutex
	pending []capture.Status
	latest  capture.Status
	shown   bool
}

func NewStatusPresenter(m *model.CaptureModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{model: m, view: view}
}

// OnStatus queues a transition from the capture status listener. Safe to
// call from any goroutine.
func (p *StatusPresenter) OnStatus(prev, next capture.Status) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
	p.model.SetStatus(next)
}

// Tick flushes queued transitions and updates the view with the most recent
// state. Intermediate transitions within one tick collapse to the last.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	if len(p.pending) == 0 && p.shown {
		p.mu.Unlock()
		return
	}
	last := p.latest
	if len(p.pending) > 0 {
		last = p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
	}
	wasRunning := p.shown && p.latest == capture.StatusRunning
	p.latest = last
	p.shown = true
	p.mu.Unlock()

	p.view.SetStatusLabel("Status: " + last.String())
	start, stop := controlsFor(last)
	p.view.SetControls(start, stop)
	if wasRunning && last != capture.StatusRunning {
		p.model.ClearFrame()
		p.view.PreviewReset()
	}
}

// controlsFor maps a capture status to control enablement: start is offered
// whenever a new attempt could succeed, stop only while running.
func controlsFor(s capture.Status) (startEnabled, stopEnabled bool) {
	switch s {
	case capture.StatusRunning:
		return false, true
	case capture.StatusMissingDevice, capture.StatusUnauthorized:
		return false, false
	default: // uninitialized, stopped
		return true, false
	}
}
