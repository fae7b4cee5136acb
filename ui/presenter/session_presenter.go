package presenter

import (
	"time"

	"github.com/soocke/pulse-cam-go/ui/model"
)

// RunningModel reports whether capture is delivering frames.
type RunningModel interface{ Running() bool }

// SessionView displays formatted session and total durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter advances the session clock from the capture state and
// pushes the durations to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	cap  RunningModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, cap RunningModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, cap: cap, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.cap == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.cap.Running(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
