package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback. The
// zero value is usable (methods are nil-safe).
type Loop struct {
	Status   *StatusPresenter
	Session  *SessionPresenter
	Pulse    *PulsePresenter
	Preview  *PreviewPresenter
	Finger   *FingerWatcher
	Schedule func()
}

func NewLoop(status *StatusPresenter, sess *SessionPresenter, pulse *PulsePresenter, preview *PreviewPresenter, finger *FingerWatcher, schedule func()) *Loop {
	return &Loop{Status: status, Session: sess, Pulse: pulse, Preview: preview, Finger: finger, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Status first so control enablement reflects transitions before the
	// dependent presenters read the model.
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Pulse != nil {
		l.Pulse.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.Tick(now)
	}
	if l.Finger != nil {
		l.Finger.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
