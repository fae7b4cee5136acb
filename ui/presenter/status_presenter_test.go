package presenter

import (
	"testing"
	"time"

	"github.com/soocke/pulse-cam-go/domain/capture"
	"github.com/soocke/pulse-cam-go/ui/model"
)

type mockStatusView struct {
	label        string
	labelCalls   int
	startEnabled bool
	stopEnabled  bool
	resets       int
}

func (v *mockStatusView) SetStatusLabel(s string) { v.label = s; v.labelCalls++ }
func (v *mockStatusView) SetControls(start, stop bool) {
	v.startEnabled, v.stopEnabled = start, stop
}
func (v *mockStatusView) PreviewReset() { v.resets++ }

func TestStatusPresenter_FlushesLatestTransition(t *testing.T) {
	m := &model.CaptureModel{}
	view := &mockStatusView{}
	p := NewStatusPresenter(m, view)

	p.OnStatus(capture.StatusUninitialized, capture.StatusRunning)
	p.OnStatus(capture.StatusRunning, capture.StatusStopped)
	p.Tick(time.Now())

	if view.label != "Status: stopped" {
		t.Errorf("label = %q, want the latest transition", view.label)
	}
	if view.labelCalls != 1 {
		t.Errorf("label painted %d times, want 1 (transitions collapse per tick)", view.labelCalls)
	}
	if m.Status() != capture.StatusStopped {
		t.Errorf("model status = %v, want stopped", m.Status())
	}
}

func TestStatusPresenter_ControlEnablement(t *testing.T) {
	cases := []struct {
		status capture.Status
		start  bool
		stop   bool
	}{
		{capture.StatusUninitialized, true, false},
		{capture.StatusStopped, true, false},
		{capture.StatusRunning, false, true},
		{capture.StatusMissingDevice, false, false},
		{capture.StatusUnauthorized, false, false},
	}
	for _, tc := range cases {
		m := &model.CaptureModel{}
		view := &mockStatusView{}
		p := NewStatusPresenter(m, view)
		p.OnStatus(capture.StatusUninitialized, tc.status)
		p.Tick(time.Now())
		if view.startEnabled != tc.start || view.stopEnabled != tc.stop {
			t.Errorf("%v: controls = (%v,%v), want (%v,%v)",
				tc.status, view.startEnabled, view.stopEnabled, tc.start, tc.stop)
		}
	}
}

func TestStatusPresenter_LeavingRunningResetsPreview(t *testing.T) {
	m := &model.CaptureModel{}
	view := &mockStatusView{}
	p := NewStatusPresenter(m, view)

	p.OnStatus(capture.StatusUninitialized, capture.StatusRunning)
	p.Tick(time.Now())
	if view.resets != 0 {
		t.Fatalf("reset while entering running: %d", view.resets)
	}
	p.OnStatus(capture.StatusRunning, capture.StatusStopped)
	p.Tick(time.Now())
	if view.resets != 1 {
		t.Errorf("resets = %d after leaving running, want 1", view.resets)
	}
	if m.Frame() != nil {
		t.Error("model frame not cleared after leaving running")
	}
}

func TestStatusPresenter_IdleTickPaintsNothingNew(t *testing.T) {
	m := &model.CaptureModel{}
	view := &mockStatusView{}
	p := NewStatusPresenter(m, view)
	p.OnStatus(capture.StatusUninitialized, capture.StatusRunning)
	p.Tick(time.Now())
	calls := view.labelCalls
	p.Tick(time.Now())
	p.Tick(time.Now())
	if view.labelCalls != calls {
		t.Errorf("idle ticks repainted the label (%d -> %d)", calls, view.labelCalls)
	}
}
