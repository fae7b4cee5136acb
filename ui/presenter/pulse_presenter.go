package presenter

import (
	"fmt"
	"time"

	"github.com/soocke/pulse-cam-go/ui/model"
)

// PulseView displays the derived pulse readings.
type PulseView interface {
	SetPulse(text string)
	SetBrightness(text string)
}

// PulsePresenter formats the pulse model for the view on each UI tick.
type PulsePresenter struct {
	pulse *model.PulseModel
	cap   RunningModel
	view  PulseView
}

func NewPulsePresenter(pulse *model.PulseModel, cap RunningModel, view PulseView) *PulsePresenter {
	return &PulsePresenter{pulse: pulse, cap: cap, view: view}
}

func (p *PulsePresenter) Tick(now time.Time) {
	if p == nil || p.pulse == nil || p.view == nil {
		return
	}
	if p.cap != nil && !p.cap.Running() {
		p.view.SetPulse("--")
		p.view.SetBrightness("")
		return
	}
	bpm := p.pulse.BPM()
	if bpm <= 0 {
		p.view.SetPulse("measuring...")
	} else {
		p.view.SetPulse(fmt.Sprintf("%.0f bpm", bpm))
	}
	p.view.SetBrightness(fmt.Sprintf("signal %.0f", p.pulse.Brightness()))
}
