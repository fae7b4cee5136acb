package view

import (
	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// PulsePanel displays the derived heart rate, the raw signal level and the
// fingertip placement hint.
type PulsePanel interface {
	SetPulse(text string)
	SetBrightness(text string)
	SetHint(text string)
}

type pulsePanel struct {
	pulseLbl      *LabelWidget
	brightnessLbl *LabelWidget
	hintLbl       *LabelWidget
}

// NewPulsePanel creates the pulse readout labels starting at the given row.
func NewPulsePanel(row int) PulsePanel {
	p := &pulsePanel{}
	p.pulseLbl = Label(Txt("--"), Borderwidth(1), Relief("ridge"))
	Grid(p.pulseLbl, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	p.brightnessLbl = Label(Txt(""))
	Grid(p.brightnessLbl, Row(row), Column(2), Sticky("w"), Padx("0.4m"))
	p.hintLbl = Label(Txt(""))
	Grid(p.hintLbl, Row(row), Column(3), Columnspan(2), Sticky("e"), Padx("0.4m"))
	return p
}

func (p *pulsePanel) SetPulse(text string) {
	if p == nil || p.pulseLbl == nil {
		return
	}
	p.pulseLbl.Configure(Txt(text))
}

func (p *pulsePanel) SetBrightness(text string) {
	if p == nil || p.brightnessLbl == nil {
		return
	}
	p.brightnessLbl.Configure(Txt(text))
}

func (p *pulsePanel) SetHint(text string) {
	if p == nil || p.hintLbl == nil {
		return
	}
	p.hintLbl.Configure(Txt(text))
}
