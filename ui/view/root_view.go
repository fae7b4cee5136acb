package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pulse-cam-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	Pulse       PulsePanel
	ConfigPanel ConfigPanel
	Preview     CapturePreview

	// Widgets
	StatusLabel *LabelWidget
	startBtn    *ButtonWidget
	stopBtn     *ButtonWidget
	previewRow  int
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStatusLabel(text string)
	SetControls(startEnabled, stopEnabled bool)
	UpdatePreview(img image.Image)
	PreviewReset()
	SetSession(session, total time.Duration)
	SetPulse(text string)
	SetBrightness(text string)
	SetHint(text string)
	SetConfigEditable(enabled bool)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onStart, onStop, onExit func()) {
	if rv == nil {
		return
	}
	// Row 0: session stats, status label, buttons frame
	rv.Session = NewSessionStats(nil, 0, 0)
	rv.StatusLabel = Label(Txt("Status: uninitialized"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.startBtn = Button(Txt("Start"), Command(onStart))
	Grid(rv.startBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.stopBtn = Button(Txt("Stop"), Command(onStop))
	Grid(rv.stopBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.stopBtn.Configure(State("disabled"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: pulse readout
	rv.Pulse = NewPulsePanel(1)

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(2)
	rv.previewRow = endRow

	// Preview placement
	rv.Preview = NewCapturePreview(rv.previewRow, rv.cfg.ROIFraction)
}

// SetStatusLabel updates the status label text.
func (rv *RootView) SetStatusLabel(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetControls toggles the start and stop buttons.
func (rv *RootView) SetControls(startEnabled, stopEnabled bool) {
	if rv == nil {
		return
	}
	setBtn := func(b *ButtonWidget, enabled bool) {
		if b == nil {
			return
		}
		if enabled {
			b.Configure(State("normal"))
		} else {
			b.Configure(State("disabled"))
		}
	}
	setBtn(rv.startBtn, startEnabled)
	setBtn(rv.stopBtn, stopEnabled)
	// Signal tuning locks while a session runs.
	if rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(!stopEnabled)
	}
}

// UpdatePreview proxies to the underlying preview view.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(img)
	}
}

// PreviewReset clears the preview back to the placeholder.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// SetSession updates both session and total measuring durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

// SetPulse updates the heart rate readout.
func (rv *RootView) SetPulse(text string) {
	if rv != nil && rv.Pulse != nil {
		rv.Pulse.SetPulse(text)
	}
}

// SetBrightness updates the raw signal level readout.
func (rv *RootView) SetBrightness(text string) {
	if rv != nil && rv.Pulse != nil {
		rv.Pulse.SetBrightness(text)
	}
}

// SetHint updates the fingertip placement hint.
func (rv *RootView) SetHint(text string) {
	if rv != nil && rv.Pulse != nil {
		rv.Pulse.SetHint(text)
	}
}

// SetConfigEditable toggles config panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}
