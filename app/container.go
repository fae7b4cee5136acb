package app

import (
	"log/slog"
	"time"

	"github.com/soocke/pulse-cam-go/config"
	"github.com/soocke/pulse-cam-go/domain/capture"
	"github.com/soocke/pulse-cam-go/domain/signal"
	"github.com/soocke/pulse-cam-go/ui/model"
	"github.com/soocke/pulse-cam-go/ui/presenter"
	"github.com/soocke/pulse-cam-go/ui/view"
	"github.com/soocke/pulse-cam-go/web"
)

// AppContainer assembles models, the capture controller, presenters and the
// root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Capture    *model.CaptureModel
	Session    *model.SessionModel
	Pulse      *model.PulseModel
	Controller *capture.Controller
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	CapturePresenter *presenter.CapturePresenter
	StatusPresenter  *presenter.StatusPresenter
	SessionPresenter *presenter.SessionPresenter
	PulsePresenter   *presenter.PulsePresenter
	PreviewPresenter *presenter.PreviewPresenter
	FramePresenter   *presenter.FramePresenter
	FingerWatcher    *presenter.FingerWatcher

	Web *web.Server
}

// BuildContainer constructs all components. Device probing happens here;
// the view is built later by the app wrapper once Tk is up.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Capture = &model.CaptureModel{}
	c.Session = model.NewSessionModel()
	c.Pulse = &model.PulseModel{}

	enum := capture.NewSystemEnumerator(cfg.DeviceGlob, logger)
	auth := capture.NewAccessAuthorizer(cfg.DeviceGlob)
	c.Controller = capture.NewController(logger, enum, auth, nil)

	detector := signal.NewPulseDetector(signal.Config{
		BaselineAlpha:  cfg.BaselineAlpha,
		AmplitudeAlpha: cfg.AmplitudeAlpha,
		Threshold:      cfg.PulseThreshold,
		Refractory:     time.Duration(cfg.RefractoryMs) * time.Millisecond,
		BPMAlpha:       cfg.BPMAlpha,
	})
	c.FramePresenter = presenter.NewFramePresenter(
		c.Controller.Frames(), detector, cfg.ROIFraction, c.Capture, c.Pulse, logger)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	c.CapturePresenter = presenter.NewCapturePresenter(c.Controller)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Capture, c.RootView)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Capture, c.RootView)
	c.PulsePresenter = presenter.NewPulsePresenter(c.Pulse, c.Capture, c.RootView)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Capture, c.RootView)
	c.FingerWatcher = presenter.NewFingerWatcher(
		c.Pulse, c.RootView, logger, cfg.FingerThreshold, func(present bool) {
			// A repositioned finger invalidates the adaptive baseline.
			c.FramePresenter.ResetSignal()
		})

	c.Controller.AddStatusListener(c.StatusPresenter.OnStatus)
	c.Controller.AddStatusListener(c.FingerWatcher.OnStatus)

	if cfg.WebEnabled {
		c.Web = web.NewServer(cfg.WebAddr, logger, c.Controller, c.Pulse, c.Capture)
	}
	return c
}
