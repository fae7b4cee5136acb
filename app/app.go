package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/pulse-cam-go/config"
	"github.com/soocke/pulse-cam-go/ui/presenter"
	"github.com/soocke/pulse-cam-go/ui/theme"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	config    *config.Config
	logger    *slog.Logger
	cfgPath   string
	width     int
	height    int
	afterID   string
	container *AppContainer
	loop      *presenter.Loop
}

func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, cfgPath string) *app {
	a := &app{config: cfg, logger: logger, cfgPath: cfgPath, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	theme.InitStyles()

	a.container = BuildContainer(a.config, a.logger, a.cfgPath)
	c := a.container

	c.RootView.Build(
		c.CapturePresenter.StartRequested,
		c.CapturePresenter.StopRequested,
		a.exitHandler,
	)

	c.FramePresenter.Start()
	if c.Web != nil {
		c.Web.StartAsync()
	}

	a.loop = presenter.NewLoop(
		c.StatusPresenter,
		c.SessionPresenter,
		c.PulsePresenter,
		c.PreviewPresenter,
		c.FingerWatcher,
		a.scheduleUpdate,
	)

	// Kick off the update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.container != nil {
		if a.container.Web != nil {
			if err := a.container.Web.Close(); err != nil {
				a.logger.Warn("monitor shutdown failed", "error", err)
			}
		}
		a.container.Controller.Close()
	}
	Destroy(App)
}
