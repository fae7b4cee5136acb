package presenter

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/soocke/pulse-cam-go/domain/capture"
)

// FingerView shows the placement hint.
type FingerView interface{ SetHint(string) }

// BrightnessSource supplies the latest mean sample brightness.
type BrightnessSource interface{ Brightness() float64 }

// FingerWatcher polls the brightness signal during capture and decides
// whether a fingertip covers the lens. With the torch on, a covered lens
// saturates the sensor; an uncovered one shows normal scene levels. On each
// presence change it queues a hint update and restarts the adaptive pulse
// state so a repositioned finger does not inherit a stale baseline.
type FingerWatcher struct {
	Source   BrightnessSource
	Logger   *slog.Logger
	OnChange func(present bool)

	threshold float64
	interval  time.Duration
	running   atomic.Bool
	done      chan struct{}
	present   bool
	seen      bool

	hint      atomic.Pointer[string]
	lastShown string
	view      FingerView
}

// NewFingerWatcher constructs a watcher. threshold is the mean brightness
// above which a finger counts as present.
func NewFingerWatcher(src BrightnessSource, view FingerView, logger *slog.Logger, threshold float64, onChange func(bool)) *FingerWatcher {
	if threshold <= 0 {
		threshold = 60
	}
	return &FingerWatcher{
		Source:    src,
		Logger:    logger,
		OnChange:  onChange,
		threshold: threshold,
		interval:  500 * time.Millisecond,
		view:      view,
	}
}

// OnStatus should be wired to the capture status listener; it starts polling
// while capture runs and stops otherwise.
func (w *FingerWatcher) OnStatus(prev, next capture.Status) {
	if w == nil {
		return
	}
	if next == capture.StatusRunning {
		w.start()
		return
	}
	w.stop()
	w.setHint("")
}

// Tick flushes the queued hint to the view on the UI thread.
func (w *FingerWatcher) Tick(now time.Time) {
	if w == nil || w.view == nil {
		return
	}
	p := w.hint.Load()
	if p == nil {
		return
	}
	if *p != w.lastShown {
		w.lastShown = *p
		w.view.SetHint(*p)
	}
}

func (w *FingerWatcher) start() {
	if w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	w.present = false
	w.seen = false
	go w.loop()
}

func (w *FingerWatcher) stop() {
	if !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

func (w *FingerWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-w.done:
			return
		}
	}
}

func (w *FingerWatcher) poll() {
	if w.Source == nil {
		return
	}
	present := w.Source.Brightness() >= w.threshold
	if w.seen && present == w.present {
		return
	}
	first := !w.seen
	w.seen = true
	w.present = present
	if present {
		w.setHint("")
	} else {
		w.setHint("Cover the camera and flash with your fingertip")
	}
	if w.Logger != nil {
		w.Logger.Debug("finger presence changed", "present", present)
	}
	if !first && w.OnChange != nil {
		w.OnChange(present)
	}
}

func (w *FingerWatcher) setHint(s string) { w.hint.Store(&s) }
