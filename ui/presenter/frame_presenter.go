package presenter

import (
	"image"
	"sync"
	"time"

	"log/slog"

	"github.com/soocke/pulse-cam-go/domain/capture"
	"github.com/soocke/pulse-cam-go/domain/signal"
	"github.com/soocke/pulse-cam-go/ui/images"
	"github.com/soocke/pulse-cam-go/ui/model"
)

// Preview frames go to the model at a reduced cadence; the signal path
// consumes every frame.
const previewInterval = 100 * time.Millisecond

// Preview dimensions the scaler targets.
const (
	previewMaxW = 480
	previewMaxH = 360
)

// signalGap is the frame gap after which the adaptive pulse state restarts.
const signalGap = 2 * time.Second

// FramePresenter drains the converted-frame stream and feeds two consumers:
// the pulse detector with per-frame brightness, and the capture model with a
// throttled preview copy. It owns a single worker goroutine; the UI never
// touches raw frames.
type FramePresenter struct {
	frames   <-chan capture.FrameSample
	detector *signal.PulseDetector
	roiFrac  float64
	capModel *model.CaptureModel
	pulse    *model.PulseModel
	logger   *slog.Logger

	mu          sync.Mutex
	lastSample  time.Time
	lastPreview time.Time

	startOnce sync.Once
	doneCh    chan struct{}
}

func NewFramePresenter(frames <-chan capture.FrameSample, det *signal.PulseDetector, roiFrac float64, capModel *model.CaptureModel, pulse *model.PulseModel, logger *slog.Logger) *FramePresenter {
	return &FramePresenter{
		frames:   frames,
		detector: det,
		roiFrac:  roiFrac,
		capModel: capModel,
		pulse:    pulse,
		logger:   logger,
		doneCh:   make(chan struct{}),
	}
}

// Start launches the worker. The worker exits when the frame stream closes.
func (p *FramePresenter) Start() {
	if p == nil || p.frames == nil {
		return
	}
	p.startOnce.Do(func() { go p.run() })
}

// Done is closed once the worker drained the stream.
func (p *FramePresenter) Done() <-chan struct{} { return p.doneCh }

// ResetSignal clears the adaptive pulse state, for use when the finger was
// repositioned.
func (p *FramePresenter) ResetSignal() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.detector != nil {
		p.detector.Reset()
	}
	p.mu.Unlock()
	p.pulse.Reset()
}

func (p *FramePresenter) run() {
	defer close(p.doneCh)
	for sample := range p.frames {
		p.process(sample)
	}
}

func (p *FramePresenter) process(s capture.FrameSample) {
	if s.Image == nil {
		return
	}
	p.mu.Lock()
	if !p.lastSample.IsZero() && s.CapturedAt.Sub(p.lastSample) > signalGap {
		if p.detector != nil {
			p.detector.Reset()
		}
		p.pulse.Reset()
		if p.logger != nil {
			p.logger.Debug("signal restart after frame gap")
		}
	}
	p.lastSample = s.CapturedAt

	brightness := signal.MeanROIBrightness(s.Image, p.roiFrac)
	p.pulse.SetBrightness(brightness)
	if p.detector != nil {
		bpm, beat := p.detector.Process(brightness, s.CapturedAt)
		p.pulse.SetBPM(bpm)
		if beat {
			p.pulse.CountBeat()
		}
	}

	publish := s.CapturedAt.Sub(p.lastPreview) >= previewInterval
	if publish {
		p.lastPreview = s.CapturedAt
	}
	p.mu.Unlock()

	if publish {
		p.capModel.SetFrame(images.ToRGBA(images.ScaleToFit(s.Image, previewMaxW, previewMaxH)))
	}
	if gray, ok := s.Image.(*image.Gray); ok {
		capture.RecycleGray(gray)
	}
}
