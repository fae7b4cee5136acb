package presenter

import (
	"image"
	"time"

	"github.com/soocke/pulse-cam-go/ui/model"
)

// PreviewView paints the live camera preview.
type PreviewView interface {
	UpdatePreview(img image.Image)
}

// PreviewPresenter pushes newly published frames from the capture model to
// the view. Runs on the UI tick so the paint happens on the UI thread.
type PreviewPresenter struct {
	cap  *model.CaptureModel
	view PreviewView

	lastShown uint64
}

func NewPreviewPresenter(cap *model.CaptureModel, view PreviewView) *PreviewPresenter {
	return &PreviewPresenter{cap: cap, view: view}
}

func (p *PreviewPresenter) Tick(now time.Time) {
	if p == nil || p.cap == nil || p.view == nil {
		return
	}
	count := p.cap.FrameCount()
	if count == p.lastShown {
		return
	}
	frame := p.cap.Frame()
	if frame == nil {
		return
	}
	p.lastShown = count
	p.view.UpdatePreview(frame)
}
