package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/soocke/pulse-cam-go/domain/capture"
	"github.com/soocke/pulse-cam-go/domain/signal"
	"github.com/soocke/pulse-cam-go/ui/model"
)

func graySample(luma uint8, at time.Time, seq uint64) capture.FrameSample {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = luma
	}
	return capture.FrameSample{Image: img, CapturedAt: at, Sequence: seq}
}

func TestFramePresenter_PublishesBrightnessAndPreview(t *testing.T) {
	frames := make(chan capture.FrameSample, 8)
	capModel := &model.CaptureModel{}
	pulse := &model.PulseModel{}
	p := NewFramePresenter(frames, signal.NewPulseDetector(signal.Config{}), 0.5, capModel, pulse, nil)
	p.Start()

	base := time.Now()
	frames <- graySample(210, base, 1)
	close(frames)
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not drain the stream")
	}

	if got := pulse.Brightness(); got != 210 {
		t.Errorf("brightness = %.1f, want 210", got)
	}
	if capModel.Frame() == nil {
		t.Error("no preview frame published")
	}
	if capModel.FrameCount() != 1 {
		t.Errorf("frame count = %d, want 1", capModel.FrameCount())
	}
}

func TestFramePresenter_ThrottlesPreview(t *testing.T) {
	frames := make(chan capture.FrameSample, 16)
	capModel := &model.CaptureModel{}
	pulse := &model.PulseModel{}
	p := NewFramePresenter(frames, nil, 1, capModel, pulse, nil)
	p.Start()

	// 10 frames spaced 10ms apart cover one preview interval.
	base := time.Now()
	for i := 0; i < 10; i++ {
		frames <- graySample(100, base.Add(time.Duration(i)*10*time.Millisecond), uint64(i+1))
	}
	close(frames)
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not drain the stream")
	}

	if got := capModel.FrameCount(); got < 1 || got > 2 {
		t.Errorf("published %d previews for one interval, want 1 or 2", got)
	}
}

func TestFramePresenter_GapRestartsSignal(t *testing.T) {
	frames := make(chan capture.FrameSample, 8)
	capModel := &model.CaptureModel{}
	pulse := &model.PulseModel{}
	det := signal.NewPulseDetector(signal.Config{})
	p := NewFramePresenter(frames, det, 1, capModel, pulse, nil)
	p.Start()

	base := time.Now()
	frames <- graySample(100, base, 1)
	deadline := time.Now().Add(time.Second)
	for pulse.Brightness() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	pulse.SetBPM(72) // pretend a rate was established
	frames <- graySample(100, base.Add(5*time.Second), 2)
	close(frames)
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not drain the stream")
	}

	if pulse.BPM() != 0 {
		t.Errorf("bpm = %.1f after a frame gap, want reset to 0", pulse.BPM())
	}
}
