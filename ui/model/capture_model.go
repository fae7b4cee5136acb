package model

import (
	"image"
	"sync/atomic"

	"github.com/soocke/pulse-cam-go/domain/capture"
)

// CaptureModel tracks the capture status and the most recent preview frame.
// The zero value reports uninitialized and no frame. Concurrency-safe via
// atomics because the frame pipeline and UI ticks race.
type CaptureModel struct {
	status atomic.Int32
	frame  atomic.Pointer[image.RGBA]
	frames atomic.Uint64
}

// Status returns the last published capture status.
func (m *CaptureModel) Status() capture.Status {
	if m == nil {
		return capture.StatusUninitialized
	}
	return capture.Status(m.status.Load())
}

// SetStatus stores the capture status.
func (m *CaptureModel) SetStatus(s capture.Status) {
	if m == nil {
		return
	}
	m.status.Store(int32(s))
}

// Running reports whether capture is currently delivering frames.
func (m *CaptureModel) Running() bool {
	return m.Status() == capture.StatusRunning
}

// Frame returns the latest preview frame, or nil before the first one.
func (m *CaptureModel) Frame() *image.RGBA {
	if m == nil {
		return nil
	}
	return m.frame.Load()
}

// SetFrame publishes a new preview frame. The model takes ownership; callers
// must not mutate the image afterwards.
func (m *CaptureModel) SetFrame(img *image.RGBA) {
	if m == nil || img == nil {
		return
	}
	m.frame.Store(img)
	m.frames.Add(1)
}

// ClearFrame drops the published frame, for use when capture stops.
func (m *CaptureModel) ClearFrame() {
	if m == nil {
		return
	}
	m.frame.Store(nil)
}

// FrameCount returns how many frames were published since start.
func (m *CaptureModel) FrameCount() uint64 {
	if m == nil {
		return 0
	}
	return m.frames.Load()
}
