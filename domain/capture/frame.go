package capture

import (
	"image"
	"time"
)

// FrameSample is one decoded video frame plus capture metadata. Samples are
// transient: produced at camera rate, consumed immediately, never persisted.
type FrameSample struct {
	Image      image.Image
	CapturedAt time.Time
	Sequence   uint64
}

// FrameCallback receives raw frame buffers from a Device. It is invoked on
// the device's own delivery goroutine, never on the session queue. The buffer
// is owned by the callee.
type FrameCallback func(buf []byte, capturedAt time.Time)

// Decoder converts a raw device buffer into a portable image.
type Decoder interface {
	Decode(buf []byte) (image.Image, error)
}

// DecoderFactory builds a decoder for the format the controller selected.
type DecoderFactory func(f Format) Decoder
