package capture

import "time"

// Stats summarises frame delivery behaviour for instrumentation.
type Stats struct {
	Frames          uint64
	DecodeFailures  uint64
	AvgDecode       time.Duration
	AvgDecodeMicros float64
	LastFrame       time.Time
	LastFrameAge    time.Duration
	Sequence        uint64
}
