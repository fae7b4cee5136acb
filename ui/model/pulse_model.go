package model

import (
	"math"
	"sync/atomic"
)

// PulseModel holds the latest derived pulse readings. The zero value reads
// as no measurement. Written from the frame pipeline, read from UI ticks
// and the web handlers, hence atomics.
type PulseModel struct {
	bpmBits        atomic.Uint64
	brightnessBits atomic.Uint64
	beats          atomic.Uint64
}

// BPM returns the smoothed heart rate, 0 before the first beat pair.
func (m *PulseModel) BPM() float64 {
	if m == nil {
		return 0
	}
	return math.Float64frombits(m.bpmBits.Load())
}

// SetBPM stores the smoothed heart rate.
func (m *PulseModel) SetBPM(v float64) {
	if m == nil {
		return
	}
	m.bpmBits.Store(math.Float64bits(v))
}

// Brightness returns the most recent mean sample brightness.
func (m *PulseModel) Brightness() float64 {
	if m == nil {
		return 0
	}
	return math.Float64frombits(m.brightnessBits.Load())
}

// SetBrightness stores the mean sample brightness.
func (m *PulseModel) SetBrightness(v float64) {
	if m == nil {
		return
	}
	m.brightnessBits.Store(math.Float64bits(v))
}

// CountBeat increments the detected beat counter.
func (m *PulseModel) CountBeat() {
	if m == nil {
		return
	}
	m.beats.Add(1)
}

// Beats returns the number of beats detected since start.
func (m *PulseModel) Beats() uint64 {
	if m == nil {
		return 0
	}
	return m.beats.Load()
}

// Reset clears all readings, for use when capture restarts.
func (m *PulseModel) Reset() {
	if m == nil {
		return
	}
	m.bpmBits.Store(0)
	m.brightnessBits.Store(0)
	m.beats.Store(0)
}
