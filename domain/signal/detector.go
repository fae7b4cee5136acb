package signal

import "time"

const (
	minBPM = 40.0
	maxBPM = 220.0
)

// PulseDetector turns a brightness sample stream into beats per minute.
// Blood volume changes modulate the light coming back through the
// fingertip, so each heartbeat shows up as a small periodic swing around a
// slowly drifting baseline. The detector tracks baseline and swing
// amplitude with exponential moving averages, normalizes each sample
// against them, and counts rising threshold crossings spaced by at least a
// refractory interval. Crossings are armed with hysteresis: after a beat
// the normalized signal must fall below zero before the next crossing
// counts, so EMA adaptation wobble on a single slope cannot fire twice.
type PulseDetector struct {
	baselineAlpha  float64
	amplitudeAlpha float64
	threshold      float64
	refractory     time.Duration
	bpmAlpha       float64

	initialized bool
	baseline    float64
	amplitude   float64
	armed       bool
	lastBeat    time.Time
	bpm         float64
	warmupLeft  int
}

// Config tunes the detector. Zero values fall back to defaults that work
// for 30 fps camera input.
type Config struct {
	// BaselineAlpha is the EMA coefficient for the slow brightness drift.
	BaselineAlpha float64
	// AmplitudeAlpha is the EMA coefficient for the beat swing estimate.
	AmplitudeAlpha float64
	// Threshold is the normalized level a rising edge must cross.
	Threshold float64
	// Refractory is the minimum beat spacing.
	Refractory time.Duration
	// BPMAlpha smooths the reported rate across beats.
	BPMAlpha float64
}

func NewPulseDetector(cfg Config) *PulseDetector {
	d := &PulseDetector{
		baselineAlpha:  cfg.BaselineAlpha,
		amplitudeAlpha: cfg.AmplitudeAlpha,
		threshold:      cfg.Threshold,
		refractory:     cfg.Refractory,
		bpmAlpha:       cfg.BPMAlpha,
	}
	if d.baselineAlpha <= 0 || d.baselineAlpha >= 1 {
		d.baselineAlpha = 0.05
	}
	if d.amplitudeAlpha <= 0 || d.amplitudeAlpha >= 1 {
		d.amplitudeAlpha = 0.05
	}
	if d.threshold <= 0 {
		d.threshold = 0.4
	}
	if d.refractory <= 0 {
		d.refractory = 270 * time.Millisecond
	}
	if d.bpmAlpha <= 0 || d.bpmAlpha > 1 {
		d.bpmAlpha = 0.3
	}
	d.Reset()
	return d
}

// Reset clears all adaptive state, for use when capture restarts or the
// finger is repositioned.
func (d *PulseDetector) Reset() {
	d.initialized = false
	d.baseline = 0
	d.amplitude = 0
	d.armed = false
	d.lastBeat = time.Time{}
	d.bpm = 0
	d.warmupLeft = 15
}

// Process consumes one brightness sample. It returns the smoothed rate and
// whether this sample completed a beat. The rate is 0 until two plausible
// beats have been seen.
func (d *PulseDetector) Process(brightness float64, ts time.Time) (bpm float64, beat bool) {
	if !d.initialized {
		d.initialized = true
		d.baseline = brightness
		return d.bpm, false
	}

	d.baseline += d.baselineAlpha * (brightness - d.baseline)
	dev := brightness - d.baseline
	abs := dev
	if abs < 0 {
		abs = -abs
	}
	d.amplitude += d.amplitudeAlpha * (abs - d.amplitude)

	// Let the EMAs settle before trusting crossings.
	if d.warmupLeft > 0 {
		d.warmupLeft--
		return d.bpm, false
	}
	if d.amplitude < 1e-6 {
		return d.bpm, false
	}

	norm := dev / d.amplitude
	if norm < 0 {
		d.armed = true
	}
	if !d.armed || norm < d.threshold {
		return d.bpm, false
	}
	d.armed = false

	if d.lastBeat.IsZero() {
		d.lastBeat = ts
		return d.bpm, false
	}
	interval := ts.Sub(d.lastBeat)
	if interval < d.refractory {
		return d.bpm, false
	}
	d.lastBeat = ts

	instant := 60.0 / interval.Seconds()
	if instant < minBPM || instant > maxBPM {
		return d.bpm, false
	}
	if d.bpm == 0 {
		d.bpm = instant
	} else {
		d.bpm += d.bpmAlpha * (instant - d.bpm)
	}
	return d.bpm, true
}

// BPM returns the last smoothed rate without consuming a sample.
func (d *PulseDetector) BPM() float64 { return d.bpm }
