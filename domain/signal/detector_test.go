package signal

import (
	"math"
	"testing"
	"time"
)

// feedSine pushes a synthetic brightness sine at the given beat frequency
// and sample rate, returning the last reported rate.
func feedSine(t *testing.T, d *PulseDetector, beatHz, sampleHz float64, seconds float64) float64 {
	t.Helper()
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := int(seconds * sampleHz)
	var bpm float64
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(float64(i) / sampleHz * float64(time.Second)))
		v := 128 + 4*math.Sin(2*math.Pi*beatHz*float64(i)/sampleHz)
		bpm, _ = d.Process(v, ts)
	}
	return bpm
}

func TestPulseDetectorConvergesOnSine(t *testing.T) {
	d := NewPulseDetector(Config{})
	bpm := feedSine(t, d, 1.2, 30, 20) // 72 beats per minute
	if math.Abs(bpm-72) > 5 {
		t.Errorf("got %.1f bpm, want about 72", bpm)
	}
}

func TestPulseDetectorSlowRate(t *testing.T) {
	d := NewPulseDetector(Config{})
	bpm := feedSine(t, d, 0.9, 30, 25) // 54 beats per minute
	if math.Abs(bpm-54) > 5 {
		t.Errorf("got %.1f bpm, want about 54", bpm)
	}
}

func TestPulseDetectorFlatSignalReportsNothing(t *testing.T) {
	d := NewPulseDetector(Config{})
	start := time.Now()
	for i := 0; i < 300; i++ {
		ts := start.Add(time.Duration(i) * 33 * time.Millisecond)
		if bpm, beat := d.Process(128, ts); beat || bpm != 0 {
			t.Fatalf("flat signal produced bpm=%.1f beat=%v at sample %d", bpm, beat, i)
		}
	}
}

func TestPulseDetectorRejectsImplausibleRates(t *testing.T) {
	d := NewPulseDetector(Config{})
	// A 0.5 Hz swell is 30 beats per minute, below the plausible band.
	if bpm := feedSine(t, d, 0.5, 30, 30); bpm != 0 {
		t.Errorf("slow swell produced %.1f bpm, want 0", bpm)
	}
}

func TestPulseDetectorReset(t *testing.T) {
	d := NewPulseDetector(Config{})
	if bpm := feedSine(t, d, 1.2, 30, 20); bpm == 0 {
		t.Fatal("expected a rate before reset")
	}
	d.Reset()
	if d.BPM() != 0 {
		t.Errorf("BPM after reset = %.1f, want 0", d.BPM())
	}
}
