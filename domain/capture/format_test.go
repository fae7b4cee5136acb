package capture

import "testing"

func rng(min, max float64) FrameRateRange { return FrameRateRange{Min: min, Max: max} }

func TestSelectFormat_HighestRateWins(t *testing.T) {
	formats := []Format{
		{Width: 640, Height: 480, Ranges: []FrameRateRange{rng(1, 30)}},
		{Width: 640, Height: 480, Ranges: []FrameRateRange{rng(1, 60)}},
		{Width: 1920, Height: 1080, Ranges: []FrameRateRange{rng(1, 30)}},
	}
	sel, ok := SelectFormat(formats)
	if !ok {
		t.Fatal("expected a selection")
	}
	if r, _ := sel.BestRange(); r.Max != 60 {
		t.Errorf("selected %v, want the 60 fps format", sel)
	}
}

func TestSelectFormat_FewestPixelsAmongRateTies(t *testing.T) {
	formats := []Format{
		{Width: 1920, Height: 1080, Ranges: []FrameRateRange{rng(1, 30)}},
		{Width: 640, Height: 480, Ranges: []FrameRateRange{rng(1, 30)}},
		{Width: 1280, Height: 720, Ranges: []FrameRateRange{rng(1, 30)}},
	}
	sel, ok := SelectFormat(formats)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.Width != 640 || sel.Height != 480 {
		t.Errorf("selected %v, want 640x480", sel)
	}
}

func TestSelectFormat_FirstEncounteredBreaksFullTie(t *testing.T) {
	// Same rate, same pixel count, different shapes. The earlier one wins.
	formats := []Format{
		{Width: 800, Height: 600, Ranges: []FrameRateRange{rng(1, 30)}},
		{Width: 600, Height: 800, Ranges: []FrameRateRange{rng(1, 30)}},
	}
	sel, ok := SelectFormat(formats)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.Width != 800 || sel.Height != 600 {
		t.Errorf("selected %v, want the first 800x600 entry", sel)
	}
}

func TestSelectFormat_RangelessFormatsDiscarded(t *testing.T) {
	formats := []Format{
		{Width: 3840, Height: 2160}, // no rate ranges at all
		{Width: 640, Height: 480, Ranges: []FrameRateRange{rng(1, 15)}},
	}
	sel, ok := SelectFormat(formats)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.Width != 640 {
		t.Errorf("selected %v, want 640x480", sel)
	}
}

func TestSelectFormat_NothingUsable(t *testing.T) {
	if _, ok := SelectFormat(nil); ok {
		t.Error("empty input must not select")
	}
	if _, ok := SelectFormat([]Format{{Width: 640, Height: 480}}); ok {
		t.Error("rangeless-only input must not select")
	}
}

func TestSelectFormat_BestRangePerFormat(t *testing.T) {
	// The per-format candidate is its max-rate range, not its first.
	f := Format{Width: 640, Height: 480, Ranges: []FrameRateRange{rng(1, 15), rng(1, 60), rng(1, 30)}}
	r, ok := f.BestRange()
	if !ok || r.Max != 60 {
		t.Errorf("best range = %v ok=%v, want max 60", r, ok)
	}
	sel, ok := SelectFormat([]Format{
		{Width: 320, Height: 240, Ranges: []FrameRateRange{rng(1, 30)}},
		f,
	})
	if !ok || sel.Width != 640 {
		t.Errorf("selected %v, want the 640x480 format via its 60 fps range", sel)
	}
}
