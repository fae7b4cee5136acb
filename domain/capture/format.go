package capture

import "fmt"

// FrameRateRange is a supported frame rate interval of a device format,
// in frames per second.
type FrameRateRange struct {
	Min float64
	Max float64
}

// Format describes one device-supported combination of resolution and
// frame rate ranges.
type Format struct {
	Width  int
	Height int
	Ranges []FrameRateRange
}

// Pixels returns the spatial resolution of the format in pixels.
func (f Format) Pixels() int { return f.Width * f.Height }

func (f Format) String() string {
	r, ok := f.BestRange()
	if !ok {
		return fmt.Sprintf("%dx%d", f.Width, f.Height)
	}
	return fmt.Sprintf("%dx%d@%gfps", f.Width, f.Height, r.Max)
}

// BestRange returns the frame rate range with the highest maximum rate.
// ok is false when the format has no ranges at all.
func (f Format) BestRange() (best FrameRateRange, ok bool) {
	for _, r := range f.Ranges {
		if !ok || r.Max > best.Max {
			best = r
			ok = true
		}
	}
	return best, ok
}

// SelectFormat picks the capture format for pulse measurement. The signal is
// a scalar brightness trend, so temporal resolution is everything and spatial
// resolution is just per-frame cost: among the formats whose best range
// attains the highest frame rate any format offers, the smallest resolution
// wins. Exact ties keep the first format encountered. ok is false when no
// format has a frame rate range.
func SelectFormat(formats []Format) (sel Format, ok bool) {
	maxRate := 0.0
	for _, f := range formats {
		if r, has := f.BestRange(); has && r.Max > maxRate {
			maxRate = r.Max
		}
	}
	for _, f := range formats {
		r, has := f.BestRange()
		if !has || r.Max != maxRate {
			continue
		}
		if !ok || f.Pixels() < sel.Pixels() {
			sel = f
			ok = true
		}
	}
	return sel, ok
}
