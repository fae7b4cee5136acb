package signal

import "image"

// MeanROIBrightness averages pixel luma over a centered region covering
// frac of each dimension. A fingertip on the lens lights the whole frame
// fairly evenly, so a small center crop is enough and cheap.
func MeanROIBrightness(img image.Image, frac float64) float64 {
	if img == nil {
		return 0
	}
	if frac <= 0 || frac > 1 {
		frac = 1
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0
	}
	rw := int(float64(w) * frac)
	rh := int(float64(h) * frac)
	if rw < 1 {
		rw = 1
	}
	if rh < 1 {
		rh = 1
	}
	x0 := b.Min.X + (w-rw)/2
	y0 := b.Min.Y + (h-rh)/2

	if gray, ok := img.(*image.Gray); ok {
		var sum uint64
		for y := y0; y < y0+rh; y++ {
			row := gray.Pix[(y-gray.Rect.Min.Y)*gray.Stride+(x0-gray.Rect.Min.X):]
			for x := 0; x < rw; x++ {
				sum += uint64(row[x])
			}
		}
		return float64(sum) / float64(rw*rh)
	}

	var sum uint64
	for y := y0; y < y0+rh; y++ {
		for x := x0; x < x0+rw; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			// Integer BT.601 luma on 16-bit channels, scaled back to 8-bit.
			sum += uint64((299*r + 587*g + 114*bl) / 1000 >> 8)
		}
	}
	return float64(sum) / float64(rw*rh)
}
