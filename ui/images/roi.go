package images

import (
	"image"
	"image/draw"
)

// CenterRect returns a rectangle covering frac of each dimension of bounds,
// centered, clamped to at least 1x1. It marks the sampling region drawn over
// the preview.
func CenterRect(bounds image.Rectangle, frac float64) image.Rectangle {
	if bounds.Empty() {
		return image.Rectangle{}
	}
	if frac <= 0 || frac > 1 {
		frac = 1
	}
	w, h := bounds.Dx(), bounds.Dy()
	rw := int(float64(w) * frac)
	rh := int(float64(h) * frac)
	if rw < 1 {
		rw = 1
	}
	if rh < 1 {
		rh = 1
	}
	x0 := bounds.Min.X + (w-rw)/2
	y0 := bounds.Min.Y + (h-rh)/2
	return image.Rect(x0, y0, x0+rw, y0+rh)
}

// ToRGBA returns a fresh RGBA copy of src. The copy is always new memory, so
// the source may be recycled or mutated afterwards. Nil in, nil out.
func ToRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}
