package capture

import (
	"image"
	"sync"
)

// Reusable grayscale frame pool. Decoding at camera rate would otherwise
// allocate a fresh luma plane per frame; pooling keeps the steady-state heap
// flat. Consumers that are done with a decoded frame should hand it back via
// RecycleGray. If nobody recycles, behaviour degrades gracefully to plain
// per-frame allocation.

var grayPool sync.Pool // stores *image.Gray

// acquireGray returns a reusable Gray image sized to rect. Pix length exactly
// matches the rect area and Stride is the width.
func acquireGray(rect image.Rectangle) *image.Gray {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.Gray{Rect: rect}
	}
	needed := w * h
	var img *image.Gray
	if v := grayPool.Get(); v != nil {
		img = v.(*image.Gray)
	}
	if img == nil || cap(img.Pix) < needed {
		img = &image.Gray{Pix: make([]byte, needed), Stride: w, Rect: rect}
	} else {
		img.Stride = w
		img.Rect = rect
		img.Pix = img.Pix[:needed]
	}
	return img
}

// RecycleGray returns the frame to the pool for potential reuse. The frame
// must no longer be accessed by the caller afterwards.
func RecycleGray(img *image.Gray) {
	if img == nil || img.Pix == nil {
		return
	}
	grayPool.Put(img)
}
