package capture

import (
	"fmt"
	"image"
)

// YUYVDecoder converts packed YUYV 4:2:2 buffers into grayscale images. Only
// the luma bytes are read; chroma carries nothing the brightness signal
// needs.
type YUYVDecoder struct {
	width  int
	height int
}

// NewYUYVDecoder returns a decoder for frames of the given dimensions.
func NewYUYVDecoder(width, height int) *YUYVDecoder {
	return &YUYVDecoder{width: width, height: height}
}

// Decode extracts the luma plane into a pooled *image.Gray.
func (d *YUYVDecoder) Decode(buf []byte) (image.Image, error) {
	n := d.width * d.height
	if len(buf) < n*2 {
		return nil, fmt.Errorf("capture: short YUYV buffer: got %d bytes, want %d", len(buf), n*2)
	}
	img := acquireGray(image.Rect(0, 0, d.width, d.height))
	// YUYV packs [Y0 U Y1 V]; luma sits at every even byte.
	for i := 0; i < n; i++ {
		img.Pix[i] = buf[2*i]
	}
	return img, nil
}
