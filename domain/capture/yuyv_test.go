package capture

import (
	"image"
	"testing"
)

// yuyvBuffer builds a frame where every pixel carries the given luma.
func yuyvBuffer(w, h int, luma byte) []byte {
	buf := make([]byte, w*h*2)
	for i := 0; i < len(buf); i += 2 {
		buf[i] = luma     // Y
		buf[i+1] = 0x80   // chroma, ignored
	}
	return buf
}

func TestYUYVDecoder_ExtractsLuma(t *testing.T) {
	d := NewYUYVDecoder(4, 2)
	img, err := d.Decode(yuyvBuffer(4, 2, 180))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	if b := gray.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 4x2", b)
	}
	for i, v := range gray.Pix {
		if v != 180 {
			t.Fatalf("pixel %d = %d, want 180", i, v)
		}
	}
	RecycleGray(gray)
}

func TestYUYVDecoder_PerPixelLuma(t *testing.T) {
	// 2x1 frame: one YUYV macropixel with distinct lumas.
	d := NewYUYVDecoder(2, 1)
	img, err := d.Decode([]byte{10, 0x80, 250, 0x80})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gray := img.(*image.Gray)
	if gray.Pix[0] != 10 || gray.Pix[1] != 250 {
		t.Errorf("pixels = %v, want [10 250]", gray.Pix[:2])
	}
	RecycleGray(gray)
}

func TestYUYVDecoder_ShortBuffer(t *testing.T) {
	d := NewYUYVDecoder(640, 480)
	if _, err := d.Decode(make([]byte, 100)); err == nil {
		t.Error("expected an error for a truncated buffer")
	}
}
