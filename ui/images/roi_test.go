package images

import (
	"image"
	"image/color"
	"testing"
)

func TestCenterRect(t *testing.T) {
	b := image.Rect(0, 0, 100, 80)
	r := CenterRect(b, 0.5)
	if r.Dx() != 50 || r.Dy() != 40 {
		t.Fatalf("rect size = %dx%d, want 50x40", r.Dx(), r.Dy())
	}
	if r.Min.X != 25 || r.Min.Y != 20 {
		t.Fatalf("rect origin = %v, want (25,20)", r.Min)
	}
}

func TestCenterRect_ClampsAndDefaults(t *testing.T) {
	b := image.Rect(0, 0, 10, 10)
	if r := CenterRect(b, 0); r != b {
		t.Errorf("frac 0 should cover full bounds, got %v", r)
	}
	if r := CenterRect(b, 0.001); r.Dx() != 1 || r.Dy() != 1 {
		t.Errorf("tiny frac should clamp to 1x1, got %v", r)
	}
	if r := CenterRect(image.Rectangle{}, 0.5); !r.Empty() {
		t.Errorf("empty bounds should stay empty, got %v", r)
	}
}

func TestToRGBA_CopiesPixels(t *testing.T) {
	src := image.NewGray(image.Rect(2, 3, 6, 7))
	src.SetGray(2, 3, color.Gray{Y: 200})
	out := ToRGBA(src)
	if out == nil {
		t.Fatal("nil result")
	}
	if b := out.Bounds(); b.Min != image.Pt(0, 0) || b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v, want 4x4 at origin", b)
	}
	if c := out.RGBAAt(0, 0); c.R != 200 || c.G != 200 || c.B != 200 {
		t.Errorf("pixel = %v, want gray 200", c)
	}
	// Mutating the source must not affect the copy.
	src.SetGray(2, 3, color.Gray{Y: 0})
	if c := out.RGBAAt(0, 0); c.R != 200 {
		t.Error("copy shares memory with source")
	}
}

func TestToRGBA_Nil(t *testing.T) {
	if ToRGBA(nil) != nil {
		t.Error("nil source should return nil")
	}
}
