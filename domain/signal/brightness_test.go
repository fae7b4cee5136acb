package signal

import (
	"image"
	"image/color"
	"testing"
)

func TestMeanROIBrightnessUniformGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 48))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	if got := MeanROIBrightness(img, 0.5); got != 200 {
		t.Errorf("got %.2f, want 200", got)
	}
}

func TestMeanROIBrightnessCenterCrop(t *testing.T) {
	// Bright center, dark border. A half-size ROI sees only the center.
	img := image.NewGray(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := uint8(0)
			if x >= 10 && x < 30 && y >= 10 && y < 30 {
				v = 250
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	if got := MeanROIBrightness(img, 0.5); got != 250 {
		t.Errorf("half ROI got %.2f, want 250", got)
	}
	full := MeanROIBrightness(img, 1)
	if full >= 250 || full <= 0 {
		t.Errorf("full frame mean %.2f not between border and center", full)
	}
}

func TestMeanROIBrightnessNonGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}
	got := MeanROIBrightness(img, 1)
	if got < 99 || got > 101 {
		t.Errorf("got %.2f, want about 100", got)
	}
}

func TestMeanROIBrightnessEdgeInputs(t *testing.T) {
	if got := MeanROIBrightness(nil, 0.5); got != 0 {
		t.Errorf("nil image: got %.2f, want 0", got)
	}
	empty := image.NewGray(image.Rect(0, 0, 0, 0))
	if got := MeanROIBrightness(empty, 0.5); got != 0 {
		t.Errorf("empty image: got %.2f, want 0", got)
	}
	one := image.NewGray(image.Rect(0, 0, 1, 1))
	one.Pix[0] = 77
	if got := MeanROIBrightness(one, 0.01); got != 77 {
		t.Errorf("tiny ROI clamps to one pixel: got %.2f, want 77", got)
	}
}
