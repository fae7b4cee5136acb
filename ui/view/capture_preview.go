package view

import (
	"image"
	"image/color"

	"github.com/soocke/pulse-cam-go/ui/images"
	"github.com/soocke/pulse-cam-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview shows the live camera frame with the sampling region
// outlined. It owns one LabelWidget and provides methods to update or reset
// it.
type CapturePreview interface {
	UpdatePreview(img image.Image)
	Reset()
}

type capturePreview struct {
	previewLabel *LabelWidget
	prevPhoto    *Img // last Tk photo image instance
	roiFrac      float64
}

// Internal state tracks the current photo so we can dispose the old image
// before replacing it, preventing accumulation of off-screen image data.

const (
	placeholderW = 320
	placeholderH = 240
)

// NewCapturePreview creates the preview label, grids it and returns the view.
// roiFrac controls the sampling-region outline drawn over each frame.
func NewCapturePreview(row int, roiFrac float64) CapturePreview {
	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH))
	pngBytes := images.EncodePNG(placeholder)
	photo := NewPhoto(Data(pngBytes))
	preview := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(preview, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &capturePreview{previewLabel: preview, prevPhoto: photo, roiFrac: roiFrac}
}

func (v *capturePreview) UpdatePreview(img image.Image) {
	if v.previewLabel == nil || img == nil {
		return
	}
	marked := withROIOutline(img, v.roiFrac)
	pngBytes := images.EncodePNG(marked)
	// Replace the previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.previewLabel.Configure(Image(newPhoto))
}

func (v *capturePreview) Reset() {
	if v.previewLabel == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH))
	pngBytes := images.EncodePNG(placeholder)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.previewLabel.Configure(Image(v.prevPhoto))
}

// withROIOutline draws a one pixel rectangle marking the sampling region.
// The input is copied first; the shared preview frame stays untouched.
func withROIOutline(img image.Image, frac float64) image.Image {
	if frac <= 0 || frac >= 1 {
		return img
	}
	rgba := images.ToRGBA(img)
	r := images.CenterRect(rgba.Bounds(), frac)
	for x := r.Min.X; x < r.Max.X; x++ {
		setPix(rgba, x, r.Min.Y, theme.AccentRGBA)
		setPix(rgba, x, r.Max.Y-1, theme.AccentRGBA)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		setPix(rgba, r.Min.X, y, theme.AccentRGBA)
		setPix(rgba, r.Max.X-1, y, theme.AccentRGBA)
	}
	return rgba
}

func setPix(img *image.RGBA, x, y int, c color.RGBA) {
	i := img.PixOffset(x, y)
	if i < 0 || i+3 >= len(img.Pix) {
		return
	}
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}
