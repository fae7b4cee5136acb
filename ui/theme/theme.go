package theme

// Palette constants and style initialization for the pulse cam UI. The app
// calls InitStyles once before building the root view.

import (
	"image/color"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, cards
	ColorBorder    = "#d0d7de"
	ColorAccent    = "#10b981" // sampling-region outline, good-signal cues
	ColorDanger    = "#dc2626"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// AccentRGBA is ColorAccent as pixel data for drawing directly onto preview
// frames.
var AccentRGBA = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}

// InitStyles activates the base ttk theme and applies the app background.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))
}
