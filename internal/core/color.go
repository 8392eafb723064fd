package core

import "fmt"

// Color is an RGBA colour used for drawing and text tinting.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA builds a colour with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns the colour as a #rrggbb string (alpha is dropped).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the screens.
var (
	ColorBlack      = RGB(0, 0, 0)
	ColorWhite      = RGB(255, 255, 255)
	ColorGray       = RGB(96, 96, 96)
	ColorPlayer     = RGB(0, 255, 0)
	ColorEdible     = RGB(255, 128, 0)
	ColorSpike      = RGB(220, 30, 30)
	ColorHighlight  = RGB(255, 215, 0)
	ColorBackdrop   = RGBA(16, 16, 48, 200)
	ColorBackground = ColorBlack
)
