package colors

import "image/color"

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Red      = Color{1, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

// Dialog palette. Matches the fixed palette slots the legacy dialogs used
// (window background, pushbutton shade and highlight).
var (
	WindowBackground = Color{0.80, 0.80, 0.80, 1}
	ButtonDark       = Color{0.40, 0.40, 0.44, 1}
	ButtonLight      = Color{0.96, 0.96, 0.96, 1}
	Selection        = Color{0.17, 0.34, 0.60, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// ToRGBA converts to an 8-bit color for the software framebuffer.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3])}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
