package text

import (
	"image"
	"image/color"
	"strings"

	"github.com/hubastard/grove-dialogs/engine/render"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawText draws s with its top-left corner at (x,y). Positive Y goes down.
func DrawText(fb *render.FrameBuffer, f *Font, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  fb.Img,
		Src:  image.NewUniform(c),
		Face: f.Face,
	}
	baseY := y + f.Ascent
	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(x, baseY)
		d.DrawString(line)
		baseY += LineHeight(f)
	}
}

// MeasureText returns the pixel extent of s. Each '\n' starts a new line.
func MeasureText(f *Font, s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := font.MeasureString(f.Face, line).Ceil(); w > width {
			width = w
		}
	}
	return width, LineHeight(f) * len(lines)
}

// MeasureWidth is the single-line width used to auto-size buttons.
func MeasureWidth(f *Font, s string) int {
	return font.MeasureString(f.Face, s).Ceil()
}

func LineHeight(f *Font) int { return f.Ascent + f.Descent + f.LineGap }
