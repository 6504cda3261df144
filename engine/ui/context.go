package ui

import (
	"image"
	"image/color"

	"github.com/hubastard/grove-dialogs/engine/colors"
	"github.com/hubastard/grove-dialogs/engine/render"
	"github.com/hubastard/grove-dialogs/engine/text"
)

type Theme struct {
	Background    color.RGBA
	Border        color.RGBA
	ButtonFace    color.RGBA
	ButtonShadow  color.RGBA
	Text          color.RGBA
	Selection     color.RGBA
	SelectionText color.RGBA
}

func DefaultTheme() Theme {
	return Theme{
		Background:    colors.WindowBackground.ToRGBA(),
		Border:        colors.Black.ToRGBA(),
		ButtonFace:    colors.ButtonLight.ToRGBA(),
		ButtonShadow:  colors.ButtonDark.ToRGBA(),
		Text:          colors.Black.ToRGBA(),
		Selection:     colors.Selection.ToRGBA(),
		SelectionText: colors.White.ToRGBA(),
	}
}

// Context is what controls draw into.
type Context struct {
	Screen *render.FrameBuffer
	Font   *text.Font
	Theme  Theme
}

// DrawPanel fills r with the window background and outlines it. r is
// inclusive of its max edge, matching the legacy bar primitive.
func DrawPanel(ctx *Context, r image.Rectangle) {
	w, h := r.Dx()+1, r.Dy()+1
	ctx.Screen.FillRect(r.Min.X, r.Min.Y, w, h, ctx.Theme.Background)
	ctx.Screen.StrokeRect(r.Min.X, r.Min.Y, w, h, 1, ctx.Theme.Border)
}

func (ctx *Context) lineHeight() int {
	if ctx.Font == nil {
		return 0
	}
	return text.LineHeight(ctx.Font)
}

func (ctx *Context) drawText(x, y int, s string, c color.RGBA) {
	if ctx.Font == nil || s == "" {
		return
	}
	text.DrawText(ctx.Screen, ctx.Font, x, y, s, c)
}

func (ctx *Context) textWidth(s string) int {
	if ctx.Font == nil {
		return 0
	}
	return text.MeasureWidth(ctx.Font, s)
}
