package ui

import "image"

// ButtonAutoWidth asks CreateControl to size a push button from its title.
const ButtonAutoWidth = -1

// ButtonPadding is added to the measured title width of auto-sized buttons.
const ButtonPadding = 20

type PushButton struct {
	Base
	text    string
	pressed bool
}

func NewPushButton(r image.Rectangle, title string) *PushButton {
	return &PushButton{Base: Base{rect: r, dirty: true}, text: title}
}

func (b *PushButton) Node() *Base  { return &b.Base }
func (b *PushButton) Text() string { return b.text }

func (b *PushButton) Draw(ctx *Context) {
	r := b.rect
	w, h := r.Dx()+1, r.Dy()+1
	face, shade := ctx.Theme.ButtonFace, ctx.Theme.ButtonShadow
	if b.pressed {
		face, shade = shade, face
		// Pop back up on the next frame.
		b.pressed = false
		b.dirty = true
	}
	ctx.Screen.FillRect(r.Min.X, r.Min.Y, w, h, face)
	ctx.Screen.FillRect(r.Min.X+1, r.Max.Y, w-1, 1, shade)
	ctx.Screen.FillRect(r.Max.X, r.Min.Y+1, 1, h-1, shade)
	ctx.Screen.StrokeRect(r.Min.X, r.Min.Y, w, h, 1, ctx.Theme.Border)
	if b.flags&FlagDefault != 0 {
		ctx.Screen.StrokeRect(r.Min.X-1, r.Min.Y-1, w+2, h+2, 1, ctx.Theme.Border)
	}

	tx := r.Min.X + (w-ctx.textWidth(b.text))/2
	ty := r.Min.Y + (h-ctx.lineHeight())/2
	ctx.drawText(tx, ty, b.text, ctx.Theme.Text)
}

func (b *PushButton) ProcessMessage(_ *Context, msg, _ int, arg any) int {
	switch msg {
	case MsgSetText:
		if s, ok := arg.(string); ok {
			b.text = s
			b.dirty = true
		}
	case MsgGetText:
		if dst, ok := arg.(*string); ok {
			*dst = b.text
		}
	default:
		return -1
	}
	return 0
}

func (b *PushButton) OnPressed(_ *Context, _, _ int) int {
	b.pressed = true
	b.dirty = true
	return 1
}
