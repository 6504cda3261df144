package ui

import (
	"image"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// TextBoxMaxLen bounds the number of characters a TextBox accepts.
const TextBoxMaxLen = 200

const keyBackspace = 8

// TextBox is a single-line editor. Key codes are Windows-1252 characters.
type TextBox struct {
	Base
	text []rune
}

// NewTextBox sizes the box to one line of the context font.
func NewTextBox(ctx *Context, x, y, width int, initial string) *TextBox {
	h := ctx.lineHeight() + 4
	t := &TextBox{Base: Base{rect: image.Rect(x, y, x+width, y+h), dirty: true}}
	t.text = []rune(initial)
	if len(t.text) > TextBoxMaxLen {
		t.text = t.text[:TextBoxMaxLen]
	}
	return t
}

func (t *TextBox) Node() *Base  { return &t.Base }
func (t *TextBox) Text() string { return string(t.text) }

func (t *TextBox) Draw(ctx *Context) {
	r := t.rect
	w, h := r.Dx()+1, r.Dy()+1
	ctx.Screen.FillRect(r.Min.X, r.Min.Y, w, h, ctx.Theme.ButtonFace)
	ctx.Screen.StrokeRect(r.Min.X, r.Min.Y, w, h, 1, ctx.Theme.Border)
	s := string(t.text)
	ctx.drawText(r.Min.X+2, r.Min.Y+2, s, ctx.Theme.Text)

	// caret
	cx := r.Min.X + 3 + ctx.textWidth(s)
	if cx < r.Max.X-1 {
		ctx.Screen.FillRect(cx, r.Min.Y+2, 1, h-4, ctx.Theme.Text)
	}
}

func (t *TextBox) ProcessMessage(ctx *Context, msg, wParam int, arg any) int {
	switch msg {
	case MsgGetText:
		if dst, ok := arg.(*string); ok {
			*dst = string(t.text)
		}
		return 0
	case MsgSetText:
		s, ok := arg.(string)
		if !ok {
			return -1
		}
		t.text = []rune(s)
		if len(t.text) > TextBoxMaxLen {
			t.text = t.text[:TextBoxMaxLen]
		}
	case MsgKeyPress:
		if !t.key(ctx, wParam) {
			return 0
		}
		t.dirty = true
		return 1
	default:
		return -1
	}
	t.dirty = true
	return 0
}

func (t *TextBox) key(ctx *Context, code int) bool {
	if code == keyBackspace {
		if len(t.text) == 0 {
			return false
		}
		t.text = t.text[:len(t.text)-1]
		return true
	}
	if code < 32 || code > 255 || len(t.text) >= TextBoxMaxLen {
		return false
	}
	r := charmap.Windows1252.DecodeByte(byte(code))
	if r == utf8.RuneError {
		return false
	}
	// Refuse characters that would overflow the visible box.
	if ctx.textWidth(string(append(t.text, r))) > t.rect.Dx()-6 {
		return false
	}
	t.text = append(t.text, r)
	return true
}

func (t *TextBox) OnPressed(_ *Context, _, _ int) int { return 0 }
