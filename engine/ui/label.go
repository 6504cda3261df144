package ui

import (
	"image"
	"strings"

	"github.com/hubastard/grove-dialogs/engine/text"
)

// Label is static, word-wrapped text. Its height follows the wrapped line
// count, so only the width is fixed at creation.
type Label struct {
	Base
	text      string
	layoutStr string
}

func NewLabel(ctx *Context, x, y, width int, title string) *Label {
	l := &Label{Base: Base{rect: image.Rect(x, y, x+width, y), dirty: true}}
	l.setText(ctx, title)
	return l
}

func (l *Label) Node() *Base  { return &l.Base }
func (l *Label) Text() string { return l.text }

// Lines returns the wrapped lines as laid out for the current width.
func (l *Label) Lines() []string { return strings.Split(l.layoutStr, "\n") }

func (l *Label) Draw(ctx *Context) {
	ctx.drawText(l.rect.Min.X, l.rect.Min.Y, l.layoutStr, ctx.Theme.Text)
}

func (l *Label) ProcessMessage(ctx *Context, msg, _ int, arg any) int {
	switch msg {
	case MsgSetText:
		if s, ok := arg.(string); ok {
			// Clear the old text area before the height changes.
			r := l.rect
			ctx.Screen.FillRect(r.Min.X, r.Min.Y, r.Dx()+1, r.Dy()+1, ctx.Theme.Background)
			l.setText(ctx, s)
			l.dirty = true
		}
	case MsgGetText:
		if dst, ok := arg.(*string); ok {
			*dst = l.text
		}
	default:
		return -1
	}
	return 0
}

func (l *Label) OnPressed(_ *Context, _, _ int) int { return 0 }

func (l *Label) setText(ctx *Context, s string) {
	l.text = s
	l.layoutStr = s
	lines := 1
	if ctx.Font != nil {
		l.layoutStr = wrap(ctx.Font, s, l.rect.Dx())
		lines = strings.Count(l.layoutStr, "\n") + 1
	}
	l.rect.Max.Y = l.rect.Min.Y + lines*ctx.lineHeight()
}

// wrap breaks s on spaces so no line exceeds maxWidth; explicit newlines are
// kept. A single word wider than maxWidth gets a line of its own.
func wrap(f *text.Font, s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	spaceWidth := text.MeasureWidth(f, " ")

	var wrapped []string
	for _, raw := range strings.Split(s, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			wrapped = append(wrapped, "")
			continue
		}

		current := words[0]
		currentWidth := text.MeasureWidth(f, current)
		for _, word := range words[1:] {
			wordWidth := text.MeasureWidth(f, word)
			if currentWidth+spaceWidth+wordWidth > maxWidth {
				wrapped = append(wrapped, current)
				current = word
				currentWidth = wordWidth
			} else {
				current += " " + word
				currentWidth += spaceWidth + wordWidth
			}
		}
		wrapped = append(wrapped, current)
	}
	return strings.Join(wrapped, "\n")
}
