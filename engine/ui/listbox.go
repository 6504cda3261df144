package ui

import "image"

const (
	listArrowWidth = 8
	listMaxItems   = 100
)

// Navigation key codes understood by ListBox (scan code + 300).
const (
	keyHome     = 371
	keyUp       = 372
	keyPageUp   = 373
	keyEnd      = 379
	keyDown     = 380
	keyPageDown = 381
)

// ListBox is a single-selection list with a scroll column on its right edge.
type ListBox struct {
	Base
	items    []string
	selected int
	top      int
}

func NewListBox(r image.Rectangle) *ListBox {
	return &ListBox{Base: Base{rect: r, dirty: true}, selected: -1}
}

func (l *ListBox) Node() *Base     { return &l.Base }
func (l *ListBox) Selected() int   { return l.selected }
func (l *ListBox) Top() int        { return l.top }
func (l *ListBox) Items() []string { return l.items }

func (l *ListBox) rowHeight(ctx *Context) int {
	if h := ctx.lineHeight() + 2; h > 2 {
		return h
	}
	return 10
}

func (l *ListBox) visibleRows(ctx *Context) int {
	n := (l.rect.Dy() - 1) / l.rowHeight(ctx)
	if n < 1 {
		n = 1
	}
	return n
}

func (l *ListBox) Draw(ctx *Context) {
	r := l.rect
	w, h := r.Dx()+1, r.Dy()+1
	ctx.Screen.FillRect(r.Min.X, r.Min.Y, w, h, ctx.Theme.ButtonFace)
	ctx.Screen.StrokeRect(r.Min.X, r.Min.Y, w, h, 1, ctx.Theme.Border)

	// scroll column
	ax := r.Max.X - listArrowWidth
	ctx.Screen.FillRect(ax, r.Min.Y+1, 1, h-2, ctx.Theme.Border)
	ctx.Screen.FillRect(ax+1, r.Min.Y+h/2, listArrowWidth-1, 1, ctx.Theme.Border)

	rowH := l.rowHeight(ctx)
	rows := l.visibleRows(ctx)
	for i := 0; i < rows && l.top+i < len(l.items); i++ {
		idx := l.top + i
		y := r.Min.Y + 1 + i*rowH
		fg := ctx.Theme.Text
		if idx == l.selected {
			ctx.Screen.FillRect(r.Min.X+1, y, ax-r.Min.X-1, rowH, ctx.Theme.Selection)
			fg = ctx.Theme.SelectionText
		}
		ctx.drawText(r.Min.X+3, y+1, l.items[idx], fg)
	}
}

func (l *ListBox) ProcessMessage(ctx *Context, msg, wParam int, arg any) int {
	switch msg {
	case MsgAddItem:
		s, ok := arg.(string)
		if !ok || len(l.items) >= listMaxItems {
			return -1
		}
		l.items = append(l.items, s)
	case MsgClear:
		l.items = l.items[:0]
		l.selected = -1
		l.top = 0
	case MsgGetCurSel:
		return l.selected
	case MsgSetCurSel:
		if wParam < -1 || wParam >= len(l.items) {
			return -1
		}
		l.selected = wParam
		l.ensureVisible(ctx)
	case MsgGetItemText:
		if wParam < 0 || wParam >= len(l.items) {
			return -1
		}
		if dst, ok := arg.(*string); ok {
			*dst = l.items[wParam]
		}
	case MsgSetTopIndex:
		if wParam < 0 || wParam >= len(l.items) {
			return -1
		}
		l.top = wParam
	case MsgGetCount:
		return len(l.items)
	case MsgKeyPress:
		if !isNavigationKey(wParam) {
			return 0
		}
		if l.navigate(ctx, wParam) {
			l.dirty = true
			l.post(NotifySelChange)
		}
		return 1
	default:
		return -1
	}
	l.dirty = true
	return 0
}

func isNavigationKey(key int) bool {
	switch key {
	case keyUp, keyDown, keyPageUp, keyPageDown, keyHome, keyEnd:
		return true
	}
	return false
}

// navigate moves the selection for a navigation key and reports whether the
// selection changed.
func (l *ListBox) navigate(ctx *Context, key int) bool {
	if len(l.items) == 0 {
		return false
	}
	page := l.visibleRows(ctx)
	sel := l.selected
	switch key {
	case keyUp:
		sel--
	case keyDown:
		sel++
	case keyPageUp:
		sel -= page
	case keyPageDown:
		sel += page
	case keyHome:
		sel = 0
	case keyEnd:
		sel = len(l.items) - 1
	default:
		return false
	}
	if sel < 0 {
		sel = 0
	}
	if sel >= len(l.items) {
		sel = len(l.items) - 1
	}
	if sel == l.selected {
		return false
	}
	l.selected = sel
	l.ensureVisible(ctx)
	return true
}

func (l *ListBox) ensureVisible(ctx *Context) {
	rows := l.visibleRows(ctx)
	if l.selected < 0 {
		return
	}
	if l.selected < l.top {
		l.top = l.selected
	}
	if l.selected >= l.top+rows {
		l.top = l.selected - rows + 1
	}
}

// OnPressed selects the row under (x,y) or scrolls when the scroll column was
// hit. A selection change is posted as NotifySelChange; the press itself is
// never a command.
func (l *ListBox) OnPressed(ctx *Context, x, y int) int {
	r := l.rect
	l.dirty = true
	if x >= r.Max.X-listArrowWidth {
		rows := l.visibleRows(ctx)
		if y < r.Min.Y+(r.Dy()+1)/2 {
			if l.top > 0 {
				l.top--
			}
		} else if l.top+rows < len(l.items) {
			l.top++
		}
		return 0
	}

	idx := l.top + (y-r.Min.Y-1)/l.rowHeight(ctx)
	if y <= r.Min.Y || idx >= len(l.items) || idx == l.selected {
		return 0
	}
	l.selected = idx
	l.post(NotifySelChange)
	return 0
}
