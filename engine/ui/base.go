package ui

import "image"

// Control type codes live in the low byte of typeAndFlags.
const (
	TypePushButton = 1
	TypeListBox    = 2
	TypeLabel      = 3
	TypeTextBox    = 4

	TypeMask = 0x00ff
)

// Role flags.
const (
	FlagDefault      = 0x0100 // activated by Enter
	FlagCancel       = 0x0200 // activated by Escape
	FlagListBoxFocus = 0x0400 // receives navigation keys
	FlagTextBoxFocus = 0x0800 // receives typed keys
)

// Notification codes reported back to the dialog owner.
const (
	NotifyCommand   = 1
	NotifyKeyPress  = 2
	NotifySelChange = 3
)

// Control messages.
const (
	MsgGetText     = 1  // arg: *string
	MsgSetText     = 2  // arg: string
	MsgAddItem     = 10 // arg: string
	MsgClear       = 11
	MsgGetCurSel   = 12
	MsgSetCurSel   = 13 // wParam: index
	MsgGetItemText = 14 // wParam: index, arg: *string
	MsgSetTopIndex = 15 // wParam: index
	MsgGetCount    = 16
	MsgKeyPress    = 91 // wParam: key code; returns 1 when the key was used
)

// Control is implemented by the four dialog control kinds.
type Control interface {
	Node() *Base
	Draw(ctx *Context)
	ProcessMessage(ctx *Context, msg, wParam int, arg any) int
	OnPressed(ctx *Context, x, y int) int
}

// Base holds the state shared by every control.
type Base struct {
	rect   image.Rectangle
	flags  int
	level  int
	dirty  bool
	notify func(code int)
}

func (b *Base) Rect() image.Rectangle { return b.rect }
func (b *Base) Flags() int            { return b.flags }
func (b *Base) Type() int             { return b.flags & TypeMask }
func (b *Base) Level() int            { return b.level }
func (b *Base) Dirty() bool           { return b.dirty }
func (b *Base) MarkDirty()            { b.dirty = true }

func (b *Base) SetFlags(f int)                { b.flags = f }
func (b *Base) SetLevel(l int)                { b.level = l }
func (b *Base) SetNotifier(fn func(code int)) { b.notify = fn }

// PointInside uses inclusive edges like the legacy hit test.
func (b *Base) PointInside(x, y int) bool {
	return x >= b.rect.Min.X && x <= b.rect.Max.X && y >= b.rect.Min.Y && y <= b.rect.Max.Y
}

func (b *Base) post(code int) {
	if b.notify != nil {
		b.notify(code)
	}
}

// DrawIfDirty redraws c when it was marked dirty since the last draw.
func DrawIfDirty(ctx *Context, c Control) {
	if c.Node().dirty {
		c.Node().dirty = false
		c.Draw(ctx)
	}
}
