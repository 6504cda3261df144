package ui

import (
	"image"
	"strings"
	"testing"

	"github.com/hubastard/grove-dialogs/engine/render"
	"github.com/hubastard/grove-dialogs/engine/text"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	f, err := text.Default(13)
	if err != nil {
		t.Fatalf("load font: %v", err)
	}
	t.Cleanup(f.Close)
	return &Context{Screen: render.NewFrameBuffer(320, 200), Font: f, Theme: DefaultTheme()}
}

func TestPushButtonPressIsCommand(t *testing.T) {
	ctx := newTestContext(t)
	b := NewPushButton(image.Rect(10, 10, 60, 30), "OK")
	DrawIfDirty(ctx, b)
	if b.Dirty() {
		t.Fatalf("button should be clean after draw")
	}

	if got := b.OnPressed(ctx, 20, 20); got != 1 {
		t.Fatalf("expected press result 1, got %d", got)
	}
	DrawIfDirty(ctx, b)
	if !b.Dirty() {
		t.Fatalf("pressed button should redraw once more to pop back up")
	}
	DrawIfDirty(ctx, b)
	if b.Dirty() {
		t.Fatalf("button should settle after the release frame")
	}
}

func TestPushButtonSetText(t *testing.T) {
	ctx := newTestContext(t)
	b := NewPushButton(image.Rect(0, 0, 40, 20), "Old")
	if got := b.ProcessMessage(ctx, MsgSetText, 0, "New"); got != 0 {
		t.Fatalf("unexpected result %d", got)
	}
	var s string
	b.ProcessMessage(ctx, MsgGetText, 0, &s)
	if s != "New" {
		t.Fatalf("expected New, got %q", s)
	}
	if got := b.ProcessMessage(ctx, MsgGetCount, 0, nil); got != -1 {
		t.Fatalf("unknown message should return -1, got %d", got)
	}
}

func TestBasePointInsideIsInclusive(t *testing.T) {
	b := NewPushButton(image.Rect(10, 10, 20, 20), "x")
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{20, 20, true},
		{21, 20, false},
		{9, 15, false},
	}
	for _, c := range cases {
		if got := b.PointInside(c.x, c.y); got != c.want {
			t.Fatalf("PointInside(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestLabelWrapsToWidth(t *testing.T) {
	ctx := newTestContext(t)
	msg := "the quick brown fox jumps over the lazy dog again and again"
	l := NewLabel(ctx, 5, 5, 80, msg)

	lines := l.Lines()
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	for _, line := range lines {
		if w := text.MeasureWidth(ctx.Font, line); w > 80 && strings.Contains(line, " ") {
			t.Fatalf("line %q is %dpx, wider than 80", line, w)
		}
	}
	if got, want := l.Rect().Dy(), len(lines)*text.LineHeight(ctx.Font); got != want {
		t.Fatalf("label height %d, want %d", got, want)
	}
	if strings.Join(strings.Fields(strings.Join(lines, " ")), " ") != msg {
		t.Fatalf("wrapping lost words: %q", lines)
	}
}

func TestLabelSetTextResizes(t *testing.T) {
	ctx := newTestContext(t)
	l := NewLabel(ctx, 0, 0, 200, "one")
	h1 := l.Rect().Dy()
	l.ProcessMessage(ctx, MsgSetText, 0, "one\ntwo\nthree")
	if l.Rect().Dy() != 3*h1 {
		t.Fatalf("expected three lines high, got %d (one line %d)", l.Rect().Dy(), h1)
	}
	if !l.Dirty() {
		t.Fatalf("label should be dirty after SetText")
	}
}

func newFilledList(t *testing.T, ctx *Context, n int) (*ListBox, *[]int) {
	t.Helper()
	l := NewListBox(image.Rect(0, 0, 120, 60))
	var posted []int
	l.SetNotifier(func(code int) { posted = append(posted, code) })
	for i := 0; i < n; i++ {
		if got := l.ProcessMessage(ctx, MsgAddItem, 0, "item"); got != 0 {
			t.Fatalf("add item %d failed: %d", i, got)
		}
	}
	return l, &posted
}

func TestListBoxKeyNavigationPostsSelChange(t *testing.T) {
	ctx := newTestContext(t)
	l, posted := newFilledList(t, ctx, 10)

	l.ProcessMessage(ctx, MsgKeyPress, keyDown, nil)
	if l.Selected() != 0 {
		t.Fatalf("first Down should select item 0, got %d", l.Selected())
	}
	l.ProcessMessage(ctx, MsgKeyPress, keyEnd, nil)
	if l.Selected() != 9 {
		t.Fatalf("End should select last item, got %d", l.Selected())
	}
	if l.Top()+l.visibleRows(ctx) <= 9 {
		t.Fatalf("selection scrolled out of view: top=%d", l.Top())
	}
	l.ProcessMessage(ctx, MsgKeyPress, keyDown, nil) // already at end
	if len(*posted) != 2 {
		t.Fatalf("expected 2 SelChange posts, got %v", *posted)
	}
	for _, code := range *posted {
		if code != NotifySelChange {
			t.Fatalf("unexpected notification %d", code)
		}
	}
}

func TestListBoxMessages(t *testing.T) {
	ctx := newTestContext(t)
	l, _ := newFilledList(t, ctx, 3)

	if got := l.ProcessMessage(ctx, MsgGetCount, 0, nil); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	if got := l.ProcessMessage(ctx, MsgSetCurSel, 5, nil); got != -1 {
		t.Fatalf("out of range SetCurSel should fail, got %d", got)
	}
	l.ProcessMessage(ctx, MsgSetCurSel, 2, nil)
	if got := l.ProcessMessage(ctx, MsgGetCurSel, 0, nil); got != 2 {
		t.Fatalf("expected selection 2, got %d", got)
	}
	var s string
	if got := l.ProcessMessage(ctx, MsgGetItemText, 1, &s); got != 0 || s != "item" {
		t.Fatalf("GetItemText = %d %q", got, s)
	}
	l.ProcessMessage(ctx, MsgClear, 0, nil)
	if l.Selected() != -1 || len(l.Items()) != 0 {
		t.Fatalf("clear did not reset list")
	}
}

func TestListBoxClickSelectsRow(t *testing.T) {
	ctx := newTestContext(t)
	l, posted := newFilledList(t, ctx, 3)
	rowH := l.rowHeight(ctx)

	if got := l.OnPressed(ctx, 10, 1+rowH+rowH/2); got != 0 {
		t.Fatalf("listbox press must not be a command, got %d", got)
	}
	if l.Selected() != 1 {
		t.Fatalf("expected row 1 selected, got %d", l.Selected())
	}
	if len(*posted) != 1 || (*posted)[0] != NotifySelChange {
		t.Fatalf("expected one SelChange, got %v", *posted)
	}

	l.OnPressed(ctx, 10, 1+rowH+rowH/2) // same row again
	if len(*posted) != 1 {
		t.Fatalf("reselecting the same row should not post")
	}
}

func TestTextBoxEditing(t *testing.T) {
	ctx := newTestContext(t)
	tb := NewTextBox(ctx, 0, 0, 150, "ab")

	tb.ProcessMessage(ctx, MsgKeyPress, 'c', nil)
	tb.ProcessMessage(ctx, MsgKeyPress, 0xE9, nil) // é in Windows-1252
	tb.ProcessMessage(ctx, MsgKeyPress, 5, nil)    // control code ignored
	if got := tb.Text(); got != "abcé" {
		t.Fatalf("unexpected text %q", got)
	}
	tb.ProcessMessage(ctx, MsgKeyPress, keyBackspace, nil)
	tb.ProcessMessage(ctx, MsgKeyPress, keyBackspace, nil)
	var s string
	tb.ProcessMessage(ctx, MsgGetText, 0, &s)
	if s != "ab" {
		t.Fatalf("backspace failed, got %q", s)
	}
}

func TestTextBoxStopsAtVisibleWidth(t *testing.T) {
	ctx := newTestContext(t)
	tb := NewTextBox(ctx, 0, 0, 40, "")
	for i := 0; i < 50; i++ {
		tb.ProcessMessage(ctx, MsgKeyPress, 'W', nil)
	}
	if w := text.MeasureWidth(ctx.Font, tb.Text()); w > 40-6 {
		t.Fatalf("text overflowed box: %dpx", w)
	}
	if len(tb.Text()) == 0 {
		t.Fatalf("expected some characters accepted")
	}
}

func TestTextBoxSetTextTruncates(t *testing.T) {
	ctx := newTestContext(t)
	tb := NewTextBox(ctx, 0, 0, 100, "")
	tb.ProcessMessage(ctx, MsgSetText, 0, strings.Repeat("x", TextBoxMaxLen+20))
	if n := len([]rune(tb.Text())); n != TextBoxMaxLen {
		t.Fatalf("expected %d runes, got %d", TextBoxMaxLen, n)
	}
}

func TestKeyPressReportsUse(t *testing.T) {
	ctx := newTestContext(t)
	tb := NewTextBox(ctx, 0, 0, 150, "")
	if got := tb.ProcessMessage(ctx, MsgKeyPress, 'a', nil); got != 1 {
		t.Fatalf("accepted key should return 1, got %d", got)
	}
	if got := tb.ProcessMessage(ctx, MsgKeyPress, keyUp, nil); got != 0 {
		t.Fatalf("navigation key is not a textbox key, got %d", got)
	}

	l, _ := newFilledList(t, ctx, 1)
	if got := l.ProcessMessage(ctx, MsgKeyPress, 'a', nil); got != 0 {
		t.Fatalf("printable key is not a listbox key, got %d", got)
	}
	if got := l.ProcessMessage(ctx, MsgKeyPress, keyUp, nil); got != 1 {
		t.Fatalf("navigation key should be used even without movement, got %d", got)
	}
}
