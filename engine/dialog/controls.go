package dialog

import (
	"fmt"
	"image"

	"github.com/hubastard/grove-dialogs/engine/text"
	"github.com/hubastard/grove-dialogs/engine/ui"
)

// CreateControl creates a control in the first free slot and draws it. The
// rectangle is in design coordinates; a push button with width
// ui.ButtonAutoWidth is sized from its title. The control belongs to the
// current top window.
func (s *Session) CreateControl(typeAndFlags, x, y, w, h int, title string) (int, error) {
	autoWidth := w == ui.ButtonAutoWidth
	x, y, w, h = s.scaler.ScaleRect(x, y, w, h)

	id := -1
	for i := 1; i < MaxControls; i++ {
		if s.controls[i] == nil {
			id = i
			break
		}
	}
	if id < 0 {
		return NoControl, s.fatal("create control", "Too many controls created", ErrCapacityExceeded)
	}

	var c ui.Control
	switch typeAndFlags & ui.TypeMask {
	case ui.TypePushButton:
		if autoWidth {
			w = s.textWidth(title) + ui.ButtonPadding
		}
		c = ui.NewPushButton(image.Rect(x, y, x+w, y+h), title)
	case ui.TypeListBox:
		c = ui.NewListBox(image.Rect(x, y, x+w, y+h))
		typeAndFlags |= ui.FlagListBoxFocus
	case ui.TypeLabel:
		c = ui.NewLabel(s.ui, x, y, w, title)
	case ui.TypeTextBox:
		c = ui.NewTextBox(s.ui, x, y, w, title)
		typeAndFlags |= ui.FlagTextBoxFocus
	default:
		return NoControl, s.fatal("create control", "Unknown control type requested",
			fmt.Errorf("%w: %d", ErrUnknownControlType, typeAndFlags&ui.TypeMask))
	}

	n := c.Node()
	n.SetFlags(typeAndFlags)
	n.SetLevel(s.top)
	n.SetNotifier(func(code int) {
		s.pending = code
		s.pendingID = id
	})
	s.controls[id] = c
	c.Draw(s.ui)
	return id, nil
}

// DeleteControl frees a slot. Deleting an empty slot does nothing.
func (s *Session) DeleteControl(id int) {
	if id < 0 || id >= MaxControls {
		return
	}
	s.controls[id] = nil
}

// SendControlMessage forwards msg to the control in slot id. It returns -1
// when the slot is empty.
func (s *Session) SendControlMessage(id, msg, wParam int, arg any) int {
	c := s.lookup(id)
	if c == nil {
		return -1
	}
	return c.ProcessMessage(s.ui, msg, wParam, arg)
}

// Control returns the control in slot id, or nil.
func (s *Session) Control(id int) ui.Control {
	return s.lookup(id)
}

func (s *Session) lookup(id int) ui.Control {
	if id < 0 || id >= MaxControls {
		return nil
	}
	return s.controls[id]
}

// FindDefault returns the lowest slot owned by the top window whose flags
// intersect mask, or NoControl. Controls left over from closed windows never
// match.
func (s *Session) FindDefault(mask int) int {
	for i, c := range s.controls {
		if c == nil {
			continue
		}
		n := c.Node()
		if n.Level() != s.top {
			continue
		}
		if n.Flags()&mask != 0 {
			return i
		}
	}
	return NoControl
}

// hitTest presses the lowest slot under the cursor and returns its id and
// press result.
func (s *Session) hitTest() (int, int) {
	x, y := s.input.Cursor()
	for i, c := range s.controls {
		if c == nil {
			continue
		}
		if c.Node().PointInside(x, y) {
			return i, c.OnPressed(s.ui, x, y)
		}
	}
	return NoControl, 0
}

func (s *Session) textWidth(str string) int {
	if s.ui.Font == nil {
		return 0
	}
	return text.MeasureWidth(s.ui.Font, str)
}
