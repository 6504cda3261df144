package dialog

import (
	"context"
	"fmt"

	"github.com/hubastard/grove-dialogs/engine/profiler"
	"github.com/hubastard/grove-dialogs/engine/render"
	"github.com/hubastard/grove-dialogs/engine/ui"
)

// Legacy key codes handled by the loop. Extended keys arrive as scan code
// plus 300.
const (
	keyBackspace = 8
	keyEnter     = 13
	keyEscape    = 27

	keyListFirst = 372
	keyListLast  = 381
)

// WaitMessage runs the modal loop until one event is ready. Each iteration
// waits for a frame tick, redraws dirty controls, presents the dialog region
// and then polls the keyboard and pointer. It returns early with an error
// when the frame clock fails, for example because ctx was cancelled.
func (s *Session) WaitMessage(ctx context.Context) (Event, error) {
	s.drawDirty()

	geom := s.geom
	s.composite = render.NewFrameBuffer(geom.Dx(), geom.Dy())
	defer func() { s.composite = nil }()

	s.ui.Screen.CopyTo(s.composite, geom)
	bmp, err := s.driver.CreateBitmap(s.composite)
	if err != nil {
		return Event{ID: NoControl}, fmt.Errorf("dialog: create bitmap: %w", err)
	}
	defer s.driver.DestroyBitmap(bmp)

	for {
		ev, err := s.iterate(ctx, bmp)
		if err != nil {
			return Event{ID: NoControl}, err
		}
		if ev.Code > 0 {
			if ev.Code == EventCommand && s.sound != nil {
				s.sound.Click()
			}
			return ev, nil
		}
	}
}

func (s *Session) iterate(ctx context.Context, bmp Bitmap) (Event, error) {
	defer profiler.Start("dialog.WaitMessage")()

	s.pending = 0
	s.pendingID = NoControl
	if err := s.clock.AwaitNextTick(ctx); err != nil {
		return Event{}, err
	}
	if err := s.present(bmp); err != nil {
		return Event{}, err
	}

	ev := Event{ID: NoControl}
	if key, ok := s.input.PollKey(); ok {
		ev = s.handleKey(key)
	}

	if s.input.PollPressed() {
		if id, res := s.hitTest(); res != 0 {
			ev = Event{ID: id, Code: EventCommand}
		}
	}

	if s.pending != 0 {
		ev.Code = s.pending
		ev.ID = s.pendingID
	}
	return ev, nil
}

func (s *Session) handleKey(key int) Event {
	switch {
	case key == keyEnter:
		if id := s.FindDefault(ui.FlagDefault); id != NoControl {
			return Event{ID: id, Code: EventCommand}
		}
	case key == keyEscape:
		if id := s.FindDefault(ui.FlagCancel); id != NoControl {
			return Event{ID: id, Code: EventCommand}
		}
	case key < 32 && key != keyBackspace:
		return Event{ID: NoControl}
	default:
		if s.forwardKey(key) {
			return Event{ID: NoControl}
		}
	}
	return Event{ID: NoControl, Code: EventKeyPress, WParam: key}
}

// forwardKey hands key to the focused list box or text box and reports
// whether the control used it.
func (s *Session) forwardKey(key int) bool {
	target := NoControl
	if key >= keyListFirst && key <= keyListLast {
		target = s.FindDefault(ui.FlagListBoxFocus)
	}
	if target == NoControl {
		target = s.FindDefault(ui.FlagTextBoxFocus)
	}
	if target == NoControl {
		return false
	}
	return s.SendControlMessage(target, ui.MsgKeyPress, key, nil) == 1
}

func (s *Session) drawDirty() {
	for _, c := range s.controls {
		if c != nil {
			ui.DrawIfDirty(s.ui, c)
		}
	}
}

// present redraws dirty controls and pushes the dialog region of the screen
// to the driver.
func (s *Session) present(bmp Bitmap) error {
	s.drawDirty()
	s.composite.Clear(s.ui.Theme.Background)
	s.ui.Screen.CopyTo(s.composite, s.geom)
	if err := s.driver.UpdateBitmap(bmp, s.composite); err != nil {
		return fmt.Errorf("dialog: update bitmap: %w", err)
	}
	s.driver.DrawBitmap(bmp, s.geom.Min.X, s.geom.Min.Y)
	return nil
}
