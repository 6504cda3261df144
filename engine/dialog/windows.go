package dialog

import (
	"image"

	"github.com/hubastard/grove-dialogs/engine/ui"
)

// windowMargin is added on every edge so the panel border is saved and
// restored with the window.
const windowMargin = 2

// OpenWindow saves the screen under the design-space rectangle, draws an
// empty panel over it and makes the new window the top window.
func (s *Session) OpenWindow(x, y, w, h int) (int, error) {
	x, y, w, h = s.scaler.ScaleRect(x, y, w, h)

	id := -1
	for i := range s.windows {
		if s.windows[i].buffer == nil {
			id = i
			break
		}
	}
	if id < 0 {
		return NoWindow, s.fatal("open window", "Too many windows created.", ErrCapacityExceeded)
	}

	x -= windowMargin
	y -= windowMargin
	w += 2 * windowMargin
	h += 2 * windowMargin

	win := &s.windows[id]
	win.x, win.y = x, y
	win.buffer = s.ui.Screen.Snapshot(image.Rect(x, y, x+w+1, y+h+1))
	ui.DrawPanel(s.ui, image.Rect(x+1, y+1, x+w-1, y+h-1))

	win.prevTop = s.top
	s.top = id
	s.geom = image.Rect(x, y, x+w, y+h)
	s.log.Printf("[dialog] window %d opened at %v (top was %d)", id, s.geom, win.prevTop)
	return id, nil
}

// CloseWindow restores the screen saved by OpenWindow and makes the window
// that was on top before it the top window again. Windows are expected to be
// closed in reverse order of opening.
func (s *Session) CloseWindow(id int) error {
	if id < 0 || id >= MaxWindows || s.windows[id].buffer == nil {
		return &Error{Op: "close window", Handle: id, Err: ErrInvalidHandle}
	}
	win := &s.windows[id]
	s.top = win.prevTop
	s.ui.Screen.Blit(win.buffer, win.x, win.y)
	*win = windowEntry{}
	s.log.Printf("[dialog] window %d closed (top is %d)", id, s.top)
	return nil
}

// OpenWindows returns the number of open windows.
func (s *Session) OpenWindows() int {
	n := 0
	for _, w := range s.windows {
		if w.buffer != nil {
			n++
		}
	}
	return n
}
