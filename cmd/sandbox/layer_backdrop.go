package main

import (
	"github.com/hubastard/grove-dialogs/engine/colors"
	"github.com/hubastard/grove-dialogs/engine/core"
	"github.com/hubastard/grove-dialogs/engine/dialog"
)

// BackdropLayer paints a moving checkerboard standing in for the game
// scene. It freezes while a dialog window is open so the saved screen under
// the window stays valid.
type BackdropLayer struct {
	dialogs *dialog.Session
	t       float64
}

const backdropCell = 16

func (l *BackdropLayer) OnAttach(e *core.Engine) {}
func (l *BackdropLayer) OnDetach(e *core.Engine) {}

func (l *BackdropLayer) OnUpdate(e *core.Engine, dt float64) {
	l.t += dt
}

func (l *BackdropLayer) OnRender(e *core.Engine, alpha float64) {
	if l.dialogs.TopWindow() != dialog.NoWindow {
		return
	}
	light, dark := colors.Gray.ToRGBA(), colors.DarkGray.ToRGBA()
	off := int(l.t*20) % (2 * backdropCell)
	for y := 0; y < e.Screen.H; y += backdropCell {
		for x := -2 * backdropCell; x < e.Screen.W; x += backdropCell {
			c := dark
			if ((x+y)/backdropCell)%2 == 0 {
				c = light
			}
			e.Screen.FillRect(x+off, y, backdropCell, backdropCell, c)
		}
	}
}

func (l *BackdropLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
