package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hubastard/grove-dialogs/engine/colors"
	"github.com/hubastard/grove-dialogs/engine/core"
	"github.com/hubastard/grove-dialogs/engine/profiler"
	"github.com/hubastard/grove-dialogs/engine/scratch"
	"github.com/hubastard/grove-dialogs/engine/text"
)

// LayerDebug draws a status line and owns the debug keys: F9 dumps the
// profile, F10 aborts the game.
type LayerDebug struct {
	app    *App
	status *scratch.Buffer
}

func (l *LayerDebug) OnAttach(e *core.Engine) { l.status = scratch.New(64) }
func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerDebug.OnRender")()
	f := l.app.font
	if f == nil {
		return
	}
	h := text.LineHeight(f) + 2
	e.Screen.FillRect(0, 0, e.Screen.W, h, colors.Black.ToRGBA())
	l.status.Reset().
		S("frame ").U(e.Clock.Frame()).
		S("  up ").F64(e.Uptime().Seconds(), 0).C('s').
		S("  windows ").I(l.app.dialogs.OpenWindows())
	text.DrawText(e.Screen, f, 2, 1, l.status.View(), colors.Yellow.ToRGBA())
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	switch k.Code {
	case core.KeyF10:
		l.app.quit("!|")
		e.Window.RequestClose()
		return true
	case core.KeyF9:
		path := filepath.Join(os.TempDir(), "grove-dialogs.speedscope.json")
		if err := profiler.Dump(path); err != nil {
			log.Printf("profiler dump: %v", err)
		} else {
			log.Printf("speedscope dump: %s", path)
		}
		return true
	}
	return false
}
