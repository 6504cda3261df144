package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hubastard/grove-dialogs/engine/core"
	"github.com/hubastard/grove-dialogs/engine/dialog"
	"github.com/hubastard/grove-dialogs/engine/profiler"
)

var saveSlots = []string{
	"Slot 1 - Kitchen",
	"Slot 2 - Cellar",
	"Slot 3 - Lighthouse",
	"Slot 4 - Empty",
	"Slot 5 - Empty",
	"Slot 6 - Empty",
	"Slot 7 - Empty",
	"Slot 8 - Empty",
}

// DialogLayer runs the demo prompts. Each prompt blocks OnUpdate and pumps
// frames itself through the engine clock.
type DialogLayer struct {
	app  *App
	name string
	done bool
}

func (l *DialogLayer) OnAttach(e *core.Engine) {}
func (l *DialogLayer) OnDetach(e *core.Engine) {}

func (l *DialogLayer) OnUpdate(e *core.Engine, dt float64) {
	if l.done {
		return
	}
	quit, err := l.round(context.Background())
	switch {
	case errors.Is(err, core.ErrWindowClosed):
		l.done = true
	case err != nil:
		l.done = true
		l.app.fail(e, err)
	case quit:
		l.done = true
		e.Window.RequestClose()
	}
}

func (l *DialogLayer) round(ctx context.Context) (bool, error) {
	defer profiler.Start("DialogLayer.round")()
	s := l.app.dialogs

	name, ok, err := dialog.InputText(ctx, s, "What is your name?", l.name)
	if err != nil {
		return false, err
	}
	if ok && name != "" {
		l.name = name
	}

	slot, ok, err := dialog.ChooseFromList(ctx, s, "Restore which game?", saveSlots)
	if err != nil {
		return false, err
	}
	greeting := fmt.Sprintf("Welcome back, %s.", l.displayName())
	if ok {
		greeting += "\nRestoring " + saveSlots[slot] + "."
	}
	if err := dialog.Alert(ctx, s, greeting); err != nil {
		return false, err
	}

	return dialog.Confirm(ctx, s, "Are you sure you want to quit?", "Quit", "Play")
}

func (l *DialogLayer) displayName() string {
	if l.name == "" {
		return "stranger"
	}
	return l.name
}

func (l *DialogLayer) OnRender(e *core.Engine, alpha float64) {}

func (l *DialogLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
