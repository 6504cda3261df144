package main

import (
	"errors"
	"log"
	"os"

	"github.com/hubastard/grove-dialogs/engine/assets"
	"github.com/hubastard/grove-dialogs/engine/audio"
	"github.com/hubastard/grove-dialogs/engine/colors"
	"github.com/hubastard/grove-dialogs/engine/config"
	"github.com/hubastard/grove-dialogs/engine/core"
	"github.com/hubastard/grove-dialogs/engine/dialog"
	glbackend "github.com/hubastard/grove-dialogs/engine/gfx/gl"
	"github.com/hubastard/grove-dialogs/engine/platform"
	"github.com/hubastard/grove-dialogs/engine/profiler"
	"github.com/hubastard/grove-dialogs/engine/shutdown"
	"github.com/hubastard/grove-dialogs/engine/text"
)

const version = "0.1.0"

type App struct {
	setup   *config.Setup
	driver  dialog.Driver
	font    *text.Font
	sound   *audio.Mixer
	dialogs *dialog.Session

	// quitMsg follows the shutdown message convention: "|" prefix for a
	// normal exit.
	quitMsg string
}

func (a *App) OnStart(e *core.Engine) {
	var err error
	if a.setup.Dialog.FontFile != "" {
		a.font, err = text.LoadFile(a.setup.Dialog.FontFile, a.setup.Dialog.FontSize)
	} else {
		a.font, err = text.Default(a.setup.Dialog.FontSize)
	}
	if err != nil {
		a.fail(e, err)
		return
	}

	a.sound = audio.New(a.setup.Sound)
	if err := a.sound.Init(); err != nil {
		// the game runs without sound
		log.Printf("audio disabled: %v", err)
	}

	a.dialogs, err = dialog.NewSession(dialog.Options{
		Screen: e.Screen,
		Font:   a.font,
		Scaler: dialog.NewScaler(a.setup.Graphics.BaseWidth),
		Clock:  e,
		Input:  e.Input,
		Driver: a.driver,
		Sound:  a.sound,
	})
	if err != nil {
		a.fail(e, err)
		return
	}

	e.Layers.Push(e, &BackdropLayer{dialogs: a.dialogs})
	e.Layers.Push(e, &LayerDebug{app: a})
	e.Layers.Push(e, &DialogLayer{app: a})
}

func (a *App) OnUpdate(e *core.Engine, dt float64)     {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)   {}
func (a *App) OnShutdown(e *core.Engine)               {}

// quit records msg unless an earlier failure was already recorded.
func (a *App) quit(msg string) {
	if a.quitMsg == "" || a.quitMsg[0] == '|' {
		a.quitMsg = msg
	}
}

func (a *App) fail(e *core.Engine, err error) {
	a.quit(err.Error())
	e.Window.RequestClose()
}

// closeDialogs closes windows a failed dialog left open, top first.
func (a *App) closeDialogs() error {
	if a.dialogs == nil {
		return nil
	}
	var errs []error
	for top := a.dialogs.TopWindow(); top != dialog.NoWindow; top = a.dialogs.TopWindow() {
		if err := a.dialogs.CloseWindow(top); err != nil {
			errs = append(errs, err)
			break
		}
	}
	return errors.Join(errs...)
}

func main() {
	setup, err := config.Load("setup.ini")
	if err != nil {
		log.Fatal(err)
	}
	profiler.Init(1 << 12)

	w, h := setup.WindowSize()
	cfg := core.Config{
		Title:        setup.Graphics.Title,
		Width:        w,
		Height:       h,
		ScreenWidth:  setup.Graphics.BaseWidth,
		ScreenHeight: setup.Graphics.BaseHeight,
		FPS:          setup.Graphics.FPS,
		VSync:        setup.Graphics.VSync,
		ClearColor:   colors.DarkGray,
	}
	app := &App{setup: setup, quitMsg: "|Thanks for playing!"}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		gw, err := platform.NewGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		win = gw
		if setup.Graphics.Icon != "" {
			if icon, err := assets.LoadPNG("icons", setup.Graphics.Icon); err == nil {
				win.SetIcon(icon)
			} else {
				log.Printf("icon: %v", err)
			}
		}
		return win, nil
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(win, cfg)
		if err != nil {
			return nil, err
		}
		app.driver = r
		return r, nil
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		app.quit(err.Error())
	}

	msg := shutdown.Classify(app.quitMsg, version, "")
	q := shutdown.NewSequencer(nil)
	q.AddFunc("dialogs", app.closeDialogs).
		AddFunc("audio", func() error {
			if app.sound == nil {
				return nil
			}
			return app.sound.Close()
		}).
		AddFunc("fonts", func() error {
			app.font.Close()
			return nil
		}).
		Add("profiler", func(shutdown.Message) error {
			for _, st := range profiler.Summary() {
				log.Printf("profile %s: %d calls, %v total, %v max", st.Name, st.Count, st.Total, st.Max)
			}
			return nil
		}).
		AddFunc("graphics", func() error {
			if win == nil {
				return nil
			}
			return win.Destroy()
		}).
		Add("alert", shutdown.AlertStep(platform.NativeAlerter{}, setup.Graphics.Title)).
		AddFunc("temp files", func() error {
			_, err := shutdown.DeleteTempFiles(setup.Misc.TempDir)
			return err
		})

	if err := q.Run(msg); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if msg.Failed() {
		os.Exit(1)
	}
}
