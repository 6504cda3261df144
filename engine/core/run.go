package core

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/hubastard/grove-dialogs/engine/render"
)

var ErrWindowClosed = errors.New("core: window closed")

func NewEngine(app App, cfg Config, win Window, rend Renderer) *Engine {
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		cfg.ScreenWidth, cfg.ScreenHeight = cfg.Width, cfg.Height
	}
	e := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Clock:    NewClock(),
		Screen:   render.NewFrameBuffer(cfg.ScreenWidth, cfg.ScreenHeight),
		app:      app,
		cfg:      cfg,
		start:    time.Now(),
	}
	e.next = e.start.Add(e.tick())
	return e
}

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	eng := NewEngine(app, cfg, win, rend)
	win.SetEventCallback(eng.dispatch)
	eng.resize(win.FramebufferSize())

	app.OnStart(eng)

	// Fixed-timestep with interpolation
	tick := eng.tick()
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			eng.Clock.Tick()
			accum -= tick
			steps++
		}
		// OnUpdate may have run a nested frame pump; don't replay its time.
		prev = time.Now()

		if err := eng.present(float64(accum) / float64(tick)); err != nil {
			log.Printf("present: %v", err)
		}
	}

	for l, ok := eng.Layers.Pop(); ok; l, ok = eng.Layers.Pop() {
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}

// AwaitNextTick pumps one frame from inside a blocking call (a modal dialog
// running in OnUpdate): poll events, present, then wait for the next tick
// boundary and advance the clock.
func (e *Engine) AwaitNextTick(ctx context.Context) error {
	e.Window.PollEvents()
	if e.Window.ShouldClose() {
		return ErrWindowClosed
	}
	if err := e.present(1); err != nil {
		return err
	}

	if wait := time.Until(e.next); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
	e.next = time.Now().Add(e.tick())
	e.Clock.Tick()
	return nil
}

func (e *Engine) present(alpha float64) error {
	c := e.cfg.ClearColor
	e.Renderer.Clear(c[0], c[1], c[2], c[3])
	e.app.OnRender(e, alpha)
	e.Layers.ForEach(func(l Layer) { l.OnRender(e, alpha) })
	if err := e.Renderer.PresentScreen(e.Screen); err != nil {
		return err
	}
	e.Window.SwapBuffers()
	return nil
}

func (e *Engine) dispatch(ev Event) {
	e.Input.Handle(ev)
	if r, ok := ev.(EventResize); ok {
		e.resize(r.W, r.H)
	}
	e.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })
	e.app.OnEvent(e, ev)
}

func (e *Engine) resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	e.Renderer.Resize(w, h)
	e.Input.SetCursorScale(float64(w) / float64(e.Screen.W))
}

func (e *Engine) tick() time.Duration {
	fps := e.cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
