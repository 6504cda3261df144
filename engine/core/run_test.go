package core

import (
	"context"
	"errors"
	"testing"

	"github.com/hubastard/grove-dialogs/engine/render"
)

type fakeWindow struct {
	polls, swaps int
	closing      bool
	cb           func(Event)
}

func (w *fakeWindow) PollEvents()                      { w.polls++ }
func (w *fakeWindow) SwapBuffers()                     { w.swaps++ }
func (w *fakeWindow) ShouldClose() bool                { return w.closing }
func (w *fakeWindow) RequestClose()                    { w.closing = true }
func (w *fakeWindow) FramebufferSize() (int, int)      { return 640, 400 }
func (w *fakeWindow) SetTitle(string)                  {}
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }

type fakeRenderer struct{ presents int }

func (r *fakeRenderer) Resize(int, int)                          {}
func (r *fakeRenderer) Clear(float32, float32, float32, float32) {}
func (r *fakeRenderer) PresentScreen(*render.FrameBuffer) error  { r.presents++; return nil }
func (r *fakeRenderer) Shutdown()                                {}

type nopApp struct{ events []Event }

func (a *nopApp) OnStart(*Engine)             {}
func (a *nopApp) OnUpdate(*Engine, float64)   {}
func (a *nopApp) OnRender(*Engine, float64)   {}
func (a *nopApp) OnEvent(_ *Engine, ev Event) { a.events = append(a.events, ev) }
func (a *nopApp) OnShutdown(*Engine)          {}

type recordLayer struct {
	attached bool
	consume  bool
	seen     int
}

func (l *recordLayer) OnAttach(*Engine)            { l.attached = true }
func (l *recordLayer) OnDetach(*Engine)            { l.attached = false }
func (l *recordLayer) OnUpdate(*Engine, float64)   {}
func (l *recordLayer) OnRender(*Engine, float64)   {}
func (l *recordLayer) OnEvent(*Engine, Event) bool { l.seen++; return l.consume }

func newTestEngine(app App) (*Engine, *fakeWindow, *fakeRenderer) {
	win := &fakeWindow{}
	rend := &fakeRenderer{}
	e := NewEngine(app, Config{Width: 640, Height: 400, ScreenWidth: 320, ScreenHeight: 200, FPS: 1000}, win, rend)
	win.SetEventCallback(e.dispatch)
	return e, win, rend
}

func TestEngineAwaitNextTickPumpsFrame(t *testing.T) {
	e, win, rend := newTestEngine(&nopApp{})
	if err := e.AwaitNextTick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if win.polls != 1 || win.swaps != 1 || rend.presents != 1 {
		t.Fatalf("expected one poll/present/swap, got %d/%d/%d", win.polls, rend.presents, win.swaps)
	}
	if e.Clock.Frame() != 1 {
		t.Fatalf("expected clock to advance, frame=%d", e.Clock.Frame())
	}
}

func TestEngineAwaitNextTickStopsWhenWindowCloses(t *testing.T) {
	e, win, _ := newTestEngine(&nopApp{})
	win.RequestClose()
	if err := e.AwaitNextTick(context.Background()); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("expected ErrWindowClosed, got %v", err)
	}
}

func TestEngineDispatchFeedsInputAndLayers(t *testing.T) {
	app := &nopApp{}
	e, win, _ := newTestEngine(app)
	bottom := &recordLayer{}
	top := &recordLayer{consume: true}
	e.Layers.Push(e, bottom)
	e.Layers.Push(e, top)
	if !bottom.attached || !top.attached {
		t.Fatalf("layers were not attached")
	}

	win.cb(EventKey{Code: KeyEscape, Down: true})

	if k, ok := e.Input.PollKey(); !ok || k != KeyEscape {
		t.Fatalf("input did not receive key, got %d", k)
	}
	if top.seen != 1 || bottom.seen != 0 {
		t.Fatalf("top layer should consume the event: top=%d bottom=%d", top.seen, bottom.seen)
	}
	if len(app.events) != 1 {
		t.Fatalf("app should still observe the event")
	}
}

func TestEngineResizeUpdatesCursorScale(t *testing.T) {
	e, win, _ := newTestEngine(&nopApp{})
	win.cb(EventResize{W: 640, H: 400})
	win.cb(EventMouseMove{X: 100, Y: 60})
	if x, y := e.Input.Cursor(); x != 50 || y != 30 {
		t.Fatalf("unexpected cursor after resize: %d,%d", x, y)
	}
}
