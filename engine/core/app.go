package core

import (
	"time"

	"github.com/hubastard/grove-dialogs/engine/colors"
	"github.com/hubastard/grove-dialogs/engine/render"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Clock    *Clock
	Layers   LayerStack
	Screen   *render.FrameBuffer

	app   App
	cfg   Config
	start time.Time
	next  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer abstraction. The engine draws into a software screen and the
// renderer presents it scaled to the framebuffer.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	PresentScreen(screen *render.FrameBuffer) error
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventKey carries a legacy key code (see Key*). Printable input arrives as
// EventChar instead.
type EventKey struct {
	Code int
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventChar struct{ Rune rune }

func (EventChar) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button int
	Down   bool
}

func (EventMouseButton) isEvent() {}

// Legacy key codes. Control keys use their ASCII value, extended keys are
// the keyboard scan code plus 300.
const (
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyEscape    = 27
	KeySpace     = 32

	KeyF1       = 359
	KeyF9       = 367
	KeyF10      = 368
	KeyHome     = 371
	KeyUp       = 372
	KeyPageUp   = 373
	KeyLeft     = 375
	KeyRight    = 377
	KeyEnd      = 379
	KeyDown     = 380
	KeyPageDown = 381
	KeyInsert   = 382
	KeyDelete   = 383
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title        string
	Width        int
	Height       int
	ScreenWidth  int // software screen size in pixels
	ScreenHeight int
	FPS          int
	VSync        bool
	ClearColor   colors.Color
}
