// Package dialog is the engine's modal dialog system: a fixed set of
// windows and controls, and a frame-synchronous loop that turns input into
// one dialog event per call.
package dialog

import (
	"context"
	"errors"
	"image"
	"log"

	"github.com/hubastard/grove-dialogs/engine/render"
	"github.com/hubastard/grove-dialogs/engine/text"
	"github.com/hubastard/grove-dialogs/engine/ui"
)

const Version = 0x0100

const (
	MaxControls = 20
	MaxWindows  = 5

	NoControl = -1
	NoWindow  = -1
)

// Event codes. Idle iterations produce no event.
const (
	EventCommand   = ui.NotifyCommand
	EventKeyPress  = ui.NotifyKeyPress
	EventSelChange = ui.NotifySelChange
)

// Event is the result of one WaitMessage call.
type Event struct {
	ID     int // control slot, or NoControl
	Code   int
	WParam int // key code for EventKeyPress
}

// FrameClock blocks until the host advances a frame.
type FrameClock interface {
	AwaitNextTick(ctx context.Context) error
}

// InputSource is polled once per frame.
type InputSource interface {
	PollKey() (int, bool)
	PollPressed() bool
	Cursor() (int, int)
}

// Bitmap is a driver-owned image handle.
type Bitmap interface {
	Size() (int, int)
}

// Driver uploads composed dialog images to the graphics backend.
type Driver interface {
	CreateBitmap(fb *render.FrameBuffer) (Bitmap, error)
	UpdateBitmap(b Bitmap, fb *render.FrameBuffer) error
	DrawBitmap(b Bitmap, x, y int)
	DestroyBitmap(b Bitmap)
}

// Clicker gives audible feedback when a command is reported.
type Clicker interface {
	Click()
}

type Options struct {
	Screen *render.FrameBuffer
	Font   *text.Font
	Theme  *ui.Theme
	Scaler Scaler
	Clock  FrameClock
	Input  InputSource
	Driver Driver
	Sound  Clicker // optional
	Logger *log.Logger
}

type windowEntry struct {
	x, y    int
	buffer  *render.FrameBuffer
	prevTop int
}

// Session owns every window and control of the dialog system. It is not
// safe for concurrent use; nested dialogs run on the same goroutine.
type Session struct {
	ui     *ui.Context
	scaler Scaler
	clock  FrameClock
	input  InputSource
	driver Driver
	sound  Clicker
	log    *log.Logger

	controls [MaxControls]ui.Control
	windows  [MaxWindows]windowEntry
	top      int
	geom     image.Rectangle

	pending   int
	pendingID int
	composite *render.FrameBuffer
}

func NewSession(opts Options) (*Session, error) {
	switch {
	case opts.Screen == nil:
		return nil, errors.New("dialog: screen is required")
	case opts.Clock == nil:
		return nil, errors.New("dialog: frame clock is required")
	case opts.Input == nil:
		return nil, errors.New("dialog: input source is required")
	case opts.Driver == nil:
		return nil, errors.New("dialog: driver is required")
	}
	theme := ui.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		ui:     &ui.Context{Screen: opts.Screen, Font: opts.Font, Theme: theme},
		scaler: opts.Scaler,
		clock:  opts.Clock,
		input:  opts.Input,
		driver: opts.Driver,
		sound:  opts.Sound,
		log:    logger,
		top:    NoWindow,
	}, nil
}

func (s *Session) Version() int { return Version }

// TopWindow returns the most recently opened window still open, or NoWindow.
func (s *Session) TopWindow() int { return s.top }

// Geometry is the screen rectangle of the last opened window.
func (s *Session) Geometry() image.Rectangle { return s.geom }

func (s *Session) Scaler() Scaler { return s.scaler }

func (s *Session) fatal(op, msg string, err error) error {
	e := &Error{Op: op, Msg: msg, Handle: -1, Err: err}
	s.log.Printf("[dialog] %s: %s", op, msg)
	return e
}
