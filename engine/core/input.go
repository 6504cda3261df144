package core

import "golang.org/x/text/encoding/charmap"

const keyQueueSize = 32

// Input buffers keyboard codes and pointer state between polls. Key codes
// are queued in arrival order; the pointer reports press edges only once.
type Input struct {
	keys           []int
	mouseX, mouseY float64
	scale          float64
	buttonDown     bool
	pressed        bool
}

func NewInput() *Input { return &Input{keys: make([]int, 0, keyQueueSize), scale: 1} }

// SetCursorScale maps window coordinates to screen pixels.
func (in *Input) SetCursorScale(s float64) {
	if s > 0 {
		in.scale = s
	}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && e.Code > 0 {
			in.PushKey(e.Code)
		}
	case EventChar:
		// Dialog text is Windows-1252; runes outside it are dropped.
		if b, ok := charmap.Windows1252.EncodeRune(e.Rune); ok && b >= KeySpace {
			in.PushKey(int(b))
		}
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if e.Button != 0 {
			return
		}
		if e.Down && !in.buttonDown {
			in.pressed = true
		}
		in.buttonDown = e.Down
	}
}

func (in *Input) PushKey(code int) {
	if len(in.keys) >= keyQueueSize {
		return
	}
	in.keys = append(in.keys, code)
}

// PollKey pops the oldest pending key code.
func (in *Input) PollKey() (int, bool) {
	if len(in.keys) == 0 {
		return 0, false
	}
	k := in.keys[0]
	copy(in.keys, in.keys[1:])
	in.keys = in.keys[:len(in.keys)-1]
	return k, true
}

// PollPressed reports whether the primary button went down since the last poll.
func (in *Input) PollPressed() bool {
	p := in.pressed
	in.pressed = false
	return p
}

func (in *Input) Cursor() (int, int) {
	return int(in.mouseX / in.scale), int(in.mouseY / in.scale)
}

func (in *Input) ButtonDown() bool { return in.buttonDown }
