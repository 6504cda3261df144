package dialog

// Scaler maps design coordinates to screen pixels. Multiplier is the
// resolution factor of the running screen over the game's design size;
// BaseWidth picks the legacy per-resolution correction.
type Scaler struct {
	BaseWidth  int
	Multiplier int
}

// NewScaler returns the scaler for a game running at baseWidth pixels wide,
// with dialogs laid out in 320x200 design space.
func NewScaler(baseWidth int) Scaler {
	m := 1
	if baseWidth >= 640 {
		m = 2
	}
	return Scaler{BaseWidth: baseWidth, Multiplier: m}
}

func (s Scaler) Scale(v int) int {
	if s.Multiplier <= 1 {
		return v
	}
	return v * s.Multiplier
}

// ScaleRect scales four coordinates. The integer order (scale, multiply,
// divide) is part of the contract: changing it shifts layouts by a pixel.
func (s Scaler) ScaleRect(x1, y1, x2, y2 int) (int, int, int, int) {
	x1, y1 = s.Scale(x1), s.Scale(y1)
	x2, y2 = s.Scale(x2), s.Scale(y2)

	switch s.BaseWidth {
	case 400, 800:
		x1 = x1 * 5 / 4
		x2 = x2 * 5 / 4
		y1 = y1 * 3 / 2
		y2 = y2 * 3 / 2
	case 1024:
		x1 = x1 * 16 / 10
		x2 = x2 * 16 / 10
		y1 = y1 * 384 / 200
		y2 = y2 * 384 / 200
	}
	return x1, y1, x2, y2
}
