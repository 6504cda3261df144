package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FrameBuffer is a software RGBA surface. The engine screen, window
// snapshots and dialog composition buffers are all FrameBuffers.
type FrameBuffer struct {
	W   int
	H   int
	Img *image.RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (fb *FrameBuffer) Bounds() image.Rectangle { return fb.Img.Rect }

// Pixels returns the tightly packed RGBA rows (stride == 4*W).
func (fb *FrameBuffer) Pixels() []uint8 { return fb.Img.Pix }

func (fb *FrameBuffer) At(x, y int) color.RGBA { return fb.Img.RGBAAt(x, y) }

func (fb *FrameBuffer) Clear(c color.RGBA) {
	draw.Draw(fb.Img, fb.Img.Rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.Img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(fb.Img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// Snapshot copies r into a new buffer of r's size. Parts of r outside the
// surface are left transparent.
func (fb *FrameBuffer) Snapshot(r image.Rectangle) *FrameBuffer {
	out := NewFrameBuffer(r.Dx(), r.Dy())
	fb.CopyTo(out, r)
	return out
}

// CopyTo copies region r of fb to the origin of dst.
func (fb *FrameBuffer) CopyTo(dst *FrameBuffer, r image.Rectangle) {
	src := r.Intersect(fb.Img.Rect)
	if src.Empty() {
		return
	}
	draw.Copy(dst.Img, src.Min.Sub(r.Min), fb.Img, src, draw.Src, nil)
}

// Blit draws src with its top-left corner at (x, y).
func (fb *FrameBuffer) Blit(src *FrameBuffer, x, y int) {
	dr := image.Rect(x, y, x+src.W, y+src.H)
	clipped := dr.Intersect(fb.Img.Rect)
	if clipped.Empty() {
		return
	}
	draw.Draw(fb.Img, clipped, src.Img, clipped.Min.Sub(dr.Min), draw.Src)
}
