package glbackend

import (
	"errors"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/grove-dialogs/engine/dialog"
	"github.com/hubastard/grove-dialogs/engine/render"
)

var errForeignBitmap = errors.New("gl: bitmap was not created by this renderer")

// Texture is an RGBA8 texture sized to the frame buffer it was made from.
type Texture struct {
	id   uint32
	w, h int
}

func (t *Texture) Size() (int, int) { return t.w, t.h }

func newTexture(fb *render.FrameBuffer) (*Texture, error) {
	t := &Texture{w: fb.W, h: fb.H}
	gl.GenTextures(1, &t.id)
	if t.id == 0 {
		return nil, errors.New("gl: glGenTextures failed")
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.w), int32(t.h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pixels()))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (t *Texture) upload(fb *render.FrameBuffer) {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.w), int32(t.h),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pixels()))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Texture) release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// dialog.Driver

func (r *RendererGL) CreateBitmap(fb *render.FrameBuffer) (dialog.Bitmap, error) {
	t, err := newTexture(fb)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *RendererGL) UpdateBitmap(b dialog.Bitmap, fb *render.FrameBuffer) error {
	t, ok := b.(*Texture)
	if !ok {
		return errForeignBitmap
	}
	if fb.W != t.w || fb.H != t.h {
		return errors.New("gl: bitmap size changed")
	}
	t.upload(fb)
	return nil
}

// DrawBitmap queues b for the next PresentScreen.
func (r *RendererGL) DrawBitmap(b dialog.Bitmap, x, y int) {
	if t, ok := b.(*Texture); ok {
		r.overlays = append(r.overlays, overlay{tex: t, x: x, y: y})
	}
}

func (r *RendererGL) DestroyBitmap(b dialog.Bitmap) {
	t, ok := b.(*Texture)
	if !ok {
		return
	}
	kept := r.overlays[:0]
	for _, o := range r.overlays {
		if o.tex != t {
			kept = append(kept, o)
		}
	}
	r.overlays = kept
	t.release()
}
