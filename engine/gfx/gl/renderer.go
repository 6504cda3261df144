package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/grove-dialogs/engine/core"
	"github.com/hubastard/grove-dialogs/engine/render"
)

// RendererGL presents the software screen as one texture and draws dialog
// bitmaps over it. It implements core.Renderer and dialog.Driver.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	uRect   int32

	screen   *Texture
	overlays []overlay
	fbW, fbH int
}

type overlay struct {
	tex  *Texture
	x, y int
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	r.fbW, r.fbH = win.FramebufferSize()
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.uRect = gl.GetUniformLocation(r.program, gl.Str("uRect\x00"))
	gl.UseProgram(r.program)
	gl.Uniform1i(gl.GetUniformLocation(r.program, gl.Str("uTex\x00")), 0)
	gl.UseProgram(0)

	// Unit quad as a triangle strip: pos (x,y), uv (u,v). Rows are uploaded
	// top first, so v grows downwards.
	verts := []float32{
		0, 0, 0, 0,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 1, 1, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	for _, o := range r.overlays {
		o.tex.release()
	}
	r.overlays = nil
	if r.screen != nil {
		r.screen.release()
		r.screen = nil
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.fbW, r.fbH = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// PresentScreen uploads the screen and stretches it over the framebuffer,
// then draws the bitmaps queued since the last present.
func (r *RendererGL) PresentScreen(screen *render.FrameBuffer) error {
	if r.screen == nil || r.screen.w != screen.W || r.screen.h != screen.H {
		if r.screen != nil {
			r.screen.release()
		}
		tex, err := newTexture(screen)
		if err != nil {
			return fmt.Errorf("gl: screen texture: %w", err)
		}
		r.screen = tex
	} else {
		r.screen.upload(screen)
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	r.drawQuad(r.screen, -1, -1, 2, 2)

	sx := 2 / float32(screen.W)
	sy := 2 / float32(screen.H)
	for _, o := range r.overlays {
		// screen pixels to clip space, y flipped
		x := float32(o.x)*sx - 1
		y := 1 - float32(o.y+o.tex.h)*sy
		r.drawQuad(o.tex, x, y, float32(o.tex.w)*sx, float32(o.tex.h)*sy)
	}
	r.overlays = r.overlays[:0]

	gl.BindVertexArray(0)
	gl.UseProgram(0)
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl: present: error 0x%x", e)
	}
	return nil
}

// drawQuad draws tex into the clip-space rectangle (x, y, w, h); y is the
// bottom edge.
func (r *RendererGL) drawQuad(tex *Texture, x, y, w, h float32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.Uniform4f(r.uRect, x, y, w, h)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}
