//go:build !android && !js

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"driftfield/internal/field"
	"driftfield/internal/gfx"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a Batch with two programs: point-sprite dots and flat
// coloured geometry for links and cards.
type Renderer struct {
	gfx.Batch

	dotProg uint32
	dotVAO  uint32
	dotVBO  uint32
	dotURes int32

	flatProg uint32
	flatVAO  uint32
	flatVBO  uint32
	flatURes int32

	// Framebuffer size as reported by GLFW; wins over the computed size.
	fbW, fbH int
}

func NewRenderer() (*Renderer, error) {
	dotProg, err := linkProgram(dotVertSrc, dotFragSrc)
	if err != nil {
		return nil, fmt.Errorf("dot program: %w", err)
	}
	flatProg, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		gl.DeleteProgram(dotProg)
		return nil, fmt.Errorf("flat program: %w", err)
	}
	r := &Renderer{dotProg: dotProg, flatProg: flatProg}

	// Dots: 7 floats (x, y, size, r, g, b, a).
	gl.GenVertexArrays(1, &r.dotVAO)
	gl.GenBuffers(1, &r.dotVBO)
	gl.BindVertexArray(r.dotVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dotVBO)
	stride := int32(gfx.DotStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, field.MaxParticles*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	// Flat: 6 floats (x, y, r, g, b, a).
	gl.GenVertexArrays(1, &r.flatVAO)
	gl.GenBuffers(1, &r.flatVBO)
	gl.BindVertexArray(r.flatVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.flatVBO)
	stride = int32(gfx.FlatStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	gl.UseProgram(dotProg)
	r.dotURes = gl.GetUniformLocation(dotProg, gl.Str("uResolution\x00"))
	gl.UseProgram(flatProg)
	r.flatURes = gl.GetUniformLocation(flatProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.dotVBO, r.flatVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.dotVAO, r.flatVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.dotProg, r.flatProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// SetFramebuffer records the real backing store size.
func (r *Renderer) SetFramebuffer(w, h int) { r.fbW, r.fbH = w, h }

// End uploads and draws the frame in call order: dots, links, cards.
func (r *Renderer) End() {
	fbW, fbH := r.fbW, r.fbH
	if fbW <= 0 || fbH <= 0 {
		fbW, fbH = r.FramebufferSize()
	}
	if fbW <= 0 || fbH <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := r.BG.WithAlpha(1)
	cr, cg, cb, _ := bg.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w, h := float32(r.W), float32(r.H)
	if n := len(r.Dots) / gfx.DotStride; n > 0 {
		gl.UseProgram(r.dotProg)
		gl.Uniform2f(r.dotURes, w, h)
		gl.BindVertexArray(r.dotVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.dotVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.Dots)*4, gl.Ptr(&r.Dots[0]))
		gl.DrawArrays(gl.POINTS, 0, int32(n))
	}

	gl.UseProgram(r.flatProg)
	gl.Uniform2f(r.flatURes, w, h)
	gl.BindVertexArray(r.flatVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.flatVBO)
	r.drawFlat(r.Lines, gl.LINES)
	r.drawFlat(r.Cards, gl.TRIANGLES)
	r.drawFlat(r.Edges, gl.LINES)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawFlat(buf []float32, mode uint32) {
	n := len(buf) / gfx.FlatStride
	if n == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(&buf[0]), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(n))
}
