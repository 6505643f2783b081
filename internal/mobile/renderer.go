//go:build android

package mobile

import (
	"fmt"

	"golang.org/x/mobile/gl"

	"driftfield/internal/gfx"
)

const dotVertSrc = `#version 100
attribute vec2 aPos;
attribute float aSize;
attribute vec4 aColor;
uniform vec2 uResolution;
varying vec4 vColor;
void main() {
	vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
	gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
	gl_PointSize = max(1.0, aSize);
	vColor = aColor;
}`

const dotFragSrc = `#version 100
precision mediump float;
varying vec4 vColor;
void main() {
	float d = length(gl_PointCoord - vec2(0.5)) * 2.0;
	if (d > 1.0) discard;
	gl_FragColor = vec4(vColor.rgb, vColor.a * smoothstep(1.0, 0.8, d));
}`

const flatVertSrc = `#version 100
attribute vec2 aPos;
attribute vec4 aColor;
uniform vec2 uResolution;
varying vec4 vColor;
void main() {
	vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
	gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
	vColor = aColor;
}`

const flatFragSrc = `#version 100
precision mediump float;
varying vec4 vColor;
void main() {
	gl_FragColor = vColor;
}`

// renderer is a gfx.Batch drawn with GLES2. It survives context loss: init
// and release follow the visible lifecycle stage.
type renderer struct {
	gfx.Batch

	glctx gl.Context
	fbW   int
	fbH   int
	buf   []byte

	dotProg  gl.Program
	dotPos   gl.Attrib
	dotSize  gl.Attrib
	dotColor gl.Attrib
	dotRes   gl.Uniform

	flatProg  gl.Program
	flatPos   gl.Attrib
	flatColor gl.Attrib
	flatRes   gl.Uniform

	vbo gl.Buffer
}

func (r *renderer) init(glctx gl.Context) error {
	dot, err := linkProgram(glctx, dotVertSrc, dotFragSrc)
	if err != nil {
		return fmt.Errorf("dot program: %w", err)
	}
	flat, err := linkProgram(glctx, flatVertSrc, flatFragSrc)
	if err != nil {
		glctx.DeleteProgram(dot)
		return fmt.Errorf("flat program: %w", err)
	}
	r.glctx = glctx
	r.dotProg, r.flatProg = dot, flat
	r.dotPos = glctx.GetAttribLocation(dot, "aPos")
	r.dotSize = glctx.GetAttribLocation(dot, "aSize")
	r.dotColor = glctx.GetAttribLocation(dot, "aColor")
	r.dotRes = glctx.GetUniformLocation(dot, "uResolution")
	r.flatPos = glctx.GetAttribLocation(flat, "aPos")
	r.flatColor = glctx.GetAttribLocation(flat, "aColor")
	r.flatRes = glctx.GetUniformLocation(flat, "uResolution")
	r.vbo = glctx.CreateBuffer()
	return nil
}

func (r *renderer) release() {
	if r.glctx == nil {
		return
	}
	r.glctx.DeleteBuffer(r.vbo)
	r.glctx.DeleteProgram(r.dotProg)
	r.glctx.DeleteProgram(r.flatProg)
	r.glctx = nil
}

// End draws the batch; frames arriving without a context are dropped.
func (r *renderer) End() {
	glctx := r.glctx
	if glctx == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	fbW, fbH := r.fbW, r.fbH
	if fbW <= 0 || fbH <= 0 {
		fbW, fbH = r.FramebufferSize()
	}
	glctx.Viewport(0, 0, fbW, fbH)
	cr, cg, cb, _ := r.BG.WithAlpha(1).Floats()
	glctx.ClearColor(cr, cg, cb, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)
	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	glctx.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	w, h := float32(r.W), float32(r.H)
	if n := len(r.Dots) / gfx.DotStride; n > 0 {
		const stride = gfx.DotStride * 4
		glctx.UseProgram(r.dotProg)
		glctx.Uniform2f(r.dotRes, w, h)
		r.buf = gfx.F32Bytes(r.buf, r.Dots)
		glctx.BufferData(gl.ARRAY_BUFFER, r.buf, gl.STREAM_DRAW)
		glctx.EnableVertexAttribArray(r.dotPos)
		glctx.EnableVertexAttribArray(r.dotSize)
		glctx.EnableVertexAttribArray(r.dotColor)
		glctx.VertexAttribPointer(r.dotPos, 2, gl.FLOAT, false, stride, 0)
		glctx.VertexAttribPointer(r.dotSize, 1, gl.FLOAT, false, stride, 8)
		glctx.VertexAttribPointer(r.dotColor, 4, gl.FLOAT, false, stride, 12)
		glctx.DrawArrays(gl.POINTS, 0, n)
		glctx.DisableVertexAttribArray(r.dotPos)
		glctx.DisableVertexAttribArray(r.dotSize)
		glctx.DisableVertexAttribArray(r.dotColor)
	}

	glctx.UseProgram(r.flatProg)
	glctx.Uniform2f(r.flatRes, w, h)
	glctx.EnableVertexAttribArray(r.flatPos)
	glctx.EnableVertexAttribArray(r.flatColor)
	r.drawFlat(r.Lines, gl.LINES)
	r.drawFlat(r.Cards, gl.TRIANGLES)
	r.drawFlat(r.Edges, gl.LINES)
	glctx.DisableVertexAttribArray(r.flatPos)
	glctx.DisableVertexAttribArray(r.flatColor)
	glctx.Disable(gl.BLEND)
}

func (r *renderer) drawFlat(verts []float32, mode gl.Enum) {
	n := len(verts) / gfx.FlatStride
	if n == 0 {
		return
	}
	const stride = gfx.FlatStride * 4
	r.buf = gfx.F32Bytes(r.buf, verts)
	r.glctx.BufferData(gl.ARRAY_BUFFER, r.buf, gl.STREAM_DRAW)
	r.glctx.VertexAttribPointer(r.flatPos, 2, gl.FLOAT, false, stride, 0)
	r.glctx.VertexAttribPointer(r.flatColor, 4, gl.FLOAT, false, stride, 8)
	r.glctx.DrawArrays(mode, 0, n)
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("compile shader: %s", log)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("link program: %s", log)
	}
	return prog, nil
}
