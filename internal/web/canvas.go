package web

import (
	"math"

	"driftfield/internal/field"
)

// jsObject is the part of a JS object the canvas surface uses.
type jsObject interface {
	Call(method string, args ...any)
	Set(prop string, v any)
}

// canvas2D draws on a CanvasRenderingContext2D with the backing store sized
// to the device pixel ratio and a matching transform.
type canvas2D struct {
	el, style, ctx jsObject
	bw, bh         int
	w, h           float64
}

func (c *canvas2D) Begin(w, h int, ratio float64) {
	bw, bh := int(math.Round(float64(w)*ratio)), int(math.Round(float64(h)*ratio))
	if bw != c.bw || bh != c.bh {
		c.el.Set("width", bw)
		c.el.Set("height", bh)
		c.style.Set("width", px(float64(w)))
		c.style.Set("height", px(float64(h)))
		c.bw, c.bh = bw, bh
	}
	c.w, c.h = float64(w), float64(h)
	c.ctx.Call("setTransform", ratio, 0, 0, ratio, 0, 0)
}

// Clear leaves the canvas transparent; the page's own background shows
// through, so the palette background is not painted.
func (c *canvas2D) Clear(field.RGB) {
	c.ctx.Call("clearRect", 0, 0, c.w, c.h)
}

func (c *canvas2D) FillCircle(x, y, r float64, col field.RGBA) {
	c.ctx.Set("fillStyle", rgba(col))
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	c.ctx.Call("fill")
}

func (c *canvas2D) Line(x0, y0, x1, y1, width float64, col field.RGBA) {
	c.ctx.Set("strokeStyle", rgba(col))
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}

func (c *canvas2D) End() {}
