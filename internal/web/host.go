//go:build js && wasm

package web

import (
	"syscall/js"

	"go.uber.org/zap"

	"driftfield/internal/field"
)

// Host binds the field to a page: a <canvas> for drawing, window events for
// input and [data-depth] elements for parallax.
type Host struct {
	log    *zap.Logger
	win    js.Value
	doc    js.Value
	canvas js.Value
	funcs  []js.Func
}

// NewHost looks up the canvas by id. A missing canvas is reported by Acquire.
func NewHost(canvasID string, log *zap.Logger) *Host {
	win := js.Global()
	doc := win.Get("document")
	return &Host{
		log:    log,
		win:    win,
		doc:    doc,
		canvas: doc.Call("getElementById", canvasID),
	}
}

func present(v js.Value) bool { return !v.IsUndefined() && !v.IsNull() }

func (h *Host) PrefersReducedMotion() bool {
	if !present(h.win.Get("matchMedia")) {
		return false
	}
	mq := h.win.Call("matchMedia", "(prefers-reduced-motion: reduce)")
	return present(mq) && mq.Get("matches").Truthy()
}

// SaveData reports navigator.connection.saveData; ok is false when the
// browser does not expose it.
func (h *Host) SaveData() (bool, bool) {
	conn := h.win.Get("navigator").Get("connection")
	if !present(conn) {
		return false, false
	}
	sd := conn.Get("saveData")
	if sd.Type() != js.TypeBoolean {
		return false, false
	}
	return sd.Bool(), true
}

func (h *Host) Viewport() (int, int, float64) {
	ratio := 1.0
	if dpr := h.win.Get("devicePixelRatio"); dpr.Type() == js.TypeNumber {
		ratio = dpr.Float()
	}
	return h.win.Get("innerWidth").Int(), h.win.Get("innerHeight").Int(), ratio
}

// Theme is the page's data-theme attribute, or "" when unset.
func (h *Host) Theme() string {
	t := h.doc.Get("documentElement").Call("getAttribute", "data-theme")
	if !present(t) {
		return ""
	}
	return t.String()
}

func (h *Host) Acquire() (field.Surface, error) {
	if !present(h.canvas) {
		h.log.Debug("canvas element missing")
		return nil, field.ErrNoContext
	}
	ctx := h.canvas.Call("getContext", "2d")
	if !present(ctx) {
		h.log.Debug("2d context unavailable")
		return nil, field.ErrNoContext
	}
	return &canvas2D{
		el:    object{h.canvas},
		style: object{h.canvas.Get("style")},
		ctx:   object{ctx},
	}, nil
}

func (h *Host) RemoveCanvas() {
	if present(h.canvas) {
		h.canvas.Call("remove")
	}
}

// DepthTargets collects every [data-depth] element on the page.
func (h *Host) DepthTargets() []field.DepthTarget {
	nodes := h.doc.Call("querySelectorAll", "[data-depth]")
	n := nodes.Length()
	out := make([]field.DepthTarget, 0, n)
	for i := 0; i < n; i++ {
		el := nodes.Index(i)
		out = append(out, &depthElem{el: el, depth: parseDepth(el.Call("getAttribute", "data-depth").String())})
	}
	return out
}

func (h *Host) on(target js.Value, event string, fn func(e js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	h.funcs = append(h.funcs, f)
	target.Call("addEventListener", event, f, map[string]any{"passive": true})
}

func (h *Host) Listen(l field.Listener) {
	h.on(h.win, "mousemove", func(e js.Value) {
		l.PointerMove(e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	h.on(h.doc, "mouseleave", func(js.Value) { l.PointerLeave() })
	touchMove := func(e js.Value) {
		list := e.Get("touches")
		pts := make([]field.TouchPoint, list.Length())
		for i := range pts {
			t := list.Index(i)
			pts[i] = field.TouchPoint{X: t.Get("clientX").Float(), Y: t.Get("clientY").Float()}
		}
		l.TouchMove(pts)
	}
	h.on(h.win, "touchstart", touchMove)
	h.on(h.win, "touchmove", touchMove)
	h.on(h.win, "touchend", func(js.Value) { l.TouchEnd() })
	h.on(h.win, "resize", func(js.Value) { l.Resize(h.Viewport()) })
}

// OnUnload runs fn when the page is being torn down.
func (h *Host) OnUnload(fn func()) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	h.funcs = append(h.funcs, f)
	h.win.Call("addEventListener", "beforeunload", f)
}

// Schedule chains requestAnimationFrame and returns immediately.
func (h *Host) Schedule(frame field.FrameFunc) {
	var tick js.Func
	tick = js.FuncOf(func(_ js.Value, args []js.Value) any {
		frame(args[0].Float())
		h.win.Call("requestAnimationFrame", tick)
		return nil
	})
	h.funcs = append(h.funcs, tick)
	h.win.Call("requestAnimationFrame", tick)
}

type depthElem struct {
	el    js.Value
	depth float64
}

func (d *depthElem) Depth() float64 { return d.depth }

func (d *depthElem) SetLift(x, y float64) {
	style := d.el.Get("style")
	style.Call("setProperty", LiftXProp, px(x))
	style.Call("setProperty", LiftYProp, px(y))
}

// object adapts a js.Value to the calls canvas2D makes.
type object struct{ v js.Value }

func (o object) Call(method string, args ...any) { o.v.Call(method, args...) }
func (o object) Set(prop string, v any)          { o.v.Set(prop, v) }
