package field

import "fmt"

type drawOp struct {
	kind string
	x, y float64
	c    RGBA
}

// recordSurface keeps every call so tests can check draw order.
type recordSurface struct {
	ops    []drawOp
	begins int
	w, h   int
	ratio  float64
}

func (r *recordSurface) Begin(w, h int, ratio float64) {
	r.begins++
	r.w, r.h, r.ratio = w, h, ratio
	r.ops = r.ops[:0]
}

func (r *recordSurface) Clear(bg RGB) { r.ops = append(r.ops, drawOp{kind: "clear"}) }

func (r *recordSurface) FillCircle(x, y, rad float64, c RGBA) {
	r.ops = append(r.ops, drawOp{kind: "circle", x: x, y: y, c: c})
}

func (r *recordSurface) Line(x0, y0, x1, y1, width float64, c RGBA) {
	r.ops = append(r.ops, drawOp{kind: "line", x: x0, y: y0, c: c})
}

func (r *recordSurface) End() { r.ops = append(r.ops, drawOp{kind: "end"}) }

func (r *recordSurface) Card(c *Card, w, h float64, pal Palette) {
	r.ops = append(r.ops, drawOp{kind: "card", x: c.LiftX, y: c.LiftY})
}

func (r *recordSurface) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

// fakeHost runs a fixed number of frames at 60 Hz.
type fakeHost struct {
	reduced  bool
	saveData bool
	saveOK   bool
	w, h     int
	ratio    float64
	frames   int

	surface      Surface
	acquireErr   error
	removed      bool
	listened     Listener
	scheduled    bool
	framesCalled int
}

func (f *fakeHost) PrefersReducedMotion() bool { return f.reduced }
func (f *fakeHost) SaveData() (bool, bool)     { return f.saveData, f.saveOK }
func (f *fakeHost) Viewport() (int, int, float64) {
	return f.w, f.h, f.ratio
}

func (f *fakeHost) Acquire() (Surface, error) {
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}
	if f.surface == nil {
		return nil, fmt.Errorf("acquire: %w", ErrNoContext)
	}
	return f.surface, nil
}

func (f *fakeHost) RemoveCanvas()     { f.removed = true }
func (f *fakeHost) Listen(l Listener) { f.listened = l }

func (f *fakeHost) Schedule(frame FrameFunc) {
	f.scheduled = true
	for i := 0; i < f.frames; i++ {
		frame(float64(i) * 1000 / 60)
		f.framesCalled++
	}
}
