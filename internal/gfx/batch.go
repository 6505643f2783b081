package gfx

import "driftfield/internal/field"

// Vertex layouts shared by the GL renderers.
const (
	DotStride  = 7 // x, y, size, r, g, b, a
	FlatStride = 6 // x, y, r, g, b, a
)

// Batch collects one frame of draw calls into vertex buffers. It implements
// field.Surface and field.CardSurface; GL renderers upload it on End.
type Batch struct {
	W, H  int
	Ratio float64
	BG    field.RGB

	Dots  []float32
	Lines []float32
	Cards []float32 // triangles
	Edges []float32 // line segments
}

func (b *Batch) Begin(w, h int, ratio float64) {
	b.W, b.H, b.Ratio = w, h, ratio
	b.Dots = b.Dots[:0]
	b.Lines = b.Lines[:0]
	b.Cards = b.Cards[:0]
	b.Edges = b.Edges[:0]
}

func (b *Batch) Clear(bg field.RGB) { b.BG = bg }

// FillCircle stores the diameter in device pixels.
func (b *Batch) FillCircle(x, y, r float64, c field.RGBA) {
	cr, cg, cb, ca := c.Floats()
	b.Dots = append(b.Dots, float32(x), float32(y), float32(2*r*b.Ratio), cr, cg, cb, ca)
}

func (b *Batch) Line(x0, y0, x1, y1, width float64, c field.RGBA) {
	cr, cg, cb, ca := c.Floats()
	b.Lines = append(b.Lines,
		float32(x0), float32(y0), cr, cg, cb, ca,
		float32(x1), float32(y1), cr, cg, cb, ca,
	)
}

// Card fills the lifted card rect and outlines it.
func (b *Batch) Card(c *field.Card, w, h float64, pal field.Palette) {
	x, y, cw, ch := c.Rect(w, h)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+cw), float32(y+ch)

	fr, fg, fb, fa := pal.CardFill.WithAlpha(0.78).Floats()
	b.Cards = append(b.Cards,
		x0, y0, fr, fg, fb, fa,
		x1, y0, fr, fg, fb, fa,
		x1, y1, fr, fg, fb, fa,
		x0, y0, fr, fg, fb, fa,
		x1, y1, fr, fg, fb, fa,
		x0, y1, fr, fg, fb, fa,
	)

	er, eg, eb, ea := pal.CardEdge.WithAlpha(0.9).Floats()
	corners := [5][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
	for i := 0; i < 4; i++ {
		a, z := corners[i], corners[i+1]
		b.Edges = append(b.Edges,
			a[0], a[1], er, eg, eb, ea,
			z[0], z[1], er, eg, eb, ea,
		)
	}
}

func (b *Batch) End() {}

// FramebufferSize is the backing store size in device pixels.
func (b *Batch) FramebufferSize() (int, int) {
	return int(float64(b.W)*b.Ratio + 0.5), int(float64(b.H)*b.Ratio + 0.5)
}
