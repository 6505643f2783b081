package field

import "math"

// Surface is a 2D drawing target in CSS-pixel coordinates.
type Surface interface {
	// Begin sizes the backing store to w*ratio × h*ratio and scales drawing
	// so coordinates stay in CSS pixels.
	Begin(w, h int, ratio float64)
	Clear(bg RGB)
	FillCircle(x, y, r float64, c RGBA)
	Line(x0, y0, x1, y1, width float64, c RGBA)
	End()
}

// CardSurface is implemented by surfaces that draw depth-tagged cards
// themselves (hosts without a DOM).
type CardSurface interface {
	Card(c *Card, w, h float64, pal Palette)
}

// VisitLinks calls fn for every pair closer than the profile's link distance.
// Compact profiles stride both indices. Pairs whose Manhattan distance exceeds
// the link distance plus the local radius are dropped before the distance test;
// that cull only saves work and never rejects a pair the distance test keeps.
func VisitLinks(ps []Particle, prof Profile, fn func(i, j int, distSq float64)) {
	stride := prof.LinkStride
	if stride < 1 {
		stride = 1
	}
	maxSq := prof.LinkDistSq()
	cull := prof.LinkDist + prof.LocalRadius
	n := len(ps)
	for i := 0; i < n; i += stride {
		a := &ps[i]
		for j := i + stride; j < n; j += stride {
			b := &ps[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			if math.Abs(dx)+math.Abs(dy) > cull {
				continue
			}
			d2 := dx*dx + dy*dy
			if d2 < maxSq {
				fn(i, j, d2)
			}
		}
	}
}

// LinkOpacity fades a link linearly with distance.
func LinkOpacity(distSq float64, prof Profile) float64 {
	return (1 - math.Sqrt(distSq)/prof.LinkDist) * LinkAlpha
}

// DrawParticles fills every particle with its speed-dependent alpha.
func DrawParticles(s Surface, ps []Particle, pal Palette) {
	for i := range ps {
		p := &ps[i]
		s.FillCircle(p.X, p.Y, p.Radius, pal.Particle.WithAlpha(p.Alpha()))
	}
}

// DrawLinks strokes the connective segments and returns how many were drawn.
func DrawLinks(s Surface, ps []Particle, prof Profile, pal Palette) int {
	n := 0
	VisitLinks(ps, prof, func(i, j int, d2 float64) {
		a, b := &ps[i], &ps[j]
		s.Line(a.X, a.Y, b.X, b.Y, LinkWidth, pal.Link.WithAlpha(LinkOpacity(d2, prof)))
		n++
	})
	return n
}
