package field

// DepthTarget is a page element whose offset follows the pointer.
type DepthTarget interface {
	Depth() float64
	SetLift(x, y float64)
}

// Parallax writes pointer-driven lift to depth-tagged targets.
type Parallax struct {
	Targets []DepthTarget
}

// Offset normalises a pointer position to [-1, 1] around the viewport centre.
func Offset(px, py, w, h float64) (nx, ny float64) {
	if w > 0 {
		nx = (px - w/2) / (w / 2)
	}
	if h > 0 {
		ny = (py - h/2) / (h / 2)
	}
	return nx, ny
}

// Lift is the translation for a target of the given depth.
func Lift(nx, ny, depth float64, prof Profile) (x, y float64) {
	return nx * depth * prof.ParallaxX, ny * depth * prof.ParallaxY
}

// Apply updates every target from the smoothed pointer.
func (pl *Parallax) Apply(px, py, w, h float64, prof Profile) {
	nx, ny := Offset(px, py, w, h)
	for _, t := range pl.Targets {
		d := t.Depth()
		if !finite(d) {
			continue
		}
		t.SetLift(Lift(nx, ny, d, prof))
	}
}

// Card is a depth-tagged panel for hosts without a DOM. Its rect is in
// viewport fractions.
type Card struct {
	Title      string
	X, Y, W, H float64
	Z          float64

	LiftX, LiftY float64
}

func (c *Card) Depth() float64 { return c.Z }

func (c *Card) SetLift(x, y float64) {
	c.LiftX, c.LiftY = x, y
}

// Rect returns the lifted rectangle in CSS pixels for a w×h viewport.
func (c *Card) Rect(w, h float64) (x, y, cw, ch float64) {
	return c.X*w + c.LiftX, c.Y*h + c.LiftY, c.W * w, c.H * h
}
