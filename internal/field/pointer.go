package field

// Pointer tracks the raw input target and the smoothed position the forces use.
type Pointer struct {
	TargetX, TargetY float64
	X, Y             float64 // smoothed
	Active           bool

	restX, restY float64
}

// TouchPoint is one contact of a touch event.
type TouchPoint struct {
	X, Y float64
}

// SetRest moves the resting point. An inactive pointer retargets to it.
func (p *Pointer) SetRest(x, y float64) {
	p.restX, p.restY = x, y
	if !p.Active {
		p.TargetX, p.TargetY = x, y
	}
}

// Rest returns the resting point.
func (p *Pointer) Rest() (float64, float64) { return p.restX, p.restY }

// Move records a pointer-move.
func (p *Pointer) Move(x, y float64) {
	p.TargetX, p.TargetY = x, y
	p.Active = true
}

// Touch records a touch start or move; only the first point counts.
func (p *Pointer) Touch(points []TouchPoint) {
	if len(points) == 0 {
		return
	}
	p.Move(points[0].X, points[0].Y)
}

// Leave deactivates the pointer and snaps the target back to rest.
func (p *Pointer) Leave() {
	p.Active = false
	p.TargetX, p.TargetY = p.restX, p.restY
}

// TouchEnd is Leave for touch input.
func (p *Pointer) TouchEnd() { p.Leave() }

// Smooth advances the first-order low-pass one frame.
func (p *Pointer) Smooth() {
	p.X += (p.TargetX - p.X) * PointerSmoothing
	p.Y += (p.TargetY - p.Y) * PointerSmoothing
}

// Snap puts the smoothed position on the target.
func (p *Pointer) Snap() {
	p.X, p.Y = p.TargetX, p.TargetY
}
