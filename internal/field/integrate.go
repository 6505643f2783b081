package field

import "math"

// Forces is the per-frame input of the integrator.
type Forces struct {
	W, H     float64
	NowMS    float64 // monotonic milliseconds
	PointerX float64 // smoothed
	PointerY float64
	Active   bool
	Profile  Profile
}

// Repel is the pointer repulsion magnitude at a distance that already
// includes DistanceOffset.
func (f *Forces) Repel(dist float64) float64 {
	if !f.Active {
		return 0
	}
	return math.Min(RepelStrength/(dist*dist), f.Profile.RepelCap)
}

// Apply advances one particle by one frame.
func (f *Forces) Apply(p *Particle) {
	rx := p.X - f.PointerX
	ry := p.Y - f.PointerY
	dist := math.Hypot(rx, ry) + DistanceOffset
	repel := f.Repel(dist)

	ax := rx / dist * repel
	ay := ry / dist * repel

	// Center spring, asymmetric per axis.
	ax += (f.W*CenterX - p.X) * CenterPullX
	ay += (f.H*CenterY - p.Y) * CenterPullY

	// Drift.
	t := f.NowMS * p.Speed
	ax += math.Sin(t+p.Phase) * f.Profile.DriftScale
	ay += math.Cos(t*DriftYRatio+p.Phase) * f.Profile.DriftScale

	f.advance(p, ax, ay)
}

// advance applies acceleration, damping, integration and the toroidal wrap.
func (f *Forces) advance(p *Particle, ax, ay float64) {
	p.VX = (p.VX + ax) * f.Profile.Damping
	p.VY = (p.VY + ay) * f.Profile.Damping

	p.X = wrap(p.X+p.VX, f.W)
	p.Y = wrap(p.Y+p.VY, f.H)
}

// Integrate advances every particle by one frame.
func (f *Forces) Integrate(ps []Particle) {
	for i := range ps {
		f.Apply(&ps[i])
	}
}

// MeanSpeed is the average velocity magnitude across ps.
func MeanSpeed(ps []Particle) float64 {
	if len(ps) == 0 {
		return 0
	}
	sum := 0.0
	for i := range ps {
		sum += math.Hypot(ps[i].VX, ps[i].VY)
	}
	return sum / float64(len(ps))
}
