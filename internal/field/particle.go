package field

import "math"

// Particle is one point of the field. Radius, Phase and Speed are fixed at
// creation; position and velocity change every frame.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Radius float64
	Phase  float64 // radians, offsets the drift oscillation
	Speed  float64 // drift frequency multiplier
}

// Alpha is the fill opacity: faster particles render more opaque.
func (p *Particle) Alpha() float64 {
	v := math.Hypot(p.VX, p.VY)
	return math.Min(1, AlphaBase+math.Min(1, v*AlphaSpeedGain))
}

// Store holds the live particles. Order carries no meaning.
type Store struct {
	P   []Particle
	src Source
}

func NewStore(src Source) *Store {
	if src == nil {
		src = NewRand(1)
	}
	return &Store{
		P:   make([]Particle, 0, MaxParticles),
		src: src,
	}
}

func (s *Store) Len() int { return len(s.P) }

// Fit grows or shrinks the store to n particles in one call. New particles are
// scattered across a w×h viewport.
func (s *Store) Fit(n int, w, h float64, prof Profile) {
	if n < 0 {
		n = 0
	}
	if len(s.P) > n {
		s.P = s.P[:n]
		return
	}
	for len(s.P) < n {
		s.P = append(s.P, s.spawn(w, h, prof))
	}
}

func (s *Store) spawn(w, h float64, prof Profile) Particle {
	half := prof.VelocitySpan / 2
	return Particle{
		X:      rangeF(s.src, 0, w),
		Y:      rangeF(s.src, 0, h),
		VX:     rangeF(s.src, -half, half),
		VY:     rangeF(s.src, -half, half),
		Radius: rangeF(s.src, RadiusMin, RadiusMax),
		Phase:  rangeF(s.src, 0, 2*math.Pi),
		Speed:  rangeF(s.src, SpeedMin, SpeedMax),
	}
}
