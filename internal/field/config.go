package field

import "math"

// Particle count bounds.
const (
	MinParticles = 38
	MaxParticles = 160
)

// Compact-mode thresholds (CSS pixels, inclusive).
const (
	CompactMaxWidth  = 768
	CompactMaxHeight = 620
)

// Particle creation ranges.
const (
	RadiusMin = 0.7
	RadiusMax = 2.5
	SpeedMin  = 0.002
	SpeedMax  = 0.0045
)

// Pointer.
const (
	PointerSmoothing = 0.07
	RestX            = 0.5
	RestY            = 0.6
)

// Forces.
const (
	DistanceOffset = 40.0
	RepelStrength  = 1_000_000.0
	CenterX        = 0.5
	CenterY        = 0.56
	CenterPullX    = 0.00015
	CenterPullY    = 0.00013
	DriftYRatio    = 1.4
)

// Rendering.
const (
	AlphaBase      = 0.35
	AlphaSpeedGain = 7.0
	LinkAlpha      = 0.18
	LinkWidth      = 1.0
)

// Profile is the tuning set selected by compact mode. The values are visual
// tuning, kept literal.
type Profile struct {
	Compact bool

	Density      float64 // viewport area per particle
	VelocitySpan float64 // initial velocity is uniform in ±span/2
	RepelCap     float64
	DriftScale   float64
	Damping      float64
	LinkDist     float64
	LocalRadius  float64 // slack of the Manhattan pre-cull before the distance test
	LinkStride   int
	ParallaxX    float64
	ParallaxY    float64
}

var (
	NormalProfile = Profile{
		Density:      9500,
		VelocitySpan: 0.35,
		RepelCap:     0.15,
		DriftScale:   0.012,
		Damping:      0.98,
		LinkDist:     128,
		LocalRadius:  84,
		LinkStride:   1,
		ParallaxX:    14,
		ParallaxY:    9,
	}
	CompactProfile = Profile{
		Compact:      true,
		Density:      13000,
		VelocitySpan: 0.25,
		RepelCap:     0.12,
		DriftScale:   0.008,
		Damping:      0.985,
		LinkDist:     100,
		LocalRadius:  72,
		LinkStride:   2,
		ParallaxX:    8,
		ParallaxY:    4,
	}
)

// ProfileFor returns the tuning set for the compact flag.
func ProfileFor(compact bool) Profile {
	if compact {
		return CompactProfile
	}
	return NormalProfile
}

// LinkDistSq is the squared link threshold; pairs must be strictly closer.
func (p Profile) LinkDistSq() float64 { return p.LinkDist * p.LinkDist }

// TargetCount is the particle count for a viewport under this profile.
func (p Profile) TargetCount(w, h int) int {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := int(math.Round(float64(w) * float64(h) / p.Density))
	return clamp(n, MinParticles, MaxParticles)
}
