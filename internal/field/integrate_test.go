package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapEdges(t *testing.T) {
	f := Forces{W: 200, H: 100, Profile: NormalProfile}
	tests := []struct {
		name         string
		x, y, vx, vy float64
		wantX, wantY float64
	}{
		{"right", 199.99, 50, 1, 0, 0, 50},
		{"left", 0.01, 50, -1, 0, 200, 50},
		{"bottom", 100, 99.99, 0, 1, 100, 0},
		{"top", 100, 0.01, 0, -1, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{X: tt.x, Y: tt.y, VX: tt.vx / NormalProfile.Damping, VY: tt.vy / NormalProfile.Damping}
			f.advance(&p, 0, 0)
			assert.InDelta(t, tt.wantX, p.X, 1e-9)
			assert.InDelta(t, tt.wantY, p.Y, 1e-9)
		})
	}
}

func TestPositionsStayInBounds(t *testing.T) {
	sim := NewSim(Flags{}, NewRand(99))
	sim.Resize(900, 700, 1)
	sim.PointerMove(450, 350)
	for i := 0; i < 600; i++ {
		if i%50 == 0 {
			sim.PointerMove(float64(i%900), float64((i*7)%700))
		}
		sim.Step(float64(i) * 16.7)
		for _, p := range sim.Store.P {
			require.True(t, p.X >= 0 && p.X <= 900, "x out of bounds: %v", p.X)
			require.True(t, p.Y >= 0 && p.Y <= 700, "y out of bounds: %v", p.Y)
		}
	}
}

func TestDampingWithoutForces(t *testing.T) {
	for _, prof := range []Profile{NormalProfile, CompactProfile} {
		f := Forces{W: 1e6, H: 1e6, Profile: prof}
		p := Particle{X: 5e5, Y: 5e5, VX: 2, VY: -1.5}
		prev := math.Hypot(p.VX, p.VY)
		for i := 0; i < 200; i++ {
			f.advance(&p, 0, 0)
			cur := math.Hypot(p.VX, p.VY)
			require.Less(t, cur, prev)
			assert.InDelta(t, prev*prof.Damping, cur, 1e-12)
			require.Greater(t, p.VX, 0.0)
			require.Less(t, p.VY, 0.0)
			prev = cur
		}
	}
}

func TestRepel(t *testing.T) {
	f := Forces{Profile: NormalProfile}
	assert.Equal(t, 0.0, f.Repel(DistanceOffset), "inactive pointer never repels")

	f.Active = true
	assert.Equal(t, NormalProfile.RepelCap, f.Repel(DistanceOffset))
	assert.InDelta(t, 1e6/(5000.0*5000.0), f.Repel(5000), 1e-12)

	f.Profile = CompactProfile
	assert.Equal(t, CompactProfile.RepelCap, f.Repel(DistanceOffset))
}

func TestApplyPushesAwayFromPointer(t *testing.T) {
	// At the attraction centre with drift phased to zero on x, only the
	// pointer acts on x.
	f := Forces{W: 1000, H: 1000, PointerX: 450, PointerY: 560, Active: true, Profile: NormalProfile}
	p := Particle{X: 500, Y: 560, Phase: math.Pi, Speed: SpeedMin}
	f.Apply(&p)

	dist := 50.0 + DistanceOffset
	want := (50 / dist * NormalProfile.RepelCap) * NormalProfile.Damping
	assert.InDelta(t, want, p.VX, 1e-6)
	assert.Greater(t, p.X, 500.0)
}

func TestCenterSpring(t *testing.T) {
	f := Forces{W: 1000, H: 1000, Profile: NormalProfile}
	p := Particle{X: 100, Y: 900, Phase: math.Pi / 2, Speed: 0}
	f.Apply(&p)

	// sin(pi/2)=1 drift on x, cos(pi/2)=0 drift on y.
	wantVX := ((500-100)*CenterPullX + NormalProfile.DriftScale) * NormalProfile.Damping
	wantVY := ((560 - 900) * CenterPullY) * NormalProfile.Damping
	assert.InDelta(t, wantVX, p.VX, 1e-9)
	assert.InDelta(t, wantVY, p.VY, 1e-9)
}

func TestMeanSpeed(t *testing.T) {
	assert.Equal(t, 0.0, MeanSpeed(nil))
	ps := []Particle{{VX: 3, VY: 4}, {VX: 0, VY: 1}}
	assert.InDelta(t, 3.0, MeanSpeed(ps), 1e-12)
}
