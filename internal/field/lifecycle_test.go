package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDisabledByPreferences(t *testing.T) {
	tests := []struct {
		name   string
		host   *fakeHost
		reason string
	}{
		{"reduced motion", &fakeHost{reduced: true, surface: &recordSurface{}, frames: 3}, "reduced motion"},
		{"data saver", &fakeHost{saveData: true, saveOK: true, surface: &recordSurface{}, frames: 3}, "data saver"},
		{"no context", &fakeHost{frames: 3}, "no drawing context"},
		{"acquire error", &fakeHost{acquireErr: errors.New("webgl lost"), surface: &recordSurface{}, frames: 3}, "no drawing context"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.host.w, tt.host.h, tt.host.ratio = 1000, 800, 1
			var got string
			c := Controller{OnDisabled: func(r string) { got = r }}

			state := c.Start(tt.host)
			assert.Equal(t, StateDisabled, state)
			assert.True(t, tt.host.removed, "canvas must be removed")
			assert.False(t, tt.host.scheduled, "no frame may be scheduled")
			assert.Nil(t, tt.host.listened)
			assert.Nil(t, c.Sim)
			assert.Equal(t, tt.reason, got)
		})
	}
}

func TestStartRunsFrames(t *testing.T) {
	surf := &recordSurface{}
	host := &fakeHost{w: 1000, h: 800, ratio: 2, surface: surf, frames: 10}
	card := &Card{Z: 1.5}
	seen := 0
	c := Controller{
		Source:  NewRand(9),
		Palette: LightPalette,
		Targets: []DepthTarget{card},
		OnFrame: func(s *Sim) { seen++ },
	}

	state := c.Start(host)
	require.Equal(t, StateRunning, state)
	assert.False(t, host.removed)
	assert.Same(t, c.Sim, host.listened)
	assert.Equal(t, 10, host.framesCalled)
	assert.Equal(t, 10, seen)
	assert.Equal(t, uint64(10), c.Sim.Frames)
	assert.Equal(t, 84, c.Sim.Store.Len())
	assert.Equal(t, LightPalette, c.Sim.Palette)
	assert.Equal(t, 2.0, surf.ratio)
	assert.Equal(t, "running", state.String())
}

func TestListenerResizeMidSession(t *testing.T) {
	host := &fakeHost{w: 1000, h: 800, ratio: 1, surface: &recordSurface{}, frames: 1}
	c := Controller{Source: NewRand(2)}
	c.Start(host)
	require.NotNil(t, host.listened)

	host.listened.Resize(600, 500, 3)
	assert.True(t, c.Sim.Flags.Compact)
	assert.Equal(t, MinParticles, c.Sim.Store.Len())

	host.listened.Resize(1920, 1080, 1)
	assert.False(t, c.Sim.Flags.Compact)
	assert.Equal(t, NormalProfile.TargetCount(1920, 1080), c.Sim.Store.Len())
}

func TestForcedHostDisables(t *testing.T) {
	host := &fakeHost{w: 1000, h: 800, ratio: 1, surface: &recordSurface{}, frames: 5}
	c := Controller{}
	state := c.Start(Force(host, false, true))
	assert.Equal(t, StateDisabled, state)
	assert.True(t, host.removed)
	assert.False(t, host.scheduled)

	assert.Same(t, Host(host), Force(host, false, false))
}
