package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"driftfield/internal/config"
	"driftfield/internal/field"
	"driftfield/internal/gfx"
	"driftfield/internal/speaker"
)

type stubHost struct {
	reduced bool
	frames  int
	batch   gfx.Batch
	removed bool
}

func (h *stubHost) PrefersReducedMotion() bool      { return h.reduced }
func (h *stubHost) SaveData() (bool, bool)          { return false, false }
func (h *stubHost) Viewport() (int, int, float64)   { return 1000, 800, 1 }
func (h *stubHost) Acquire() (field.Surface, error) { return &h.batch, nil }
func (h *stubHost) RemoveCanvas()                   { h.removed = true }
func (h *stubHost) Listen(field.Listener)           {}
func (h *stubHost) Schedule(frame field.FrameFunc) {
	for i := 0; i < h.frames; i++ {
		frame(float64(i) * 16)
	}
}

func TestCards(t *testing.T) {
	targets := Cards(config.Default().Cards)
	require.Len(t, targets, 3)
	c, ok := targets[0].(*field.Card)
	require.True(t, ok)
	assert.Equal(t, "About", c.Title)
	assert.Equal(t, c.Z, c.Depth())
}

func TestSeed(t *testing.T) {
	assert.Equal(t, uint64(42), Seed(&config.Config{Seed: 42}))
	assert.NotZero(t, Seed(&config.Config{}))
}

func TestControllerRunsAndToggles(t *testing.T) {
	cfg := config.Default()
	core, logs := observer.New(zapcore.DebugLevel)
	ctl, amb := NewController(cfg, 7, field.PaletteByName("dark"), Cards(cfg.Cards), zap.New(core))
	defer amb.Close()

	assert.Empty(t, ToggleTheme(ctl))

	host := &stubHost{frames: statsEvery}
	require.Equal(t, field.StateRunning, ctl.Start(host))
	assert.Equal(t, uint64(statsEvery), ctl.Sim.Frames)
	assert.NotEmpty(t, host.batch.Dots)
	assert.Equal(t, 1, logs.FilterMessage("field").Len())

	assert.Equal(t, "light", ToggleTheme(ctl))
	assert.Equal(t, "dark", ToggleTheme(ctl))
}

func TestControllerLogsDisableReason(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctl, _ := NewController(config.Default(), 1, field.DarkPalette, nil, zap.New(core))

	host := &stubHost{reduced: true, frames: 5}
	assert.Equal(t, field.StateDisabled, ctl.Start(host))
	assert.True(t, host.removed)

	entries := logs.FilterMessage("particle field disabled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "reduced motion", entries[0].ContextMap()["reason"])
}

func TestAmbienceSilentWhenDisabled(t *testing.T) {
	a := NewAmbience(config.Audio{Enabled: false}, zap.NewNop())
	a.open = func() (*speaker.Speaker, error) {
		t.Fatal("speaker opened while audio is disabled")
		return nil, nil
	}
	a.Update(field.NewSim(field.Flags{}, field.NewRand(1)))
	assert.Zero(t, a.Level())
	a.Close()
}

func TestAmbienceOpenFailureIsSticky(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := NewAmbience(config.Audio{Enabled: true, Volume: 0.3}, zap.New(core))
	calls := 0
	a.open = func() (*speaker.Speaker, error) {
		calls++
		return nil, errors.New("no device")
	}
	sim := field.NewSim(field.Flags{}, field.NewRand(1))
	a.Update(sim)
	a.Update(sim)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, logs.Len())
	assert.Zero(t, a.Level())
}

type fakeUnloader struct{ fns []func() }

func (f *fakeUnloader) OnUnload(fn func()) { f.fns = append(f.fns, fn) }

func TestAmbienceClosedOnUnloadStaysSilent(t *testing.T) {
	a := NewAmbience(config.Audio{Enabled: true, Volume: 0.3}, zap.NewNop())
	calls := 0
	a.open = func() (*speaker.Speaker, error) {
		calls++
		return nil, errors.New("no device")
	}

	u := &fakeUnloader{}
	closeOnUnload(u, a)
	require.Len(t, u.fns, 1)
	u.fns[0]()

	a.Update(field.NewSim(field.Flags{}, field.NewRand(1)))
	assert.Zero(t, calls, "speaker opened after unload")
	a.Close()
}
