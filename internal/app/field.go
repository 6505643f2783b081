package app

import (
	"time"

	"go.uber.org/zap"

	"driftfield/internal/audio"
	"driftfield/internal/config"
	"driftfield/internal/field"
	"driftfield/internal/speaker"
)

// statsEvery is how often (in frames) a debug line reports the field.
const statsEvery = 600

// Seed returns the configured seed, or one from the clock.
func Seed(cfg *config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// NewController wires a controller for cfg. The returned ambience must be
// closed once the host stops.
func NewController(cfg *config.Config, seed uint64, pal field.Palette, targets []field.DepthTarget, log *zap.Logger) (*field.Controller, *Ambience) {
	ctl := &field.Controller{
		Source:  field.NewRand(seed),
		Palette: pal,
		Targets: targets,
	}
	ctl.OnDisabled = func(reason string) {
		log.Info("particle field disabled", zap.String("reason", reason))
	}
	amb := NewAmbience(cfg.Audio, log.Named("audio"))
	ctl.OnFrame = func(s *field.Sim) {
		amb.Update(s)
		if s.Frames%statsEvery == 0 {
			log.Debug("field",
				zap.Uint64("frame", s.Frames),
				zap.Int("particles", s.Store.Len()),
				zap.Int("links", s.Links),
				zap.Bool("compact", s.Flags.Compact),
				zap.Float64("pixel_ratio", s.Ratio))
		}
	}
	return ctl, amb
}

// ToggleTheme flips the running palette; it is a no-op before the field starts.
func ToggleTheme(ctl *field.Controller) string {
	if ctl.Sim == nil {
		return ""
	}
	ctl.Sim.Palette = ctl.Sim.Palette.Toggle()
	return ctl.Sim.Palette.Name
}

// Cards turns configured cards into depth targets.
func Cards(cards []config.Card) []field.DepthTarget {
	out := make([]field.DepthTarget, 0, len(cards))
	for _, c := range cards {
		out = append(out, &field.Card{Title: c.Title, X: c.X, Y: c.Y, W: c.W, H: c.H, Z: c.Depth})
	}
	return out
}

// Ambience drives the optional tone from the frame loop. The speaker opens
// on the first rendered frame, so a disabled field never makes a sound.
type Ambience struct {
	cfg  config.Audio
	log  *zap.Logger
	open func() (*speaker.Speaker, error)
	tone *audio.Tone
	spk  *speaker.Speaker
	fail bool
	done bool
}

func NewAmbience(cfg config.Audio, log *zap.Logger) *Ambience {
	return &Ambience{cfg: cfg, log: log, open: speaker.Open}
}

func (a *Ambience) Update(s *field.Sim) {
	if !a.cfg.Enabled || a.fail || a.done {
		return
	}
	if a.tone == nil {
		spk, err := a.open()
		if err != nil {
			a.fail = true
			a.log.Warn("audio init failed (continuing without sound)", zap.Error(err))
			return
		}
		a.spk = spk
		a.tone = audio.NewTone()
		spk.Play(a.tone, a.cfg.Volume)
	}
	a.tone.SetLevel(audio.Level(field.MeanSpeed(s.Store.P), s.Pointer.Active))
}

// Level is the tone's current target, 0 when silent.
func (a *Ambience) Level() float64 {
	if a.tone == nil {
		return 0
	}
	return a.tone.Level()
}

// Close stops the tone for good; later updates never reopen the speaker.
func (a *Ambience) Close() {
	a.done = true
	if a.spk == nil {
		return
	}
	if err := a.spk.Close(); err != nil {
		a.log.Debug("audio close", zap.Error(err))
	}
	a.spk = nil
}

// unloader is a host that reports its own teardown.
type unloader interface {
	OnUnload(fn func())
}

// closeOnUnload releases the ambience when the host goes away.
func closeOnUnload(u unloader, a *Ambience) { u.OnUnload(a.Close) }
