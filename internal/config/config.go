package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backends selectable from the command line.
const (
	BackendDesktop  = "desktop"
	BackendTerminal = "terminal"
)

// Environment variables read by FromEnv.
const (
	EnvSeed          = "DRIFTFIELD_SEED"
	EnvReducedMotion = "DRIFTFIELD_REDUCED_MOTION"
	EnvSaveData      = "DRIFTFIELD_SAVE_DATA"
	EnvLogLevel      = "DRIFTFIELD_LOG_LEVEL"
)

// Config holds every setting outside the engine's fixed tuning.
type Config struct {
	Seed uint64 `toml:"seed"` // 0 = seed from the clock

	Display     Display     `toml:"display"`
	Preferences Preferences `toml:"preferences"`
	Audio       Audio       `toml:"audio"`
	Log         Log         `toml:"log"`
	Cards       []Card      `toml:"cards"`
}

type Display struct {
	Backend string `toml:"backend"`
	Theme   string `toml:"theme"` // dark | light
	FPS     int    `toml:"fps"`   // terminal frame rate
	Width   int    `toml:"width"` // initial desktop window size
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
}

// Preferences can force the field off; they never force it on.
type Preferences struct {
	ReducedMotion bool `toml:"reduced_motion"`
	SaveData      bool `toml:"save_data"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

type Log struct {
	Level    string `toml:"level"`    // debug | info | warn | error
	Encoding string `toml:"encoding"` // console | json
	File     string `toml:"file"`     // empty = stderr
}

// LogOutputs returns where logs go. The terminal backend owns the screen,
// so without an explicit file it logs to driftfield.log in the temp dir.
func (c *Config) LogOutputs() []string {
	switch {
	case c.Log.File != "":
		return []string{c.Log.File}
	case c.Display.Backend == BackendTerminal:
		return []string{filepath.Join(os.TempDir(), "driftfield.log")}
	default:
		return []string{"stderr"}
	}
}

// Card is a depth-tagged panel, laid out in viewport fractions.
type Card struct {
	Title string  `toml:"title"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	W     float64 `toml:"w"`
	H     float64 `toml:"h"`
	Depth float64 `toml:"depth"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Display: Display{
			Backend: BackendDesktop,
			Theme:   "dark",
			FPS:     60,
			Width:   1280,
			Height:  800,
			Title:   "driftfield",
		},
		Audio: Audio{Volume: 0.35},
		Log:   Log{Level: "info", Encoding: "console"},
		Cards: []Card{
			{Title: "About", X: 0.08, Y: 0.14, W: 0.34, H: 0.22, Depth: 0.6},
			{Title: "Projects", X: 0.56, Y: 0.22, W: 0.36, H: 0.26, Depth: 1.2},
			{Title: "Contact", X: 0.22, Y: 0.62, W: 0.30, H: 0.18, Depth: 0.9},
		},
	}
}

// Load reads a TOML file over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// FromEnv applies environment overrides. lookup is os.LookupEnv outside tests.
func (c *Config) FromEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if s, ok := lookup(EnvSeed); ok && s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = v
	}
	for name, dst := range map[string]*bool{
		EnvReducedMotion: &c.Preferences.ReducedMotion,
		EnvSaveData:      &c.Preferences.SaveData,
	} {
		s, ok := lookup(name)
		if !ok || s == "" {
			continue
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = *dst || v
	}
	if s, ok := lookup(EnvLogLevel); ok && s != "" {
		c.Log.Level = s
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	switch c.Display.Backend {
	case BackendDesktop, BackendTerminal:
	default:
		errs = append(errs, fmt.Errorf("display.backend: unknown backend %q", c.Display.Backend))
	}
	switch c.Display.Theme {
	case "dark", "light":
	default:
		errs = append(errs, fmt.Errorf("display.theme: unknown theme %q", c.Display.Theme))
	}
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps: %d not in [1, 240]", c.Display.FPS))
	}
	if c.Display.Width < 1 || c.Display.Height < 1 {
		errs = append(errs, fmt.Errorf("display: window size %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 || math.IsNaN(c.Audio.Volume) {
		errs = append(errs, fmt.Errorf("audio.volume: %v not in [0, 1]", c.Audio.Volume))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.encoding: unknown encoding %q", c.Log.Encoding))
	}
	for i, card := range c.Cards {
		if card.W <= 0 || card.H <= 0 {
			errs = append(errs, fmt.Errorf("cards[%d] %q: empty size", i, card.Title))
		}
		if math.IsNaN(card.Depth) || math.IsInf(card.Depth, 0) {
			errs = append(errs, fmt.Errorf("cards[%d] %q: depth must be finite", i, card.Title))
		}
	}
	return errors.Join(errs...)
}
