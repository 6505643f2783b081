package config

import (
	"flag"
	"fmt"
)

// BindFlags registers command-line overrides on fs. Call Apply after fs.Parse.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "path to a TOML config file")
	fs.StringVar(&f.backend, "backend", "", "desktop or terminal")
	fs.StringVar(&f.theme, "theme", "", "dark or light")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.Uint64Var(&f.seed, "seed", 0, "particle layout seed (0 = clock)")
	fs.BoolVar(&f.reducedMotion, "reduced-motion", false, "behave as if reduced motion is preferred")
	fs.BoolVar(&f.saveData, "save-data", false, "behave as if data saver is on")
	fs.BoolVar(&f.audio, "audio", false, "play the ambient tone")
	return f
}

// Flags holds the parsed command-line values.
type Flags struct {
	Path string

	fs            *flag.FlagSet
	backend       string
	theme         string
	logLevel      string
	seed          uint64
	reducedMotion bool
	saveData      bool
	audio         bool
}

// Apply copies explicitly set flags over c.
func (f *Flags) Apply(c *Config) {
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["backend"] {
		c.Display.Backend = f.backend
	}
	if set["theme"] {
		c.Display.Theme = f.theme
	}
	if set["log-level"] {
		c.Log.Level = f.logLevel
	}
	if set["seed"] {
		c.Seed = f.seed
	}
	c.Preferences.ReducedMotion = c.Preferences.ReducedMotion || f.reducedMotion
	c.Preferences.SaveData = c.Preferences.SaveData || f.saveData
	if set["audio"] {
		c.Audio.Enabled = f.audio
	}
}

// Resolve builds the final config: defaults, file, environment, then flags.
func Resolve(args []string, lookup func(string) (string, bool)) (*Config, error) {
	fs := flag.NewFlagSet("driftfield", flag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := Load(f.Path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.FromEnv(lookup); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	f.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
