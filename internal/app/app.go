//go:build !android && !js

package app

import (
	"go.uber.org/zap"

	"driftfield/internal/config"
	"driftfield/internal/desktop"
	"driftfield/internal/field"
	"driftfield/internal/terminal"
)

// Run starts the configured backend and blocks until it closes.
func Run(cfg *config.Config, log *zap.Logger) error {
	seed := Seed(cfg)
	ctl, amb := NewController(cfg, seed, field.PaletteByName(cfg.Display.Theme), Cards(cfg.Cards), log)
	defer amb.Close()

	onKey := func(r rune) {
		if r == 't' {
			if name := ToggleTheme(ctl); name != "" {
				log.Debug("theme toggled", zap.String("theme", name))
			}
		}
	}

	var host field.Host
	switch cfg.Display.Backend {
	case config.BackendTerminal:
		host = terminal.NewHost(terminal.Options{FPS: cfg.Display.FPS, OnKey: onKey}, log.Named("terminal"))
	default:
		host = desktop.NewHost(desktop.Options{
			Width:  cfg.Display.Width,
			Height: cfg.Display.Height,
			Title:  cfg.Display.Title,
			OnKey:  onKey,
		}, log.Named("desktop"))
	}
	host = field.Force(host, cfg.Preferences.ReducedMotion, cfg.Preferences.SaveData)

	log.Info("starting", zap.String("backend", cfg.Display.Backend), zap.Uint64("seed", seed))
	state := ctl.Start(host)
	log.Info("stopped", zap.Stringer("state", state))
	return nil
}
