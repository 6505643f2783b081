//go:build android

package app

import (
	"go.uber.org/zap"

	"driftfield/internal/config"
	"driftfield/internal/field"
	"driftfield/internal/mobile"
)

// RunMobile runs the field in an x/mobile activity with default settings.
func RunMobile(cfg *config.Config, log *zap.Logger) {
	seed := Seed(cfg)
	ctl, amb := NewController(cfg, seed, field.PaletteByName(cfg.Display.Theme), Cards(cfg.Cards), log)
	defer amb.Close()
	log.Info("starting", zap.String("backend", "mobile"), zap.Uint64("seed", seed))
	mobile.Run(ctl, log.Named("mobile"))
}
