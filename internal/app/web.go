//go:build js && wasm

package app

import (
	"go.uber.org/zap"

	"driftfield/internal/config"
	"driftfield/internal/field"
	"driftfield/internal/web"
)

// CanvasID is the id of the page's drawing element.
const CanvasID = "driftfield"

// RunWeb starts the field on the page and returns; frames keep arriving
// through requestAnimationFrame. The page supplies theme and depth targets.
func RunWeb(cfg *config.Config, log *zap.Logger) field.State {
	host := web.NewHost(CanvasID, log.Named("web"))
	theme := host.Theme()
	if theme == "" {
		theme = cfg.Display.Theme
	}
	seed := Seed(cfg)
	ctl, amb := NewController(cfg, seed, field.PaletteByName(theme), host.DepthTargets(), log)
	closeOnUnload(host, amb)
	state := ctl.Start(host)
	log.Info("field", zap.Stringer("state", state), zap.Uint64("seed", seed))
	return state
}
