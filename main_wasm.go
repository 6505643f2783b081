//go:build js && wasm

package main

import (
	"go.uber.org/zap"

	"driftfield/internal/app"
	"driftfield/internal/config"
	"driftfield/internal/logging"
)

func main() {
	cfg := config.Default()
	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Encoding: "json"})
	if err != nil {
		log = zap.NewNop()
	}
	app.RunWeb(cfg, log)
	// Frames arrive from requestAnimationFrame callbacks.
	select {}
}
