//go:build android

package main

import (
	"go.uber.org/zap"

	"driftfield/internal/app"
	"driftfield/internal/config"
	"driftfield/internal/logging"
)

func main() {
	cfg := config.Default()
	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()
	app.RunMobile(cfg, log)
}
