package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "driftfield.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func env(vals map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendDesktop, cfg.Display.Backend)
	assert.False(t, cfg.Audio.Enabled)
	assert.Len(t, cfg.Cards, 3)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
seed = 77

[display]
backend = "terminal"
theme = "light"
fps = 30

[audio]
enabled = true
volume = 0.5

[[cards]]
title = "Only"
x = 0.1
y = 0.2
w = 0.3
h = 0.4
depth = 2.0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, BackendTerminal, cfg.Display.Backend)
	assert.Equal(t, "light", cfg.Display.Theme)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.Equal(t, 1280, cfg.Display.Width, "unset keys keep defaults")
	assert.True(t, cfg.Audio.Enabled)
	require.Len(t, cfg.Cards, 1)
	assert.Equal(t, Card{Title: "Only", X: 0.1, Y: 0.2, W: 0.3, H: 0.4, Depth: 2}, cfg.Cards[0])
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "[display]\nbackground = \"red\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.background")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	err := cfg.FromEnv(env(map[string]string{
		EnvSeed:          "1234",
		EnvReducedMotion: "true",
		EnvSaveData:      "0",
		EnvLogLevel:      "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.True(t, cfg.Preferences.ReducedMotion)
	assert.False(t, cfg.Preferences.SaveData)
	assert.Equal(t, "debug", cfg.Log.Level)

	err = cfg.FromEnv(env(map[string]string{EnvSeed: "abc"}))
	assert.ErrorContains(t, err, EnvSeed)
}

func TestEnvCannotClearFilePreference(t *testing.T) {
	cfg := Default()
	cfg.Preferences.SaveData = true
	require.NoError(t, cfg.FromEnv(env(map[string]string{EnvSaveData: "false"})))
	assert.True(t, cfg.Preferences.SaveData)
}

func TestResolvePrecedence(t *testing.T) {
	path := writeFile(t, "seed = 5\n[display]\ntheme = \"light\"\n[log]\nlevel = \"warn\"\n")
	lookup := env(map[string]string{EnvSeed: "6", EnvLogLevel: "error"})

	cfg, err := Resolve([]string{"-config", path, "-seed", "7", "-audio"}, lookup)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed, "flag beats env beats file")
	assert.Equal(t, "error", cfg.Log.Level, "env beats file")
	assert.Equal(t, "light", cfg.Display.Theme, "file beats default")
	assert.True(t, cfg.Audio.Enabled)
}

func TestResolveInvalid(t *testing.T) {
	_, err := Resolve([]string{"-backend", "vr"}, env(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Display.FPS = 0
	cfg.Audio.Volume = 3
	cfg.Cards = append(cfg.Cards, Card{Title: "flat"})
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.fps")
	assert.Contains(t, err.Error(), "audio.volume")
	assert.Contains(t, err.Error(), `"flat"`)
}

func TestLogOutputs(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"stderr"}, cfg.LogOutputs())

	cfg.Display.Backend = BackendTerminal
	assert.Equal(t, []string{filepath.Join(os.TempDir(), "driftfield.log")}, cfg.LogOutputs())

	cfg.Log.File = "/var/log/df.log"
	assert.Equal(t, []string{"/var/log/df.log"}, cfg.LogOutputs())
}
