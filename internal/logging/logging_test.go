package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, Level("debug").Level())
	assert.Equal(t, zapcore.WarnLevel, Level("warn").Level())
	assert.Equal(t, zapcore.ErrorLevel, Level("error").Level())
	assert.Equal(t, zapcore.InfoLevel, Level("loud").Level())
}

func TestNewJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	log, err := New(Config{Level: "warn", Encoding: "json", Outputs: []string{path}})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("field disabled", zap.String("reason", "reduced motion"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "field disabled", entry["msg"])
	assert.Equal(t, "reduced motion", entry["reason"])
}

func TestNewRejectsBadEncoding(t *testing.T) {
	_, err := New(Config{Encoding: "xml"})
	assert.Error(t, err)
}
