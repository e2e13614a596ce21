package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	log := New(&config.LogConfig{Level: "debug", File: file}, &config.AppConfig{Name: "bizsim", Env: "test"})

	log.Debug("scenario generated")
	_ = log.Sync()

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"scenario generated"`)
	assert.Contains(t, string(raw), `"app":"bizsim"`)
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	log := New(&config.LogConfig{Level: "loud"}, &config.AppConfig{})
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
