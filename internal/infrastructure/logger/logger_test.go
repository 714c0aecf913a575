package logger

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

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log := New(Config{Level: "info", Format: "json", Output: path})
	log.Info("store connected", zap.String("backend", "memory"))
	require.NoError(t, log.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "store connected", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "memory", entry["backend"])
}

func TestNewFiltersBelowLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log := New(Config{Level: "warn", Format: "json", Output: path})
	log.Info("quiet")
	log.Warn("loud")
	require.NoError(t, log.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "quiet")
	assert.Contains(t, string(raw), "loud")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestNewWriter(t *testing.T) {
	t.Run("standard streams", func(t *testing.T) {
		assert.NotNil(t, newWriter("stdout"))
		assert.NotNil(t, newWriter("stderr"))
		assert.NotNil(t, newWriter(""))
	})

	t.Run("unopenable path falls back without panicking", func(t *testing.T) {
		log := New(Config{Format: "json", Output: "/no/such/dir/app.log"})
		assert.NotPanics(t, func() {
			log.Info("fallback")
		})
	})
}

func TestNewEncoder(t *testing.T) {
	assert.NotNil(t, newEncoder("console"))
	assert.NotNil(t, newEncoder("json"))
}
