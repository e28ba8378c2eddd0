package logging

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{"INFO", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestParseTimeFormat(t *testing.T) {
	assert.Equal(t, time.Kitchen, parseTimeFormat("kitchen"))
	assert.Equal(t, time.RFC3339, parseTimeFormat("rfc3339"))
	assert.Equal(t, "", parseTimeFormat("unix"))
	assert.Equal(t, "15:04:05", parseTimeFormat("15:04:05"))
	assert.Equal(t, time.Kitchen, parseTimeFormat("nonsense"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
}

func TestNewLoggerFromNilConfig(t *testing.T) {
	// A nil config must not panic and should fall back to defaults.
	logger := NewLoggerFromConfig(nil)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
