package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		json     bool
		debug    bool
		encoding string
		level    zapcore.Level
	}{
		{"console info", false, false, "console", zapcore.InfoLevel},
		{"json info", true, false, "json", zapcore.InfoLevel},
		{"console debug", false, true, "console", zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config(tt.json, tt.debug)
			assert.Equal(t, tt.encoding, cfg.Encoding)
			assert.Equal(t, tt.level, cfg.Level.Level())
			assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)

			logger, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, tt.debug, logger.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{"returns empty when limit non-positive", "hello world", 0, ""},
		{"shorter than limit", "hello", 10, "hello"},
		{"truncates and adds ellipsis", "hello world", 5, "hello..."},
		{"trims surrounding whitespace", "  spaced  ", 5, "space..."},
		{"counts runes", "Zürich office", 6, "Zürich..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Truncate(tt.input, tt.limit))
		})
	}
}
