package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.WarnLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := LevelFromString(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewDefaultConfig().Validate())
	assert.Error(t, Config{Level: "warn", Format: "xml"}.Validate())
	assert.Error(t, Config{Level: "chatty", Format: "json"}.Validate())
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("session started", zap.Int("disks", 3))
	require.NoError(t, Sync(l))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "session started", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hanoi", entry["logger"])
	assert.EqualValues(t, 3, entry["disks"])
	assert.Contains(t, entry, "ts")
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(NewDefaultConfig(), &buf)
	require.NoError(t, err)

	l.Info("below default level")
	l.Warn("input closed")
	assert.NotContains(t, buf.String(), "below default level")
	assert.Contains(t, buf.String(), "input closed")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "yaml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
