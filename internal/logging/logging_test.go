package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newWithWriter(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("plan saved", "id", 42)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "plan saved", rec["msg"])
	assert.EqualValues(t, 42, rec["id"])
}

func TestNewWithWriter_BadFormat(t *testing.T) {
	_, err := newWithWriter(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droneplan.log")

	logger, closer, err := New(Options{Path: path, Level: "info", Format: "text"})
	require.NoError(t, err)

	logger.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=started")
	assert.Contains(t, string(data), "session=")
}

func TestNew_NoPath(t *testing.T) {
	logger, closer, err := New(Options{Level: "warn"})
	require.NoError(t, err)

	logger.Warn("dropped")
	assert.NoError(t, closer.Close())
}
