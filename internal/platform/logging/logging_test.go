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
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, slog.LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("code", "EUR"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "EUR", rec["code"])
}

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "board.log")
	logger, closer := New("info", file)

	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewFileOnly(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ctl.log")
	logger, closer := NewFileOnly("debug", file)

	logger.Debug("quiet")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"quiet"`)
}
