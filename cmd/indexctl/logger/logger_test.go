package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, L.Enabled(t.Context(), level), "level %s", level)
	}
}

func TestInit_DisableAfterEnable(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	require.NotNil(t, file)
	assert.True(t, L.Enabled(t.Context(), slog.LevelInfo))

	require.NoError(t, Init(Options{Enabled: false}))
	assert.Nil(t, file, "log file should be closed")
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
	Error("dropped")

	data, err := os.ReadFile(logFileName(dir, time.Now()))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
}

func TestClose_Idempotent(t *testing.T) {
	require.NoError(t, Close())
	require.NoError(t, Close())
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInit_WritesFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))
	Debug("index loaded", "keys", 3)
	Warn("key not indexed, skipped", "key", "nope")
	require.NoError(t, Close())

	data, err := os.ReadFile(logFileName(dir, time.Now()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"index loaded"`)
	assert.Contains(t, string(data), `"keys":3`)
	assert.Contains(t, string(data), `"level":"WARN"`)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	old := logFileName(dir, now.AddDate(0, 0, -retentionDays-1))
	recent := logFileName(dir, now.AddDate(0, 0, -1))
	unrelated := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, recent, unrelated} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.FileExists(t, unrelated)
}
