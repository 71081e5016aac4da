package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabledDiscards(t *testing.T) {
	var out bytes.Buffer
	l, closeFn, err := New(Options{Enabled: false, Console: &out})
	require.NoError(t, err)
	defer closeFn()

	l.Info("should not appear")
	assert.Empty(t, out.String())
}

func TestConsolePrintsMessageOnly(t *testing.T) {
	var out bytes.Buffer
	l, closeFn, err := New(Options{Enabled: true, Console: &out})
	require.NoError(t, err)
	defer closeFn()

	l.Info("Allocated 100 bytes at offset 0x00001F9C", "size", 100)
	l.With("tag", "x").Warn("Allocation overflow")
	l.Debug("below level")

	assert.Equal(t, "Allocated 100 bytes at offset 0x00001F9C\nAllocation overflow\n", out.String())
}

func TestConsoleLevel(t *testing.T) {
	var out bytes.Buffer
	l, closeFn, err := New(Options{Enabled: true, Console: &out, Level: slog.LevelWarn})
	require.NoError(t, err)
	defer closeFn()

	l.Info("quiet")
	l.Warn("loud")
	assert.Equal(t, "loud\n", out.String())
}

func TestFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	l, closeFn, err := New(Options{Enabled: true, Console: &out, LogDir: dir})
	require.NoError(t, err)

	l.Info("Chunk Pointer: 0x00001F9C", "frontier", 0x1F9C)
	require.NoError(t, closeFn())

	assert.Equal(t, "Chunk Pointer: 0x00001F9C\n", out.String())

	name := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	raw, err := os.ReadFile(name)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &rec))
	assert.Equal(t, "Chunk Pointer: 0x00001F9C", rec["msg"])
	assert.EqualValues(t, 0x1F9C, rec["frontier"])
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := logPrefix + time.Now().AddDate(0, 0, -(retentionDays + 5)).Format("2006-01-02") + logSuffix
	recent := logPrefix + time.Now().Format("2006-01-02") + logSuffix
	other := "unrelated.log"
	for _, name := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	cleanOldLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.NotContains(t, names, old)
	assert.Contains(t, names, recent)
	assert.Contains(t, names, other)
}

func TestInitReplacesGlobal(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var out bytes.Buffer
	closeFn, err := Init(Options{Enabled: true, Console: &out})
	require.NoError(t, err)
	defer closeFn()

	Info("hello")
	Error("boom")
	assert.Equal(t, "hello\nboom\n", out.String())
	assert.False(t, strings.Contains(out.String(), "level="))
}

func TestDiscardIsDisabled(t *testing.T) {
	l := Discard()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
