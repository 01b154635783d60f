package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)

	// All methods are safe on the noop logger.
	logger.Info("ignored")
	logger.Warn("ignored")
	require.NoError(t, logger.Shutdown())
}

func TestInitWritesJSONLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WASTEWISE_LOG_DIR", dir)

	logger, err := Init(Config{Enabled: true, Level: "debug", MaxFiles: 10, Command: "test"})
	require.NoError(t, err)

	logger.Info("session started", "balance", 2450)
	logger.Debug("quiz started")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasPrefix(entries[0].Name(), "wastewise_"))
	require.True(t, strings.HasSuffix(entries[0].Name(), ".log"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "session started")
	require.Contains(t, content, "balance")
	require.Contains(t, content, "2450")
	require.Contains(t, content, `"command":"test"`)
	require.Contains(t, content, "quiz started")
}

func TestInitRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WASTEWISE_LOG_DIR", dir)

	logger, err := Init(Config{Enabled: true, Level: "warn", MaxFiles: 10, Command: "test"})
	require.NoError(t, err)

	logger.Info("filtered out")
	logger.Warn("kept")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.NotContains(t, string(data), "filtered out")
	require.Contains(t, string(data), "kept")
}

func TestWithAddsContext(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WASTEWISE_LOG_DIR", dir)

	logger, err := Init(Config{Enabled: true, Level: "info", MaxFiles: 10, Command: "test"})
	require.NoError(t, err)

	logger.With("bin", "SB-001").Info("pickup requested")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Contains(t, string(data), `"bin":"SB-001"`)
}

func TestPruneKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"wastewise_20240101_000000_a.log",
		"wastewise_20240102_000000_b.log",
		"wastewise_20240103_000000_c.log",
		"other.txt",
	}
	base := time.Now().Add(-time.Hour)
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, ts, ts))
	}

	require.NoError(t, pruneOldLogs(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var kept []string
	for _, e := range entries {
		kept = append(kept, e.Name())
	}
	require.Len(t, kept, 3)
	require.Contains(t, kept, "other.txt")
	require.NotContains(t, kept, "wastewise_20240101_000000_a.log")
}

func TestPruneZeroKeepIsNoop(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wastewise_x.log"), []byte("x"), 0o600))
	require.NoError(t, pruneOldLogs(dir, 0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLogDirPrecedence(t *testing.T) {
	t.Setenv("WASTEWISE_LOG_DIR", "/tmp/explicit-logs")
	dir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, "/tmp/explicit-logs", dir)

	t.Setenv("WASTEWISE_LOG_DIR", "")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	dir, err = LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/state", "wastewise", "logs"), dir)
}
