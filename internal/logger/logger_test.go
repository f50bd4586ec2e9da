package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupFile installs a logger writing to a temp file and returns a func that
// closes it and reads back what was logged.
func setupFile(t *testing.T, cfg Config) func() string {
	t.Helper()
	cfg.LogFilePath = filepath.Join(t.TempDir(), "test.log")
	closer, err := Setup(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { Init(slog.LevelInfo, io.Discard) })

	return func() string {
		require.NoError(t, closer.Close())
		data, err := os.ReadFile(cfg.LogFilePath)
		require.NoError(t, err)
		return string(data)
	}
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel("err"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestSetup_LevelFilters(t *testing.T) {
	read := setupFile(t, Config{LogLevel: "warn"})

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	out := read()
	require.NotContains(t, out, "quiet 1")
	require.Contains(t, out, "loud 2")
	require.Contains(t, out, "logger_test.go")
}

func TestSetup_DisabledTag(t *testing.T) {
	read := setupFile(t, Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}})

	DebugTagf("noisy", "hidden message")
	DebugTagf("history", "tagged message")
	Debugf("plain message")

	out := read()
	require.NotContains(t, out, "hidden message")
	require.Contains(t, out, "tagged message")
	require.Contains(t, out, "plain message")
}

func TestSetup_EnabledTagsDropUntagged(t *testing.T) {
	read := setupFile(t, Config{LogLevel: "debug", EnabledTags: []string{"history"}})

	DebugTagf("history", "kept")
	Debugf("dropped")

	out := read()
	require.Contains(t, out, "kept")
	require.NotContains(t, out, "dropped")
}

func TestSetup_DisabledPackage(t *testing.T) {
	read := setupFile(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})

	Errorf("from the logger package")

	require.NotContains(t, read(), "from the logger package")
}

func TestSetup_DisabledFile(t *testing.T) {
	read := setupFile(t, Config{LogLevel: "debug", DisabledFiles: []string{"logger_test.go"}})

	Infof("filtered by file")

	require.NotContains(t, read(), "filtered by file")
}

func TestSetup_BadPath(t *testing.T) {
	_, err := Setup(Config{LogFilePath: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}
