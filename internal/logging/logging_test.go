package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogPath(t *testing.T) {
	path := DefaultLogPath()

	assert.True(t, strings.HasSuffix(path, filepath.Join(".uecheck", "logs", "uecheck.log")))
	assert.Equal(t, DefaultLogDir(), filepath.Dir(path))
}

func TestDefaultAndDebugConfig(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, "warn", def.Level)
	assert.Empty(t, def.FilePath)
	assert.True(t, def.WriteToStderr)

	dbg := DebugConfig()
	assert.Equal(t, "debug", dbg.Level)
	assert.Equal(t, DefaultLogPath(), dbg.FilePath)
	assert.False(t, dbg.WriteToStderr)
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	// Given: a log file in a temp directory
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	cfg := Config{Level: "debug", FilePath: path, MaxSizeMB: 1, MaxFiles: 2}

	// When: logging through the configured logger
	logger, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	logger.Debug("probe_complete", slog.String("probe", "git"))
	cleanup()

	// Then: the file contains a JSON record
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"probe_complete"`)
	assert.Contains(t, string(data), `"probe":"git"`)
}

func TestSetup_NoOutputsDiscards(t *testing.T) {
	logger, cleanup, err := Setup(Config{Level: "info"})
	require.NoError(t, err)
	defer cleanup()

	assert.NotPanics(t, func() { logger.Info("ignored") })
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromString(tt.in))
		})
	}
}

func TestRotatingWriter_Rotation(t *testing.T) {
	// Given: a writer with a 1MB limit and two rotated files
	path := filepath.Join(t.TempDir(), "uecheck.log")
	w, err := NewRotatingWriter(path, 1, 2)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// When: writing well past three times the limit
	chunk := []byte(strings.Repeat("x", 512*1024))
	for i := 0; i < 8; i++ {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}

	// Then: at most two rotated files exist
	assert.FileExists(t, path)
	assert.FileExists(t, path+".1")
	assert.FileExists(t, path+".2")
	assert.NoFileExists(t, path+".3")
}

func TestRotatingWriter_CloseIsIdempotent(t *testing.T) {
	w, err := NewRotatingWriter(filepath.Join(t.TempDir(), "a.log"), 1, 1)
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Sync())

	_, err = w.Write([]byte("late"))
	assert.Error(t, err)
}

func TestRotatingWriter_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.log")
	w, err := NewRotatingWriter(path, 10, 2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = fmt.Fprintf(w, "line %d\n", n)
		}(i)
	}
	wg.Wait()
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(data), "\n"))
}
