package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
)

// useEnv swaps the environment oracle for f and isolates configuration.
func useEnv(t *testing.T, f *hostenv.Fake) {
	t.Helper()
	old := newEnv
	newEnv = func(time.Duration) hostenv.Env { return f }
	t.Cleanup(func() {
		newEnv = old
		loadedConfig = nil
	})
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	func(dir string) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}(t.TempDir())
}

// writeProject creates game.uproject in a fresh directory.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "game.uproject")
	require.NoError(t, os.WriteFile(p, []byte(`{"FileVersion": 3, "EngineAssociation": "4.27"}`), 0o644))
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	stopLogging()
	return buf.String(), err
}
