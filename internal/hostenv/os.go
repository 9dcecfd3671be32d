package hostenv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExecTimeout bounds a single spawned process.
const DefaultExecTimeout = 30 * time.Second

// waitDelay bounds pipe draining after the process is killed.
const waitDelay = 2 * time.Second

// OS is the Env backed by the running machine.
type OS struct {
	// Timeout bounds every Exec call. Zero means DefaultExecTimeout.
	Timeout time.Duration
	host    Host
}

// NewOS creates an OS environment with the given exec timeout.
func NewOS(timeout time.Duration) *OS {
	if timeout <= 0 {
		timeout = DefaultExecTimeout
	}
	return &OS{Timeout: timeout, host: CurrentHost()}
}

// Getenv implements Env.
func (o *OS) Getenv(key string) string {
	return os.Getenv(key)
}

// FileExists implements Env.
func (o *OS) FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists implements Env.
func (o *OS) DirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Glob implements Env.
func (o *OS) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// ReadDirNames implements Env.
func (o *OS) ReadDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LookPath implements Env.
func (o *OS) LookPath(name string) (string, error) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return p, nil
}

// Exec implements Env. The process is killed when the timeout elapses or
// ctx is canceled.
func (o *OS) Exec(ctx context.Context, name string, args ...string) (ExecResult, error) {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultExecTimeout
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, name, args...)
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return ExecResult{}, fmt.Errorf("%w: %s: %v", ErrToolNotFound, name, err)
	}

	err := cmd.Wait()
	res := ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if ctxErr := execCtx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && ctx.Err() == nil {
			return res, fmt.Errorf("%w: %s after %s", ErrTimeout, name, timeout)
		}
		return res, fmt.Errorf("%s canceled: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return res, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

// RegistrySubKeys implements Env.
func (o *OS) RegistrySubKeys(key RegistryKey) ([]string, error) {
	return registrySubKeys(key)
}

// RegistryString implements Env.
func (o *OS) RegistryString(key RegistryKey, name string) (string, error) {
	return registryString(key, name)
}

// RegistryInt implements Env.
func (o *OS) RegistryInt(key RegistryKey, name string) (uint64, error) {
	return registryInt(key, name)
}

// Folder implements Env.
func (o *OS) Folder(f KnownFolder) string {
	if f == UserProfile {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return home
	}
	if !o.host.Windows() {
		return ""
	}
	switch f {
	case ProgramFiles:
		return os.Getenv("ProgramFiles")
	case ProgramFilesX86:
		return os.Getenv("ProgramFiles(x86)")
	case LocalAppData:
		if v := os.Getenv("LOCALAPPDATA"); v != "" {
			return v
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "AppData", "Local")
		}
	}
	return ""
}

// Host implements Env.
func (o *OS) Host() Host {
	return o.host
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
