// Package hostenv abstracts the ambient state probes and the engine locator
// read: environment variables, the filesystem, the Windows registry and
// external processes.
//
// Production code uses OS. Tests use Fake, an in-memory implementation that
// never touches the real machine.
package hostenv

import (
	"context"
	"errors"
	"runtime"
)

var (
	// ErrToolNotFound is returned by Exec when the process cannot be started.
	ErrToolNotFound = errors.New("tool not found")

	// ErrTimeout is returned by Exec when the process outlives its timeout.
	ErrTimeout = errors.New("tool timed out")

	// ErrRegistryUnavailable is returned by registry reads on hosts
	// without a Windows registry, and for keys or values that do not exist.
	ErrRegistryUnavailable = errors.New("registry key unavailable")
)

// KnownFolder names a per-host well-known directory.
type KnownFolder int

const (
	ProgramFiles KnownFolder = iota
	ProgramFilesX86
	LocalAppData
	UserProfile
)

func (k KnownFolder) String() string {
	switch k {
	case ProgramFiles:
		return "ProgramFiles"
	case ProgramFilesX86:
		return "ProgramFilesX86"
	case LocalAppData:
		return "LocalAppData"
	case UserProfile:
		return "UserProfile"
	default:
		return "unknown"
	}
}

// RegistryKey addresses a key under HKEY_LOCAL_MACHINE.
type RegistryKey struct {
	Path string
	// View32 reads the 32-bit registry view (WOW6432Node).
	View32 bool
}

// ExecResult is the captured output of a finished process.
// A non-zero exit is not an error; callers inspect ExitCode.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stdout, or stderr when stdout is blank.
func (r ExecResult) Output() string {
	if trimmed(r.Stdout) != "" {
		return r.Stdout
	}
	return r.Stderr
}

// Env is the environment oracle consumed by probes and the engine locator.
// Implementations must be safe for concurrent use.
type Env interface {
	Getenv(key string) string
	FileExists(path string) bool
	DirExists(path string) bool
	// Glob matches a doublestar pattern against the filesystem.
	Glob(pattern string) ([]string, error)
	// ReadDirNames lists entry names in dir, sorted.
	ReadDirNames(dir string) ([]string, error)
	LookPath(name string) (string, error)
	Exec(ctx context.Context, name string, args ...string) (ExecResult, error)
	RegistrySubKeys(key RegistryKey) ([]string, error)
	RegistryString(key RegistryKey, name string) (string, error)
	RegistryInt(key RegistryKey, name string) (uint64, error)
	// Folder returns a well-known directory, or "" if the host has none.
	Folder(f KnownFolder) string
	Host() Host
}

// Host describes host-specific file naming.
type Host struct {
	OS string
	// ExeSuffix is appended to native executables (".exe" on Windows).
	ExeSuffix string
	// CmdSuffix is appended to shell wrappers such as ndk-build (".cmd" on Windows).
	CmdSuffix string
	// ScriptSuffix is the launcher script extension (".bat" or ".sh").
	ScriptSuffix string
}

// HostFor returns the host profile for a GOOS value.
func HostFor(goos string) Host {
	if goos == "windows" {
		return Host{OS: goos, ExeSuffix: ".exe", CmdSuffix: ".cmd", ScriptSuffix: ".bat"}
	}
	return Host{OS: goos, ScriptSuffix: ".sh"}
}

// CurrentHost returns the profile of the running process.
func CurrentHost() Host {
	return HostFor(runtime.GOOS)
}

// Windows reports whether the host is Windows.
func (h Host) Windows() bool {
	return h.OS == "windows"
}

// Exe returns name with the host executable suffix.
func (h Host) Exe(name string) string {
	return name + h.ExeSuffix
}

// Cmd returns name with the host shell-wrapper suffix.
func (h Host) Cmd(name string) string {
	return name + h.CmdSuffix
}
