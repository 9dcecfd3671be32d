package hostenv

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// ExecCall records one Fake.Exec invocation.
type ExecCall struct {
	Name string
	Args []string
}

type execScript struct {
	res ExecResult
	err error
}

// Fake is an in-memory Env for tests. Paths are compared after converting
// backslashes to slashes, so Windows-style paths work on every host.
type Fake struct {
	mu       sync.Mutex
	host     Host
	env      map[string]string
	files    map[string]bool
	dirs     map[string]bool
	folders  map[KnownFolder]string
	path     map[string]string
	execs    map[string]execScript
	registry map[string]map[string]any
	calls    []ExecCall
}

// NewFake creates an empty fake environment with the given host profile.
func NewFake(host Host) *Fake {
	return &Fake{
		host:     host,
		env:      make(map[string]string),
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		folders:  make(map[KnownFolder]string),
		path:     make(map[string]string),
		execs:    make(map[string]execScript),
		registry: make(map[string]map[string]any),
	}
}

// NewWindowsFake creates a fake Windows host with the usual known folders.
func NewWindowsFake() *Fake {
	f := NewFake(HostFor("windows"))
	f.SetFolder(ProgramFiles, `C:\Program Files`)
	f.SetFolder(ProgramFilesX86, `C:\Program Files (x86)`)
	f.SetFolder(LocalAppData, `C:\Users\dev\AppData\Local`)
	f.SetFolder(UserProfile, `C:\Users\dev`)
	return f
}

func norm(p string) string {
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

func regPath(key RegistryKey) string {
	p := strings.ToLower(strings.Trim(strings.ReplaceAll(key.Path, "/", `\`), `\`))
	if key.View32 {
		return "32:" + p
	}
	return "64:" + p
}

// SetEnv sets an environment variable.
func (f *Fake) SetEnv(key, value string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.env[key] = value
	return f
}

// AddFile registers a file and all of its parent directories.
func (f *Fake) AddFile(p string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := norm(p)
	f.files[n] = true
	f.addParentsLocked(n)
	return f
}

// AddDir registers a directory and all of its parents.
func (f *Fake) AddDir(p string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := norm(p)
	f.dirs[n] = true
	f.addParentsLocked(n)
	return f
}

func (f *Fake) addParentsLocked(n string) {
	for dir := path.Dir(n); dir != "." && dir != "/" && !f.dirs[dir]; dir = path.Dir(dir) {
		f.dirs[dir] = true
	}
}

// SetFolder sets a known folder.
func (f *Fake) SetFolder(k KnownFolder, p string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.folders[k] = p
	return f
}

// AddTool makes name resolvable through LookPath and runnable through Exec.
func (f *Fake) AddTool(name string, res ExecResult) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.path[name] = name
	f.execs[norm(name)] = execScript{res: res}
	return f
}

// SetExec scripts the result for running name, which may be a bare tool
// name or an absolute path.
func (f *Fake) SetExec(name string, res ExecResult, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs[norm(name)] = execScript{res: res, err: err}
	return f
}

// SetExecArgs scripts the result for running name with exactly args. It
// takes precedence over SetExec for that invocation.
func (f *Fake) SetExecArgs(name string, args []string, res ExecResult, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs[execKey(name, args)] = execScript{res: res, err: err}
	return f
}

func execKey(name string, args []string) string {
	return norm(name) + "\x00" + strings.Join(args, "\x00")
}

// SetRegistryValue stores a string or integer value under key.
func (f *Fake) SetRegistryValue(key RegistryKey, name string, value any) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.ensureKeyLocked(key)
	f.registry[p][strings.ToLower(name)] = value
	return f
}

// AddRegistryKey creates an empty key.
func (f *Fake) AddRegistryKey(key RegistryKey) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureKeyLocked(key)
	return f
}

// ensureKeyLocked creates key and its ancestors.
func (f *Fake) ensureKeyLocked(key RegistryKey) string {
	p := regPath(key)
	for k := p; ; {
		if f.registry[k] == nil {
			f.registry[k] = make(map[string]any)
		}
		i := strings.LastIndex(k, `\`)
		if i < 0 {
			break
		}
		k = k[:i]
	}
	return p
}

// Calls returns the recorded Exec invocations.
func (f *Fake) Calls() []ExecCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ExecCall(nil), f.calls...)
}

// Getenv implements Env.
func (f *Fake) Getenv(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.env[key]
}

// FileExists implements Env.
func (f *Fake) FileExists(p string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return p != "" && f.files[norm(p)]
}

// DirExists implements Env.
func (f *Fake) DirExists(p string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return p != "" && f.dirs[norm(p)]
}

// Glob implements Env.
func (f *Fake) Glob(pattern string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pat := norm(pattern)
	if !doublestar.ValidatePattern(pat) {
		return nil, fmt.Errorf("glob %s: %w", pattern, doublestar.ErrBadPattern)
	}
	var out []string
	for _, set := range []map[string]bool{f.files, f.dirs} {
		for p := range set {
			if ok, _ := doublestar.Match(pat, p); ok {
				out = append(out, p)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// ReadDirNames implements Env.
func (f *Fake) ReadDirNames(dir string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := norm(dir)
	if !f.dirs[d] {
		return nil, fmt.Errorf("open %s: no such directory", dir)
	}
	seen := make(map[string]bool)
	for _, set := range []map[string]bool{f.files, f.dirs} {
		for p := range set {
			if path.Dir(p) == d {
				seen[path.Base(p)] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// LookPath implements Env.
func (f *Fake) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.path[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
}

// Exec implements Env. Unscripted names fail with ErrToolNotFound.
func (f *Fake) Exec(ctx context.Context, name string, args ...string) (ExecResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, ExecCall{Name: name, Args: append([]string(nil), args...)})
	script, ok := f.execs[execKey(name, args)]
	if !ok {
		script, ok = f.execs[norm(name)]
	}
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ExecResult{}, fmt.Errorf("%s canceled: %w", name, err)
	}
	if !ok {
		return ExecResult{}, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return script.res, script.err
}

// RegistrySubKeys implements Env.
func (f *Fake) RegistrySubKeys(key RegistryKey) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := regPath(key)
	if _, ok := f.registry[p]; !ok {
		return nil, ErrRegistryUnavailable
	}
	prefix := p + `\`
	seen := make(map[string]bool)
	var names []string
	for k := range f.registry {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		child := strings.SplitN(k[len(prefix):], `\`, 2)[0]
		if !seen[child] {
			seen[child] = true
			names = append(names, child)
		}
	}
	sort.Strings(names)
	return names, nil
}

// RegistryString implements Env.
func (f *Fake) RegistryString(key RegistryKey, name string) (string, error) {
	v, err := f.registryValue(key, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrRegistryUnavailable, name)
	}
	return s, nil
}

// RegistryInt implements Env.
func (f *Fake) RegistryInt(key RegistryKey, name string) (uint64, error) {
	v, err := f.registryValue(key, name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s is not an integer", ErrRegistryUnavailable, name)
	}
}

func (f *Fake) registryValue(key RegistryKey, name string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vals, ok := f.registry[regPath(key)]
	if !ok {
		return nil, ErrRegistryUnavailable
	}
	v, ok := vals[strings.ToLower(name)]
	if !ok {
		return nil, ErrRegistryUnavailable
	}
	return v, nil
}

// Folder implements Env.
func (f *Fake) Folder(k KnownFolder) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.folders[k]
}

// Host implements Env.
func (f *Fake) Host() Host {
	return f.host
}
