package engine

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/config"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
)

// RegistryRoot is the launcher's per-version install key.
const RegistryRoot = `SOFTWARE\EpicGames\Unreal Engine`

var (
	packagedRoots = []string{
		`C:\Program Files\Epic Games\UE_4.27`,
		`C:\Program Files (x86)\Epic Games\UE_4.27`,
	}
	sourceTreeRoots = []string{
		`C:\UnrealEngine`,
		`C:\UE4`,
		`C:\UE_4.27`,
		`D:\UnrealEngine`,
		`D:\UE4`,
		`D:\UE_4.27`,
	}
)

// Candidate is one root the locator will try.
type Candidate struct {
	Path   string
	Source Source
}

// Locator searches for an engine installation in a fixed priority order:
// packaged installs, source trees, configured roots, environment
// variables, then the launcher's registry entries.
type Locator struct {
	Env        hostenv.Env
	ExtraRoots []string
	EnvVars    []string
	Logger     *slog.Logger
}

// NewLocator creates a locator using the engine section of cfg.
func NewLocator(env hostenv.Env, cfg *config.Config) *Locator {
	l := &Locator{Env: env}
	if cfg != nil {
		l.ExtraRoots = cfg.Engine.ExtraRoots
		l.EnvVars = cfg.Engine.EnvVars
	}
	return l
}

func (l *Locator) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Candidates returns the path-based candidates in priority order with
// duplicates and blanks removed. The registry fallback is not included.
func (l *Locator) Candidates() []Candidate {
	var all []Candidate
	if l.Env.Host().Windows() {
		for _, p := range packagedRoots {
			all = append(all, Candidate{Path: p, Source: SourcePackaged})
		}
		for _, p := range sourceTreeRoots {
			all = append(all, Candidate{Path: p, Source: SourceSourceTree})
		}
	} else if home := l.Env.Folder(hostenv.UserProfile); home != "" {
		all = append(all, Candidate{Path: filepath.Join(home, "UnrealEngine"), Source: SourceSourceTree})
	}
	for _, p := range l.ExtraRoots {
		all = append(all, Candidate{Path: p, Source: SourceConfig})
	}
	for _, name := range l.EnvVars {
		all = append(all, Candidate{Path: l.Env.Getenv(name), Source: SourceEnvVar})
	}

	seen := make(map[string]bool, len(all))
	out := all[:0]
	for _, c := range all {
		if strings.TrimSpace(c.Path) == "" {
			continue
		}
		key := l.key(c.Path)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// key normalizes a path for duplicate detection. Windows paths compare
// case-insensitively.
func (l *Locator) key(p string) string {
	k := filepath.Clean(strings.ReplaceAll(p, `\`, "/"))
	if l.Env.Host().Windows() {
		k = strings.ToLower(k)
	}
	return k
}

// Locate returns the first candidate holding the automation tool. When no
// path candidate verifies, launcher registry entries are tried in sorted
// key order.
func (l *Locator) Locate(ctx context.Context) (Installation, bool) {
	log := l.logger()

	for _, c := range l.Candidates() {
		if ctx.Err() != nil {
			return Installation{}, false
		}
		if l.verify(c.Path) {
			log.Debug("engine_located", slog.String("root", c.Path), slog.String("source", string(c.Source)))
			return Installation{Root: c.Path, Source: c.Source}, true
		}
		log.Debug("engine_candidate_rejected", slog.String("root", c.Path))
	}

	root := hostenv.RegistryKey{Path: RegistryRoot}
	versions, err := l.Env.RegistrySubKeys(root)
	if err != nil {
		log.Debug("engine_registry_unavailable", slog.String("error", err.Error()))
		return Installation{}, false
	}
	for _, v := range versions {
		if ctx.Err() != nil {
			return Installation{}, false
		}
		key := hostenv.RegistryKey{Path: RegistryRoot + `\` + v}
		dir, err := l.Env.RegistryString(key, "InstalledDirectory")
		if err != nil || dir == "" {
			continue
		}
		if l.verify(dir) {
			log.Debug("engine_located", slog.String("root", dir), slog.String("source", string(SourceRegistry)),
				slog.String("version", v))
			return Installation{Root: dir, Source: SourceRegistry}, true
		}
	}
	return Installation{}, false
}

func (l *Locator) verify(root string) bool {
	return l.Env.DirExists(root) && l.Env.FileExists(AutomationToolPath(root))
}
