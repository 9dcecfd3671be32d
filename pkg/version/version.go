// Package version reports how the uecheck binary was built.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Version is set with -ldflags "-X github.com/Aman-CERP/uecheck/pkg/version.Version=v1.2.3".
var Version = "dev"

// Commit and Date may be set with -ldflags. When left unset they are filled
// from the VCS stamp the go command embeds in the binary.
var (
	Commit = ""
	Date   = ""
)

// EngineVersion is the Unreal Engine release whose toolchain uecheck checks.
const EngineVersion = "4.27"

// BuildInfo is the structured form printed by `uecheck version --json`.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified"`
	Engine    string `json:"engine"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

var (
	infoOnce sync.Once
	info     BuildInfo
)

// GetInfo returns the build information, resolved once per process.
func GetInfo() BuildInfo {
	infoOnce.Do(func() {
		var settings []debug.BuildSetting
		if bi, ok := debug.ReadBuildInfo(); ok {
			settings = bi.Settings
		}
		info = resolve(Commit, Date, settings)
	})
	return info
}

// resolve merges ldflags values with the embedded VCS settings. Explicit
// ldflags values win.
func resolve(commit, date string, settings []debug.BuildSetting) BuildInfo {
	bi := BuildInfo{
		Version:   Version,
		Commit:    commit,
		Date:      date,
		Engine:    EngineVersion,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "" {
				bi.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if bi.Date == "" {
				bi.Date = s.Value
			}
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}
	if bi.Commit == "" {
		bi.Commit = "unknown"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	return bi
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String returns the one-line form printed by `uecheck version`.
func String() string {
	bi := GetInfo()
	commit := bi.Commit
	if bi.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("uecheck %s for UE %s (commit: %s, built: %s, go: %s)",
		bi.Version, bi.Engine, commit, bi.Date, bi.GoVersion)
}

// Short returns just the version string.
func Short() string {
	return Version
}
