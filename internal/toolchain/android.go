package toolchain

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

// FindAndroidSDK resolves the SDK root: ANDROID_HOME, then
// ANDROID_SDK_ROOT, then well-known folders that contain adb.
// It returns "" when nothing is found.
func FindAndroidSDK(env hostenv.Env) string {
	if v := env.Getenv("ANDROID_HOME"); v != "" {
		return v
	}
	if v := env.Getenv("ANDROID_SDK_ROOT"); v != "" {
		return v
	}

	adb := env.Host().Exe("adb")
	candidates := []string{
		under(env, hostenv.LocalAppData, "Android", "Sdk"),
		under(env, hostenv.UserProfile, "AppData", "Local", "Android", "Sdk"),
	}
	candidates = append(candidates, windowsPaths(env, `C:\Android\Sdk`)...)
	for _, c := range candidates {
		if c != "" && env.DirExists(c) && env.FileExists(filepath.Join(c, "platform-tools", adb)) {
			return c
		}
	}
	return ""
}

// apiLevels lists the android-N platform levels installed in sdk, sorted.
func apiLevels(env hostenv.Env, sdk string) []int {
	names, err := env.ReadDirNames(filepath.Join(sdk, "platforms"))
	if err != nil {
		return nil
	}
	var levels []int
	for _, n := range names {
		rest, ok := strings.CutPrefix(n, "android-")
		if !ok {
			continue
		}
		if lvl, err := strconv.Atoi(rest); err == nil {
			levels = append(levels, lvl)
		}
	}
	sort.Ints(levels)
	return levels
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

type androidSDK struct {
	env     hostenv.Env
	allowed []int
}

// NewAndroidSDK checks for an Android SDK with at least one platform in
// the allowed API levels.
func NewAndroidSDK(env hostenv.Env, allowed []int) probe.Probe {
	return &androidSDK{env: env, allowed: allowed}
}

func (p *androidSDK) Name() string { return NameAndroidSDK }

func (p *androidSDK) Check(context.Context) probe.Result {
	sdk := FindAndroidSDK(p.env)
	if sdk == "" || !p.env.DirExists(sdk) {
		return probe.NotFound("set ANDROID_HOME or ANDROID_SDK_ROOT")
	}

	installed := apiLevels(p.env, sdk)
	var matched []int
	for _, lvl := range installed {
		for _, want := range p.allowed {
			if lvl == want {
				matched = append(matched, lvl)
			}
		}
	}
	if len(matched) > 0 {
		return probe.OK(fmt.Sprintf("%s (API %s)", sdk, joinInts(matched)))
	}

	found := "none"
	if len(installed) > 0 {
		found = joinInts(installed)
	}
	return probe.Incompatible(fmt.Sprintf("%s is missing required API levels (need one of %s, found %s)",
		sdk, joinInts(p.allowed), found))
}

type androidNDK struct {
	env  hostenv.Env
	hint string
}

// NewAndroidNDK checks for an NDK either at a root containing ndk-build or
// in a versioned subdirectory of one.
func NewAndroidNDK(env hostenv.Env, hint string) probe.Probe {
	return &androidNDK{env: env, hint: hint}
}

func (p *androidNDK) Name() string { return NameAndroidNDK }

// candidates lists NDK search roots in priority order.
func (p *androidNDK) candidates() []string {
	var out []string
	switch {
	case p.env.Getenv("ANDROID_NDK_HOME") != "":
		out = append(out, p.env.Getenv("ANDROID_NDK_HOME"))
	case p.env.Getenv("ANDROID_HOME") != "":
		home := p.env.Getenv("ANDROID_HOME")
		out = append(out, filepath.Join(home, "ndk-bundle"), filepath.Join(home, "ndk"))
	case p.env.Getenv("ANDROID_SDK_ROOT") != "":
		root := p.env.Getenv("ANDROID_SDK_ROOT")
		out = append(out, filepath.Join(root, "ndk-bundle"), filepath.Join(root, "ndk"))
	}

	out = append(out,
		under(p.env, hostenv.LocalAppData, "Android", "Sdk", "ndk-bundle"),
		under(p.env, hostenv.LocalAppData, "Android", "Sdk", "ndk"),
	)
	out = append(out, windowsPaths(p.env, `C:\Android\Sdk\ndk-bundle`, `C:\Android\Sdk\ndk`)...)
	return out
}

func (p *androidNDK) Check(context.Context) probe.Result {
	ndkBuild := p.env.Host().Cmd("ndk-build")

	for _, base := range p.candidates() {
		if base == "" || !p.env.DirExists(base) {
			continue
		}
		if p.env.FileExists(filepath.Join(base, ndkBuild)) {
			return probe.OK(base)
		}

		pattern := filepath.ToSlash(base) + "/*/" + ndkBuild
		matches, err := p.env.Glob(pattern)
		if err != nil || len(matches) == 0 {
			continue
		}
		// Glob results are sorted, so the first versioned NDK wins.
		return probe.OK(filepath.Dir(matches[0]))
	}

	return probe.NotFound(fmt.Sprintf("UE4.27 requires Android NDK %s or compatible", p.hint)).
		WithHints("Set ANDROID_NDK_HOME to the NDK root")
}

type androidStudio struct {
	env hostenv.Env
}

// NewAndroidStudio detects Android Studio. It is informational only.
func NewAndroidStudio(env hostenv.Env) probe.Probe {
	return &androidStudio{env: env}
}

func (p *androidStudio) Name() string { return NameAndroidStudio }

func (p *androidStudio) Check(context.Context) probe.Result {
	rel := []string{"Android", "Android Studio", "bin", "studio64.exe"}
	candidates := []string{
		under(p.env, hostenv.ProgramFiles, rel...),
		under(p.env, hostenv.LocalAppData, rel...),
	}
	candidates = append(candidates, windowsPaths(p.env, `C:\Program Files\Android\Android Studio\bin\studio64.exe`)...)

	for _, c := range candidates {
		if c != "" && p.env.FileExists(c) {
			return probe.OK(filepath.Dir(filepath.Dir(c)))
		}
	}
	return probe.NotFound("studio64.exe not found")
}
