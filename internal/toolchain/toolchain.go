// Package toolchain implements the probes that decide whether a Windows
// host can package Unreal Engine 4.27 projects for Android and Linux.
package toolchain

import (
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/config"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

// Probe names, in registration order.
const (
	NameDotNet         = "dotnet_framework"
	NameVisualStudio   = "visual_studio"
	NameAndroidSDK     = "android_sdk"
	NameAndroidNDK     = "android_ndk"
	NameJavaJDK        = "java_jdk"
	NameLinuxToolchain = "linux_toolchain"
	NameCMake          = "cmake"
	NameMSBuild        = "msbuild"
	NameGit            = "git"
	NameAndroidStudio  = "android_studio"
	NameOculusSDK      = "oculus_sdk"
)

// DefaultVSRange selects Visual Studio 2022.
const DefaultVSRange = "[17.0,18.0)"

// Options tunes the probes.
type Options struct {
	// APILevels is the Android platform allow-list.
	APILevels []int
	// NDKHint names the recommended NDK release.
	NDKHint string
	// LinuxRoots are extra cross-toolchain candidates searched last.
	LinuxRoots []string
	// VSRange is the vswhere -version range.
	VSRange string
}

// DefaultOptions returns the UE 4.27 defaults.
func DefaultOptions() Options {
	return Options{
		APILevels: []int{28, 29, 30},
		NDKHint:   "r21b",
		VSRange:   DefaultVSRange,
	}
}

// OptionsFromConfig derives probe options from configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if len(cfg.Android.APILevels) > 0 {
		opts.APILevels = append([]int(nil), cfg.Android.APILevels...)
	}
	if cfg.Android.NDKHint != "" {
		opts.NDKHint = cfg.Android.NDKHint
	}
	opts.LinuxRoots = append([]string(nil), cfg.Linux.ToolchainRoots...)
	return opts
}

// DefaultRegistry registers every probe in display order. Android Studio
// and the Oculus SDK are informational.
func DefaultRegistry(env hostenv.Env, opts Options) *probe.Registry {
	if opts.VSRange == "" {
		opts.VSRange = DefaultVSRange
	}
	reg := probe.NewRegistry()
	reg.MustRegister(NewDotNet(env), true)
	reg.MustRegister(NewVisualStudio(env, opts.VSRange), true)
	reg.MustRegister(NewAndroidSDK(env, opts.APILevels), true)
	reg.MustRegister(NewAndroidNDK(env, opts.NDKHint), true)
	reg.MustRegister(NewJavaJDK(env), true)
	reg.MustRegister(NewLinuxToolchain(env, opts.LinuxRoots), true)
	reg.MustRegister(NewCMake(env), true)
	reg.MustRegister(NewMSBuild(env), true)
	reg.MustRegister(NewGit(env), true)
	reg.MustRegister(NewAndroidStudio(env), false)
	reg.MustRegister(NewOculusSDK(env), false)
	return reg
}

// under joins parts below a known folder, or returns "" if the host lacks it.
func under(env hostenv.Env, f hostenv.KnownFolder, parts ...string) string {
	base := env.Folder(f)
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, parts...)...)
}

// firstLine returns the first non-blank line of s, trimmed.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}

// lastLine returns the last non-blank line of s, trimmed.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if t := strings.TrimSpace(lines[i]); t != "" {
			return t
		}
	}
	return ""
}

// windowsPaths returns paths on Windows hosts and nil elsewhere.
func windowsPaths(env hostenv.Env, paths ...string) []string {
	if !env.Host().Windows() {
		return nil
	}
	return paths
}
