package toolchain

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

// Toolchain releases supported by UE 4.27.
var linuxToolchainDirs = []string{
	"v19_clang-11.0.1-centos7",
	"v20_clang-13.0.1-centos7",
}

// LinuxSetupHints are shown when no cross toolchain is found.
var LinuxSetupHints = []string{
	"Download the UE4 Linux toolchain v19_clang-11.0.1-centos7 from Epic Games",
	`Extract it to C:\UnrealToolchains\v19_clang-11.0.1-centos7\`,
	"Or set LINUX_MULTIARCH_ROOT to your toolchain root directory",
	"Verify bin/clang++.exe, lib/gcc/ and x86_64-unknown-linux-gnu/ exist",
}

// LinuxToolchain locates the clang cross-compile toolchain. It serves both
// as a readiness probe and as the Linux platform certifier.
type LinuxToolchain struct {
	env   hostenv.Env
	extra []string
}

// LinuxInspection is the structural result of a toolchain search.
type LinuxInspection struct {
	// Root is the first candidate holding a compiler, or "".
	Root string
	// Missing lists required components absent from Root.
	Missing []string
}

// Found reports whether a candidate root was matched.
func (i LinuxInspection) Found() bool { return i.Root != "" }

// Complete reports whether the matched root has every component.
func (i LinuxInspection) Complete() bool { return i.Found() && len(i.Missing) == 0 }

// NewLinuxToolchain creates the cross toolchain probe. extra roots are
// searched after the built-in candidates.
func NewLinuxToolchain(env hostenv.Env, extra []string) *LinuxToolchain {
	return &LinuxToolchain{env: env, extra: extra}
}

// Name implements probe.Probe.
func (p *LinuxToolchain) Name() string { return NameLinuxToolchain }

// Candidates returns the search roots in priority order.
func (p *LinuxToolchain) Candidates() []string {
	var out []string
	for _, base := range windowsPaths(p.env, `C:\UnrealToolchains`) {
		for _, d := range linuxToolchainDirs {
			out = append(out, filepath.Join(base, d))
		}
	}
	for _, d := range linuxToolchainDirs {
		out = append(out, under(p.env, hostenv.ProgramFiles, "UnrealToolchains", d))
	}
	out = append(out, p.env.Getenv("LINUX_MULTIARCH_ROOT"))
	for _, base := range windowsPaths(p.env, `D:\UnrealToolchains`) {
		for _, d := range linuxToolchainDirs {
			out = append(out, filepath.Join(base, d))
		}
	}
	return append(out, p.extra...)
}

// Inspect finds the first root holding a compiler and lists the required
// components it lacks.
func (p *LinuxToolchain) Inspect() LinuxInspection {
	host := p.env.Host()
	clang := filepath.Join("bin", host.Exe("clang++"))
	gcc := filepath.Join("bin", host.Exe("x86_64-unknown-linux-gnu-gcc"))

	for _, root := range p.Candidates() {
		if root == "" || !p.env.DirExists(root) {
			continue
		}
		if !p.env.FileExists(filepath.Join(root, clang)) && !p.env.FileExists(filepath.Join(root, gcc)) {
			continue
		}

		insp := LinuxInspection{Root: root}
		for _, comp := range []string{clang, filepath.Join("lib", "gcc"), "x86_64-unknown-linux-gnu"} {
			full := filepath.Join(root, comp)
			if !p.env.FileExists(full) && !p.env.DirExists(full) {
				insp.Missing = append(insp.Missing, comp)
			}
		}
		return insp
	}
	return LinuxInspection{}
}

// Check implements probe.Probe. A root with a compiler but missing
// components is Incompatible, never OK.
func (p *LinuxToolchain) Check(context.Context) probe.Result {
	insp := p.Inspect()
	switch {
	case !insp.Found():
		return probe.NotFound("Linux cross-compilation toolchain not found").WithHints(LinuxSetupHints...)
	case !insp.Complete():
		return probe.Incompatible(fmt.Sprintf("incomplete toolchain at %s: missing %s",
			insp.Root, strings.Join(insp.Missing, ", ")))
	default:
		return probe.OK(insp.Root)
	}
}
