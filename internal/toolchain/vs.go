package toolchain

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

// vswherePath locates vswhere.exe under Program Files (x86). PATH is
// never consulted.
func vswherePath(env hostenv.Env) string {
	p := under(env, hostenv.ProgramFilesX86, "Microsoft Visual Studio", "Installer", "vswhere.exe")
	if p == "" || !env.FileExists(p) {
		return ""
	}
	return p
}

type visualStudio struct {
	env     hostenv.Env
	version string
}

// NewVisualStudio checks for a Visual Studio installation in the given
// vswhere version range.
func NewVisualStudio(env hostenv.Env, versionRange string) probe.Probe {
	return &visualStudio{env: env, version: versionRange}
}

func (p *visualStudio) Name() string { return NameVisualStudio }

func (p *visualStudio) Check(ctx context.Context) probe.Result {
	vswhere := vswherePath(p.env)
	if vswhere == "" {
		return probe.NotFound("vswhere.exe not found")
	}
	res, err := p.env.Exec(ctx, vswhere, "-version", p.version, "-latest", "-property", "installationPath")
	if err != nil {
		return probe.NotFound(fmt.Sprintf("vswhere failed: %v", err))
	}
	path := firstLine(res.Stdout)
	if path != "" {
		return probe.OK(path)
	}
	if found := p.latestVersion(ctx, vswhere); found != "" {
		return probe.Incompatible(fmt.Sprintf("found %s, need %s", found, p.version))
	}
	return probe.NotFound(fmt.Sprintf("no installation in range %s", p.version))
}

// latestVersion returns the newest installed version regardless of range.
func (p *visualStudio) latestVersion(ctx context.Context, vswhere string) string {
	res, err := p.env.Exec(ctx, vswhere, "-latest", "-property", "installationVersion")
	if err != nil {
		return ""
	}
	return firstLine(res.Stdout)
}

var bareVersion = regexp.MustCompile(`^\d+\.\d+(\.\d+)*`)

// msbuildBanner reports whether out looks like msbuild -version output.
func msbuildBanner(out string) bool {
	lower := strings.ToLower(out)
	if strings.Contains(lower, "msbuild version") {
		return true
	}
	if strings.Contains(lower, "microsoft") && strings.Contains(lower, "build engine") {
		return true
	}
	return bareVersion.MatchString(lastLine(out))
}

type msBuild struct {
	env hostenv.Env
}

// NewMSBuild checks for MSBuild, preferring the copy vswhere reports and
// falling back to msbuild on PATH.
func NewMSBuild(env hostenv.Env) probe.Probe {
	return &msBuild{env: env}
}

func (p *msBuild) Name() string { return NameMSBuild }

func (p *msBuild) Check(ctx context.Context) probe.Result {
	if exe := p.fromVSWhere(ctx); exe != "" {
		if res, ok := p.version(ctx, exe); ok {
			return res
		}
	}
	if exe, err := p.env.LookPath("msbuild"); err == nil {
		if res, ok := p.version(ctx, exe); ok {
			return res
		}
	}
	return probe.NotFound("msbuild not found via vswhere or PATH")
}

func (p *msBuild) fromVSWhere(ctx context.Context) string {
	vswhere := vswherePath(p.env)
	if vswhere == "" {
		return ""
	}
	res, err := p.env.Exec(ctx, vswhere, "-latest", "-products", "*",
		"-requires", "Microsoft.Component.MSBuild", "-property", "installationPath")
	if err != nil {
		return ""
	}
	vsPath := firstLine(res.Stdout)
	if vsPath == "" {
		return ""
	}
	for _, rel := range []string{"Current", "15.0"} {
		exe := filepath.Join(vsPath, "MSBuild", rel, "Bin", "MSBuild.exe")
		if p.env.FileExists(exe) {
			return exe
		}
	}
	return ""
}

func (p *msBuild) version(ctx context.Context, exe string) (probe.Result, bool) {
	res, err := p.env.Exec(ctx, exe, "-version")
	if err != nil {
		return probe.Result{}, false
	}
	if !msbuildBanner(res.Stdout) {
		return probe.Result{}, false
	}
	return probe.OK(firstLine(res.Stdout)), true
}
