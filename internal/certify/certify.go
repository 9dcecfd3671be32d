// Package certify verifies that an engine installation can package for a
// target platform.
//
// Android is certified structurally: the automation scripts and platform
// modules only exist when the engine was built with Android support. Linux
// is certified by the cross toolchain check that also gates readiness.
package certify

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Aman-CERP/uecheck/internal/engine"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/synth"
	"github.com/Aman-CERP/uecheck/internal/toolchain"
)

// Report is the outcome of certifying one platform.
type Report struct {
	Platform synth.Platform `json:"platform"`
	// Missing lists every required component that was not found.
	Missing []string `json:"missing,omitempty"`
	// Found lists the components that were present.
	Found []string `json:"found,omitempty"`
	// Advisory lists optional components that were not found.
	Advisory []string `json:"advisory,omitempty"`
	// Certified is true iff Missing is empty.
	Certified bool `json:"certified"`
}

type component struct {
	label    string
	rel      []string
	dir      bool
	optional bool
}

var androidComponents = []component{
	{label: "Android.Automation.dll", rel: []string{"Engine", "Binaries", "DotNET", "AutomationScripts", "Android", "Android.Automation.dll"}},
	{label: "UnrealBuildTool Android platform source", rel: []string{"Engine", "Source", "Programs", "UnrealBuildTool", "Platform", "Android"}, dir: true},
	{label: "Android target platform module", rel: []string{"Engine", "Source", "Developer", "Android"}, dir: true},
	{label: "Android runtime support", rel: []string{"Engine", "Source", "Runtime", "Launch", "Private", "Android"}, dir: true, optional: true},
	{label: "Android toolchain source", rel: []string{"Engine", "Source", "Programs", "UnrealBuildTool", "Platform", "Android", "AndroidToolChain.cs"}, optional: true},
}

// Certifier checks platform support inside an installation.
type Certifier struct {
	Env hostenv.Env
	// LinuxRoots are extra cross toolchain roots searched last.
	LinuxRoots []string
	Logger     *slog.Logger
}

// New creates a certifier.
func New(env hostenv.Env, linuxRoots []string) *Certifier {
	return &Certifier{Env: env, LinuxRoots: linuxRoots}
}

// Certify checks every component for platform in one pass.
func (c *Certifier) Certify(ctx context.Context, inst engine.Installation, platform synth.Platform) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	var rep Report
	switch platform {
	case synth.Android:
		rep = c.android(inst)
	case synth.Linux:
		rep = c.linux()
	default:
		return Report{}, fmt.Errorf("certify: unknown platform %q", platform)
	}
	rep.Certified = len(rep.Missing) == 0

	log := c.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("certification_complete",
		slog.String("platform", platform.String()),
		slog.Bool("certified", rep.Certified),
		slog.Int("missing", len(rep.Missing)))
	return rep, nil
}

func (c *Certifier) android(inst engine.Installation) Report {
	rep := Report{Platform: synth.Android}
	for _, comp := range androidComponents {
		p := inst.Path(comp.rel...)
		var ok bool
		if comp.dir {
			ok = c.Env.DirExists(p)
		} else {
			ok = c.Env.FileExists(p)
		}

		switch {
		case ok:
			rep.Found = append(rep.Found, comp.label)
		case comp.optional:
			rep.Advisory = append(rep.Advisory, comp.label)
		default:
			rep.Missing = append(rep.Missing, p)
		}
	}
	return rep
}

func (c *Certifier) linux() Report {
	rep := Report{Platform: synth.Linux}
	insp := toolchain.NewLinuxToolchain(c.Env, c.LinuxRoots).Inspect()
	if !insp.Found() {
		rep.Missing = []string{"Linux cross-compilation toolchain"}
		return rep
	}
	rep.Found = []string{insp.Root}
	for _, m := range insp.Missing {
		rep.Missing = append(rep.Missing, filepath.Join(insp.Root, m))
	}
	return rep
}
