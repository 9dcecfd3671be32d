package toolchain

import (
	"context"
	"fmt"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

// ndpKey is read through the 32-bit registry view.
var ndpKey = hostenv.RegistryKey{
	Path:   `SOFTWARE\Microsoft\NET Framework Setup\NDP\v4\Full`,
	View32: true,
}

// MinDotNetRelease is the NDP Release value of .NET Framework 4.6.2.
const MinDotNetRelease = 394802

// dotNetReleases maps minimum Release values to framework versions,
// newest first.
var dotNetReleases = []struct {
	release uint64
	version string
}{
	{533320, "4.8.1"},
	{528040, "4.8"},
	{461808, "4.7.2"},
	{461308, "4.7.1"},
	{460798, "4.7"},
	{394802, "4.6.2"},
	{394254, "4.6.1"},
	{393295, "4.6"},
	{379893, "4.5.2"},
}

// DotNetVersion names the framework version for an NDP Release value.
func DotNetVersion(release uint64) string {
	for _, r := range dotNetReleases {
		if release >= r.release {
			return r.version
		}
	}
	return "4.5 or older"
}

type dotNet struct {
	env hostenv.Env
}

// NewDotNet checks for the .NET Framework 4.6.2 developer pack.
func NewDotNet(env hostenv.Env) probe.Probe {
	return &dotNet{env: env}
}

func (p *dotNet) Name() string { return NameDotNet }

func (p *dotNet) Check(context.Context) probe.Result {
	release, err := p.env.RegistryInt(ndpKey, "Release")
	if err != nil {
		return probe.NotFound(".NET Framework 4.x registry key not found")
	}
	if release < MinDotNetRelease {
		return probe.Incompatible(fmt.Sprintf("release %d (%s), need 4.6.2 or newer", release, DotNetVersion(release)))
	}
	return probe.OK(fmt.Sprintf("release %d (%s)", release, DotNetVersion(release)))
}
