package toolchain

import (
	"context"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

type oculusSDK struct {
	env hostenv.Env
}

// NewOculusSDK looks for Oculus SDK or runtime installs. It is
// informational only.
func NewOculusSDK(env hostenv.Env) probe.Probe {
	return &oculusSDK{env: env}
}

func (p *oculusSDK) Name() string { return NameOculusSDK }

func (p *oculusSDK) Check(context.Context) probe.Result {
	runtime := under(p.env, hostenv.ProgramFiles, "Oculus", "Support", "oculus-runtime", "OVRServer_x64.exe")
	if runtime != "" && p.env.FileExists(runtime) {
		return probe.OK("Oculus runtime detected")
	}

	dirs := windowsPaths(p.env, `C:\OculusSDK`)
	dirs = append(dirs,
		under(p.env, hostenv.ProgramFiles, "Oculus"),
		under(p.env, hostenv.ProgramFilesX86, "Oculus"),
	)
	for _, d := range dirs {
		if d != "" && p.env.DirExists(d) {
			return probe.OK("Oculus SDK at " + d)
		}
	}
	return probe.NotFound("no Oculus SDK found, it may not be required for building")
}
