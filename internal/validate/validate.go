// Package validate runs the full uecheck pipeline: input validation,
// toolchain probes, readiness, engine location, platform certification
// and command synthesis.
package validate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/Aman-CERP/uecheck/internal/certify"
	"github.com/Aman-CERP/uecheck/internal/config"
	"github.com/Aman-CERP/uecheck/internal/engine"
	"github.com/Aman-CERP/uecheck/internal/errors"
	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
	"github.com/Aman-CERP/uecheck/internal/project"
	"github.com/Aman-CERP/uecheck/internal/synth"
	"github.com/Aman-CERP/uecheck/internal/toolchain"
)

// RequestArgs is the raw packaging request from the command line.
type RequestArgs struct {
	ProjectFile string
	OutputDir   string
	Platform    string
}

// Options controls a run.
type Options struct {
	// Request is nil for a probes-only run.
	Request *RequestArgs
	// WriteScript persists the launcher script beside the descriptor.
	WriteScript bool
	// ListTargets runs the engine build script with -list when Android
	// certification fails.
	ListTargets bool
}

// Deps are the collaborators of a run.
type Deps struct {
	Env    hostenv.Env
	Config *config.Config
	Logger *slog.Logger
	// Registry overrides the default probe registry.
	Registry *probe.Registry
}

// Outcome is everything a run produced. Later stages are nil when the run
// stopped before reaching them.
type Outcome struct {
	RunID         string               `json:"run_id"`
	Report        probe.Report         `json:"report"`
	Request       *synth.Request       `json:"request,omitempty"`
	Descriptor    *project.Descriptor  `json:"descriptor,omitempty"`
	Engine        *engine.Installation `json:"engine,omitempty"`
	Certification *certify.Report      `json:"certification,omitempty"`
	Remediation   []string             `json:"remediation,omitempty"`
	BuildTargets  string               `json:"build_targets,omitempty"`
	Command       *synth.Command       `json:"command,omitempty"`
	CommandLine   string               `json:"command_line,omitempty"`
	Script        *synth.Script        `json:"script,omitempty"`
	Written       *synth.WriteResult   `json:"written,omitempty"`
	Notes         []string             `json:"notes,omitempty"`
	Warnings      []string             `json:"warnings,omitempty"`
}

// Synthesized reports whether a packaging command was produced.
func (o Outcome) Synthesized() bool {
	return o.Command != nil
}

// Run executes the pipeline. Invalid input is rejected before any probe
// runs. Without a request only the probes run. With a request, synthesis
// happens only when the toolchain is ready, an engine is found and the
// platform is certified; otherwise the matching CheckError is returned
// together with the partial outcome. A failed script write is a warning.
func Run(ctx context.Context, deps Deps, opts Options) (Outcome, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	runID := ulid.Make().String()
	base := deps.Logger
	if base == nil {
		base = slog.Default()
	}
	log := base.With(slog.String("run_id", runID))
	out := Outcome{RunID: runID}

	var req synth.Request
	if opts.Request != nil {
		r, err := synth.NewRequest(opts.Request.ProjectFile, opts.Request.OutputDir, opts.Request.Platform)
		if err != nil {
			log.Debug("input_invalid", errors.FormatForLog(err)...)
			return out, err
		}
		req = r
		out.Request = &req

		desc, warnings, err := project.Inspect(req.ProjectFile, req.Platform.String())
		if err != nil {
			return out, err
		}
		out.Descriptor = &desc
		out.Warnings = append(out.Warnings, warnings...)
	}

	reg := deps.Registry
	if reg == nil {
		reg = toolchain.DefaultRegistry(deps.Env, toolchain.OptionsFromConfig(cfg))
	}
	runner := probe.NewRunner(probe.WithParallelism(cfg.Probes.Parallelism), probe.WithLogger(log))
	out.Report = runner.Run(ctx, reg)

	if opts.Request == nil {
		return out, nil
	}
	if err := ctx.Err(); err != nil {
		return out, canceled(err)
	}
	if !out.Report.Ready {
		err := errors.NotReadyError(out.Report.Unmet())
		log.Info("synthesis_skipped", slog.String("reason", "not_ready"))
		return out, err
	}

	loc := engine.NewLocator(deps.Env, cfg)
	loc.Logger = log
	inst, ok := loc.Locate(ctx)
	if err := ctx.Err(); err != nil {
		return out, canceled(err)
	}
	if !ok {
		return out, errors.EngineNotFound()
	}
	out.Engine = &inst

	cert := certify.New(deps.Env, cfg.Linux.ToolchainRoots)
	cert.Logger = log
	rep, err := cert.Certify(ctx, inst, req.Platform)
	if err != nil {
		return out, errors.InternalError("certification did not complete", err)
	}
	out.Certification = &rep
	if !rep.Certified {
		out.Remediation = cert.Remediation(rep, inst)
		if opts.ListTargets && req.Platform == synth.Android {
			targets, err := engine.ListBuildTargets(ctx, deps.Env, inst)
			if err != nil {
				out.Warnings = append(out.Warnings, "could not list build targets: "+err.Error())
			} else {
				out.BuildTargets = targets
			}
		}
		return out, certificationError(rep, out.Remediation)
	}

	host := deps.Env.Host()
	cmd := synth.Build(inst, req, host)
	script := synth.NewScript(cmd, req, host)
	out.Command = &cmd
	out.CommandLine = cmd.Render(host)
	out.Script = &script
	out.Notes = synth.Notes(req.Platform, req.ProjectName())

	if opts.WriteScript {
		retry := errors.DefaultRetryConfig()
		retry.MaxRetries = cfg.Script.Retries
		res, err := synth.WriteScript(ctx, script, retry)
		if err != nil {
			log.Info("script_write_failed", errors.FormatForLog(err)...)
			out.Warnings = append(out.Warnings, err.Error())
		} else {
			out.Written = &res
		}
	}

	log.Info("synthesis_complete",
		slog.String("platform", req.Platform.String()),
		slog.String("engine", inst.Root),
		slog.Bool("script_written", out.Written != nil))
	return out, nil
}

func certificationError(rep certify.Report, remediation []string) error {
	var msg string
	if rep.Platform == synth.Android {
		msg = "Android support not found in UE4 installation"
	} else {
		msg = "Linux cross-compilation toolchain not found or incomplete"
	}
	e := errors.CertificationError(msg).
		WithDetail("platform", rep.Platform.String()).
		WithDetail("missing", strings.Join(rep.Missing, "; ")).
		WithRemediation(remediation...)
	if rep.Platform == synth.Android {
		e.WithSuggestion("Rebuild the engine with the Android SDK and NDK detected")
	} else {
		e.WithSuggestion("Install the UE4 Linux cross toolchain or set LINUX_MULTIARCH_ROOT")
	}
	return e
}

func canceled(err error) error {
	return errors.InternalError("validation canceled", err)
}
