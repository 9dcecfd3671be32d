package toolchain

import (
	"context"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

type cmake struct {
	env hostenv.Env
}

// NewCMake checks for cmake on PATH.
func NewCMake(env hostenv.Env) probe.Probe {
	return &cmake{env: env}
}

func (p *cmake) Name() string { return NameCMake }

func (p *cmake) Check(ctx context.Context) probe.Result {
	res, err := p.env.Exec(ctx, "cmake", "--version")
	if err != nil || !strings.Contains(res.Stdout, "cmake version") {
		return probe.NotFound("cmake not found")
	}
	line := firstLine(res.Stdout)
	if v, ok := strings.CutPrefix(line, "cmake version"); ok {
		return probe.OK("version " + strings.TrimSpace(v))
	}
	return probe.OK("")
}

type git struct {
	env hostenv.Env
}

// NewGit checks for git on PATH.
func NewGit(env hostenv.Env) probe.Probe {
	return &git{env: env}
}

func (p *git) Name() string { return NameGit }

func (p *git) Check(ctx context.Context) probe.Result {
	res, err := p.env.Exec(ctx, "git", "--version")
	if err != nil || !strings.Contains(strings.ToLower(res.Stdout), "git version") {
		return probe.NotFound("git not found")
	}
	return probe.OK(strings.TrimSpace(res.Stdout))
}
