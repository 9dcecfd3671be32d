package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/hostenv/hostenvtest"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

func TestLinuxToolchain_NotFound(t *testing.T) {
	res := check(t, NewLinuxToolchain(hostenv.NewWindowsFake(), nil))

	requireStatus(t, probe.StatusNotFound, res)
	assert.Equal(t, LinuxSetupHints, res.Hints)
}

func TestLinuxToolchain_Complete(t *testing.T) {
	env := hostenv.NewWindowsFake()
	hostenvtest.AddToolchain(env, `C:\UnrealToolchains\v20_clang-13.0.1-centos7`)

	res := check(t, NewLinuxToolchain(env, nil))

	requireStatus(t, probe.StatusOK, res)
	assert.Contains(t, res.Detail, "v20_clang-13.0.1-centos7")
}

func TestLinuxToolchain_PartialIsIncompatible(t *testing.T) {
	// Given: a toolchain with only the gcc driver present
	env := hostenv.NewWindowsFake()
	env.AddFile(`C:\UnrealToolchains\v19_clang-11.0.1-centos7\bin\x86_64-unknown-linux-gnu-gcc.exe`)

	// When: checking
	p := NewLinuxToolchain(env, nil)
	res := check(t, p)

	// Then: every missing component is listed
	requireStatus(t, probe.StatusIncompatible, res)
	assert.Contains(t, res.Detail, "incomplete")
	insp := p.Inspect()
	require.True(t, insp.Found())
	assert.False(t, insp.Complete())
	assert.Len(t, insp.Missing, 3)
}

func TestLinuxToolchain_PriorityOrder(t *testing.T) {
	// Given: toolchains under the env var and on C:
	env := hostenv.NewWindowsFake()
	hostenvtest.AddToolchain(env, `E:\tc\multiarch`)
	hostenvtest.AddToolchain(env, `C:\UnrealToolchains\v20_clang-13.0.1-centos7`)
	env.SetEnv("LINUX_MULTIARCH_ROOT", `E:\tc\multiarch`)

	// Then: the fixed C: root wins
	insp := NewLinuxToolchain(env, nil).Inspect()
	assert.Contains(t, insp.Root, `C:\UnrealToolchains`)
}

func TestLinuxToolchain_EnvVarAndExtraRoots(t *testing.T) {
	env := hostenv.NewWindowsFake()
	hostenvtest.AddToolchain(env, `F:\extra`)

	p := NewLinuxToolchain(env, []string{`F:\extra`})
	assert.Equal(t, `F:\extra`, p.Inspect().Root)

	hostenvtest.AddToolchain(env, `E:\multi`)
	env.SetEnv("LINUX_MULTIARCH_ROOT", `E:\multi`)
	assert.Equal(t, `E:\multi`, p.Inspect().Root)
}

func TestLinuxToolchain_CandidatesDeterministic(t *testing.T) {
	env := hostenv.NewWindowsFake().SetEnv("LINUX_MULTIARCH_ROOT", `E:\m`)
	p := NewLinuxToolchain(env, []string{`F:\x`})

	first := p.Candidates()
	assert.Equal(t, first, p.Candidates())
	assert.Equal(t, `F:\x`, first[len(first)-1])
	assert.Contains(t, first, `E:\m`)
}
