package probe

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{StatusNotFound, "NOT_FOUND"},
		{StatusIncompatible, "INCOMPATIBLE"},
		{Status(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(Incompatible("release 379893"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"INCOMPATIBLE","detail":"release 379893"}`, string(data))

	var res Result
	require.NoError(t, json.Unmarshal([]byte(`{"status":"not_found"}`), &res))
	assert.Equal(t, StatusNotFound, res.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"maybe"}`), &res))
}

func TestResultConstructors(t *testing.T) {
	assert.True(t, OK("v").IsOK())
	assert.False(t, OK("v").Advisory)

	adv := Advise("JDK 17, JDK 8 recommended")
	assert.True(t, adv.IsOK())
	assert.True(t, adv.Advisory)

	assert.False(t, NotFound("").IsOK())
	assert.False(t, Incompatible("x").IsOK())
}

func TestResult_WithHintsDoesNotAlias(t *testing.T) {
	base := NotFound("toolchain").WithHints("step 1")
	a := base.WithHints("a")
	b := base.WithHints("b")

	assert.Equal(t, []string{"step 1"}, base.Hints)
	assert.Equal(t, []string{"step 1", "a"}, a.Hints)
	assert.Equal(t, []string{"step 1", "b"}, b.Hints)
}

func TestFunc(t *testing.T) {
	p := Func("git", func(context.Context) Result { return OK("git version 2.44") })

	assert.Equal(t, "git", p.Name())
	assert.Equal(t, OK("git version 2.44"), p.Check(context.Background()))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Func("a", nil), true))
	require.NoError(t, reg.Register(Func("b", nil), false))

	err := reg.Register(Func("a", nil), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	assert.Error(t, reg.Register(nil, true))
	assert.Error(t, reg.Register(Func("", nil), true))

	assert.Equal(t, 2, reg.Len())
	regs := reg.Registrations()
	assert.Equal(t, "a", regs[0].Probe.Name())
	assert.True(t, regs[0].Required)
	assert.Equal(t, "b", regs[1].Probe.Name())
	assert.False(t, regs[1].Required)

	got, ok := reg.Lookup("b")
	require.True(t, ok)
	assert.False(t, got.Required)
	_, ok = reg.Lookup("zzz")
	assert.False(t, ok)
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Func("a", nil), true)

	assert.Panics(t, func() { reg.MustRegister(Func("a", nil), true) })
}
