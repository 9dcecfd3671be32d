package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

// The JDK probe deliberately passes non-8 JDKs with an advisory instead of
// blocking readiness.
func TestJavaJDK_AdvisoryPolicy(t *testing.T) {
	tests := []struct {
		name     string
		result   hostenv.ExecResult
		want     probe.Status
		advisory bool
	}{
		{"jdk8 on stderr", hostenv.ExecResult{Stderr: "javac 1.8.0_392\n"}, probe.StatusOK, false},
		{"jdk8 on stdout", hostenv.ExecResult{Stdout: "javac 1.8.0_202"}, probe.StatusOK, false},
		{"jdk11 advisory", hostenv.ExecResult{Stdout: "javac 11.0.21"}, probe.StatusOK, true},
		{"jdk17 patch 8 is not jdk8", hostenv.ExecResult{Stdout: "javac 17.0.8"}, probe.StatusOK, true},
		{"unparseable banner", hostenv.ExecResult{Stdout: "javac (unknown build)"}, probe.StatusOK, true},
		{"no banner", hostenv.ExecResult{Stdout: "error: something"}, probe.StatusNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := hostenv.NewWindowsFake()
			env.AddTool("javac", tt.result)

			res := check(t, NewJavaJDK(env))

			requireStatus(t, tt.want, res)
			assert.Equal(t, tt.advisory, res.Advisory)
		})
	}
}

func TestJavaJDK_Missing(t *testing.T) {
	res := check(t, NewJavaJDK(hostenv.NewWindowsFake()))

	requireStatus(t, probe.StatusNotFound, res)
}

func TestJavaMajor(t *testing.T) {
	assert.Equal(t, 8, JavaMajor("javac 1.8.0_392"))
	assert.Equal(t, 17, JavaMajor("javac 17.0.8"))
	assert.Equal(t, 21, JavaMajor("javac 21"))
	assert.Equal(t, 0, JavaMajor("openjdk"))
}
