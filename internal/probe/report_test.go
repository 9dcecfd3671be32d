package probe

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/uecheck/internal/output"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    bool
	}{
		{"empty is ready", nil, true},
		{"all required ok", []Entry{
			{Name: "a", Required: true, Result: OK("")},
			{Name: "b", Required: true, Result: Advise("old")},
		}, true},
		{"required not found", []Entry{
			{Name: "a", Required: true, Result: OK("")},
			{Name: "b", Required: true, Result: NotFound("")},
		}, false},
		{"required incompatible", []Entry{
			{Name: "a", Required: true, Result: Incompatible("release 1")},
		}, false},
		{"informational failure ignored", []Entry{
			{Name: "a", Required: true, Result: OK("")},
			{Name: "i", Required: false, Result: NotFound("")},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.entries))
		})
	}
}

func TestAggregate_IffEveryRequiredOK(t *testing.T) {
	// Exhaustive over three required probes and one informational probe.
	statuses := []Status{StatusOK, StatusNotFound, StatusIncompatible}
	for _, a := range statuses {
		for _, b := range statuses {
			for _, c := range statuses {
				for _, info := range statuses {
					entries := []Entry{
						{Name: "a", Required: true, Result: Result{Status: a}},
						{Name: "b", Required: true, Result: Result{Status: b}},
						{Name: "c", Required: true, Result: Result{Status: c}},
						{Name: "i", Required: false, Result: Result{Status: info}},
					}
					want := a == StatusOK && b == StatusOK && c == StatusOK
					assert.Equal(t, want, Aggregate(entries), "%v %v %v %v", a, b, c, info)
				}
			}
		}
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	statuses := []Status{StatusOK, StatusNotFound, StatusIncompatible}

	for trial := 0; trial < 200; trial++ {
		entries := make([]Entry, 9)
		for i := range entries {
			st := StatusOK
			if rng.Intn(4) == 0 {
				st = statuses[rng.Intn(len(statuses))]
			}
			entries[i] = Entry{Required: rng.Intn(5) != 0, Result: Result{Status: st}}
		}
		want := Aggregate(entries)

		shuffled := append([]Entry(nil), entries...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestReport_UnmetAndAdvisories(t *testing.T) {
	report := NewReport([]Entry{
		{Name: "visual_studio", Required: true, Result: NotFound("")},
		{Name: "java_jdk", Required: true, Result: Advise("javac 17.0.2")},
		{Name: "android_sdk", Required: true, Result: Incompatible("levels 26")},
		{Name: "oculus_sdk", Required: false, Result: NotFound("")},
	})

	assert.False(t, report.Ready)
	assert.Equal(t, []string{"visual_studio", "android_sdk"}, report.Unmet())
	adv := report.Advisories()
	require.Len(t, adv, 1)
	assert.Equal(t, "java_jdk", adv[0].Name)
}

func TestReport_Print(t *testing.T) {
	report := NewReport([]Entry{
		{Name: "git", Required: true, Result: OK("git version 2.44.0")},
		{Name: "java_jdk", Required: true, Result: Advise("javac 17")},
		{Name: "linux_toolchain", Required: true, Result: NotFound("no toolchain").WithHints("Set LINUX_MULTIARCH_ROOT")},
		{Name: "oculus_sdk", Required: false, Result: NotFound("")},
	})
	buf := &bytes.Buffer{}

	report.Print(output.New(buf), false)

	out := buf.String()
	assert.Contains(t, out, "=== TOOLCHAIN CHECK ===")
	assert.Contains(t, out, "✅ git: git version 2.44.0")
	assert.Contains(t, out, "⚠️  java_jdk: javac 17")
	assert.Contains(t, out, "❌ linux_toolchain: NOT_FOUND - no toolchain")
	assert.Contains(t, out, "   Set LINUX_MULTIARCH_ROOT")
	assert.Contains(t, out, "oculus_sdk: NOT_FOUND [informational]")
	assert.Contains(t, out, "Status: NOT READY (1 unmet requirement(s))")
	assert.Contains(t, out, "  - linux_toolchain")

	// Registration order is kept in the rendering.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("git:")), bytes.Index(buf.Bytes(), []byte("java_jdk:")))
}

func TestReport_PrintReady(t *testing.T) {
	report := NewReport([]Entry{{Name: "git", Required: true, Result: OK("")}})
	buf := &bytes.Buffer{}

	report.Print(output.New(buf), true)

	assert.Contains(t, buf.String(), "✅ git: OK (0s)")
	assert.Contains(t, buf.String(), "Status: READY")
}
