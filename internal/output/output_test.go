package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-CERP/uecheck/internal/ui"
)

func TestWriter_Success_PrintsCheckmark(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf)

	// When: printing a success message
	w.Success("git: git version 2.44.0")

	// Then: output contains checkmark and message
	assert.Equal(t, "✅ git: git version 2.44.0\n", buf.String())
}

func TestWriter_Warning_PrintsWarningIcon(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Warningf("java_jdk: %s", "JDK 17 found")

	assert.Contains(t, buf.String(), "⚠️")
	assert.Contains(t, buf.String(), "java_jdk: JDK 17 found")
}

func TestWriter_Error_PrintsCross(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Errorf("missing %d components", 3)

	assert.Equal(t, "❌ missing 3 components\n", buf.String())
}

func TestWriter_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Info("oculus_sdk: not found")

	assert.Contains(t, buf.String(), "ℹ️")
	assert.Contains(t, buf.String(), "oculus_sdk: not found")
}

func TestWriter_Status_NoIconIndents(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Status("", "detail")

	assert.Equal(t, "   detail\n", buf.String())
}

func TestWriter_Section(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Section("GENERATED PACKAGING COMMAND")

	assert.Equal(t, "\n=== GENERATED PACKAGING COMMAND ===\n", buf.String())
}

func TestWriter_Code_IndentsEachLine(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.Code("Setup.bat\nGenerateProjectFiles.bat\n")

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"  Setup.bat", "  GenerateProjectFiles.bat"}, lines)
}

func TestWriter_List(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	w.List([]string{"android_sdk", "android_ndk"})

	assert.Equal(t, "  - android_sdk\n  - android_ndk\n", buf.String())
}

func TestWriter_WithStylesPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, WithStyles(ui.NoColorStyles()))

	w.Line("plain")
	w.Linef("%s=%d", "k", 1)
	w.Newline()

	assert.Equal(t, "plain\nk=1\n\n", buf.String())
	assert.Same(t, buf, w.Out())
}
