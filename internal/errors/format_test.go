package errors

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForCLI_IncludesHintRemediationAndCode(t *testing.T) {
	// Given: a certification error with remediation
	err := CertificationError("Android support not found in engine installation").
		WithSuggestion("Rebuild the engine with Android SDK/NDK detected").
		WithRemediation("Setup.bat", "GenerateProjectFiles.bat")

	// When: formatting for CLI
	out := FormatForCLI(err)

	// Then: all parts are present in order
	assert.Contains(t, out, "Error: Android support not found")
	assert.Contains(t, out, "Hint: Rebuild the engine")
	assert.Contains(t, out, "Remediation:\n    Setup.bat\n    GenerateProjectFiles.bat\n")
	assert.Contains(t, out, "Code: ERR_401_CERTIFICATION_FAILED")
}

func TestFormatForCLI_WarningPrefix(t *testing.T) {
	out := FormatForCLI(ScriptWriteError("/p/x.bat", errors.New("denied")))

	assert.Contains(t, out, "Warning: could not create script file: denied")
}

func TestFormatForCLI_PlainError(t *testing.T) {
	out := FormatForCLI(errors.New("something broke"))

	assert.Contains(t, out, "Error: something broke")
	assert.Contains(t, out, ErrCodeInternal)
	assert.Equal(t, "", FormatForCLI(nil))
}

func TestFormatJSON(t *testing.T) {
	err := EngineNotFound()

	data, jerr := FormatJSON(err)
	require.NoError(t, jerr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ErrCodeEngineNotFound, decoded["code"])
	assert.Equal(t, "LOCATOR", decoded["category"])
	assert.Equal(t, float64(ExitEngineMissing), decoded["exit_code"])
	assert.NotEmpty(t, decoded["suggestion"])
}

func TestFormatForLog_SortedDetails(t *testing.T) {
	err := InputError("bad", errors.New("cause")).
		WithDetail("b", "2").
		WithDetail("a", "1")

	attrs := FormatForLog(err)

	assert.Equal(t, []any{
		"error_code", ErrCodeInputInvalid,
		"message", "bad",
		"category", "INPUT",
		"severity", "ERROR",
		"cause", "cause",
		"detail_a", "1",
		"detail_b", "2",
	}, attrs)
	assert.Equal(t, []any{"error", "x"}, FormatForLog(errors.New("x")))
	assert.Nil(t, FormatForLog(nil))
}
