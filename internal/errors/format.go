package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display, followed by any
// remediation steps.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	var ce *CheckError
	if !stderrors.As(err, &ce) {
		ce = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	prefix := "Error"
	if ce.Severity == SeverityWarning {
		prefix = "Warning"
	}
	sb.WriteString(fmt.Sprintf("%s: %s\n", prefix, ce.Message))

	if ce.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", ce.Suggestion))
	}

	if len(ce.Remediation) > 0 {
		sb.WriteString("  Remediation:\n")
		for _, step := range ce.Remediation {
			sb.WriteString("    ")
			sb.WriteString(step)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("  Code: %s\n", ce.Code))

	return sb.String()
}

// jsonError is the JSON representation of an error.
type jsonError struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Category    string            `json:"category"`
	Severity    string            `json:"severity"`
	Details     map[string]string `json:"details,omitempty"`
	Suggestion  string            `json:"suggestion,omitempty"`
	Remediation []string          `json:"remediation,omitempty"`
	Cause       string            `json:"cause,omitempty"`
	ExitCode    int               `json:"exit_code"`
}

// FormatJSON returns a JSON representation of the error.
func FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return json.Marshal(nil)
	}

	var ce *CheckError
	if !stderrors.As(err, &ce) {
		ce = Wrap(ErrCodeInternal, err)
	}

	je := jsonError{
		Code:        ce.Code,
		Message:     ce.Message,
		Category:    string(ce.Category),
		Severity:    string(ce.Severity),
		Details:     ce.Details,
		Suggestion:  ce.Suggestion,
		Remediation: ce.Remediation,
		ExitCode:    exitCodeFromCategory(ce.Category),
	}

	if ce.Cause != nil {
		je.Cause = ce.Cause.Error()
	}

	return json.Marshal(je)
}

// FormatForLog formats an error as slog attribute arguments.
// Detail keys are emitted in sorted order.
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	var ce *CheckError
	if !stderrors.As(err, &ce) {
		return []any{"error", err.Error()}
	}

	attrs := []any{
		"error_code", ce.Code,
		"message", ce.Message,
		"category", string(ce.Category),
		"severity", string(ce.Severity),
	}
	if ce.Cause != nil {
		attrs = append(attrs, "cause", ce.Cause.Error())
	}

	keys := make([]string, 0, len(ce.Details))
	for k := range ce.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, "detail_"+k, ce.Details[k])
	}
	return attrs
}
