package errors

import (
	stderrors "errors"
	"fmt"
)

// CheckError is the structured error type for uecheck.
// It carries enough context for logging, exit-code selection and
// operator-facing remediation output.
type CheckError struct {
	// Code is the unique error code (e.g., "ERR_301_ENGINE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Input, Readiness, Locator, ...).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable one-line suggestion for the operator.
	Suggestion string

	// Remediation is an ordered list of commands or steps the operator
	// can run to fix the problem.
	Remediation []string
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *CheckError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with CheckError.
func (e *CheckError) Is(target error) bool {
	if t, ok := target.(*CheckError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *CheckError) WithDetail(key, value string) *CheckError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the operator.
func (e *CheckError) WithSuggestion(suggestion string) *CheckError {
	e.Suggestion = suggestion
	return e
}

// WithRemediation appends remediation steps.
func (e *CheckError) WithRemediation(steps ...string) *CheckError {
	e.Remediation = append(e.Remediation, steps...)
	return e
}

// New creates a new CheckError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *CheckError {
	return &CheckError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a CheckError from an existing error.
// The error's message becomes the CheckError message.
func Wrap(code string, err error) *CheckError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// InputError creates an invalid-input error.
func InputError(message string, cause error) *CheckError {
	return New(ErrCodeInputInvalid, message, cause)
}

// UnsupportedPlatform creates an error for a platform name that is not
// Android or Linux.
func UnsupportedPlatform(name string) *CheckError {
	return New(ErrCodeUnsupportedPlatform,
		fmt.Sprintf("unsupported platform '%s'. Supported platforms: Android, Linux", name), nil).
		WithDetail("platform", name)
}

// NotReadyError creates an error listing unmet required probes.
func NotReadyError(unmet []string) *CheckError {
	e := New(ErrCodeNotReady, "cannot generate packaging command - some required tools are missing", nil)
	for _, name := range unmet {
		e.WithDetail(name, "unmet")
	}
	return e
}

// EngineNotFound creates a locator miss error.
func EngineNotFound() *CheckError {
	return New(ErrCodeEngineNotFound, "could not find Unreal Engine installation", nil).
		WithSuggestion("Set UE4_ROOT or UNREAL_ENGINE_ROOT to your engine root directory")
}

// CertificationError creates a certification failure.
func CertificationError(message string) *CheckError {
	return New(ErrCodeCertificationFailed, message, nil)
}

// ScriptWriteError creates a non-fatal script persistence warning.
func ScriptWriteError(path string, cause error) *CheckError {
	return New(ErrCodeScriptWrite, fmt.Sprintf("could not create script file: %v", cause), cause).
		WithDetail("path", path)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *CheckError {
	return New(ErrCodeInternal, message, cause)
}

// IsWarning reports whether err is a CheckError with warning severity.
func IsWarning(err error) bool {
	var ce *CheckError
	if stderrors.As(err, &ce) {
		return ce.Severity == SeverityWarning
	}
	return false
}

// GetCode extracts the error code from a CheckError anywhere in the chain.
// Returns empty string if not a CheckError.
func GetCode(err error) string {
	var ce *CheckError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// GetCategory extracts the category from a CheckError anywhere in the chain.
// Returns empty string if not a CheckError.
func GetCategory(err error) Category {
	var ce *CheckError
	if stderrors.As(err, &ce) {
		return ce.Category
	}
	return ""
}

// ExitCode returns the process exit status for err.
// nil maps to ExitOK and non-CheckError values map to ExitInternal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ce *CheckError
	if stderrors.As(err, &ce) {
		return exitCodeFromCategory(ce.Category)
	}
	return ExitInternal
}
