// Package errors provides structured error handling for uecheck.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Input errors (arguments, project descriptor, output directory)
//   - 2XX: Readiness errors (required probes not satisfied)
//   - 3XX: Locator errors (no engine installation)
//   - 4XX: Certification errors (platform modules or toolchain missing)
//   - 5XX: Synthesis errors (script could not be persisted)
//   - 9XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryInput indicates invalid invocation input.
	CategoryInput Category = "INPUT"
	// CategoryReadiness indicates the toolchain is not ready.
	CategoryReadiness Category = "READINESS"
	// CategoryLocator indicates the engine installation could not be found.
	CategoryLocator Category = "LOCATOR"
	// CategoryCertification indicates the engine lacks platform support.
	CategoryCertification Category = "CERTIFICATION"
	// CategorySynthesis indicates the launcher script could not be written.
	CategorySynthesis Category = "SYNTHESIS"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityError indicates the run could not produce a command.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded output, the command is still valid.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Input errors (100-199)
	ErrCodeInputInvalid        = "ERR_101_INPUT_INVALID"
	ErrCodeUnsupportedPlatform = "ERR_102_UNSUPPORTED_PLATFORM"

	// Readiness errors (200-299)
	ErrCodeNotReady = "ERR_201_NOT_READY"

	// Locator errors (300-399)
	ErrCodeEngineNotFound = "ERR_301_ENGINE_NOT_FOUND"

	// Certification errors (400-499)
	ErrCodeCertificationFailed = "ERR_401_CERTIFICATION_FAILED"

	// Synthesis errors (500-599)
	ErrCodeScriptWrite = "ERR_501_SCRIPT_WRITE"

	// Internal errors (900-999)
	ErrCodeInternal = "ERR_901_INTERNAL"
)

// Process exit codes returned by the CLI.
const (
	ExitOK            = 0
	ExitInternal      = 1
	ExitInputInvalid  = 2
	ExitNotReady      = 3
	ExitEngineMissing = 4
	ExitNotCertified  = 5
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract numeric portion (e.g., "101" from "ERR_101_INPUT_INVALID")
	numStr := code[4:7]

	switch numStr[0] {
	case '1':
		return CategoryInput
	case '2':
		return CategoryReadiness
	case '3':
		return CategoryLocator
	case '4':
		return CategoryCertification
	case '5':
		return CategorySynthesis
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	if code == ErrCodeScriptWrite {
		return SeverityWarning
	}
	return SeverityError
}

// exitCodeFromCategory maps a category to the process exit status.
func exitCodeFromCategory(c Category) int {
	switch c {
	case CategoryInput:
		return ExitInputInvalid
	case CategoryReadiness:
		return ExitNotReady
	case CategoryLocator:
		return ExitEngineMissing
	case CategoryCertification:
		return ExitNotCertified
	case CategorySynthesis:
		// Script persistence failures never fail the run.
		return ExitOK
	default:
		return ExitInternal
	}
}
