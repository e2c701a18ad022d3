// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for error classification and logging.
//              Severity levels help callers decide whether a failure is an
//              expected negative outcome or a genuine defect.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an expected negative outcome, e.g. a lookup miss
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects the current operation only
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. unparsable input
	SeverityHigh

	// SeverityCritical indicates an internal defect
	SeverityCritical
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Level returns the numeric level of the severity
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeLexSyntax, CodeParseSyntax, CodeConfigError, CodeFileError:
		return SeverityHigh
	case CodeInvalidInput, CodeTypeMismatch, CodeValidationFailed, CodeInvalidOperation:
		return SeverityMedium
	case CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
