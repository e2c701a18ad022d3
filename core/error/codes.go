// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across libini. These codes enable structured
//              error handling, CLI exit formatting, and error monitoring.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for libini
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexing and parsing
	CodeLexSyntax    Code = "LEX_SYNTAX"
	CodeParseSyntax  Code = "PARSE_SYNTAX"
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// Configuration access
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// I/O
	CodeFileError Code = "FILE_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsValid checks whether the code is one of the defined libini codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexSyntax, CodeParseSyntax, CodeTypeMismatch,
		CodeConfigError, CodeValidationFailed, CodeInvalidOperation,
		CodeFileError:
		return true
	default:
		return false
	}
}
