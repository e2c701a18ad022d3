// File: doc.go
// Title: Error Package Documentation
// Description: Package error provides structured error handling for libini
//              with error codes, severity levels, operation context, and
//              key-value details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

/*
Package error provides structured error handling for libini.

Key Features:
  • Structured error codes for consistent classification
  • Severity levels derived from codes, overridable per error
  • Operation context and key-value details for diagnostics
  • Error wrapping compatible with errors.Is and errors.As
  • Full compatibility with Go's standard error interface

# Creating Errors

Create errors with a fluent builder pattern:

	err := liberror.New("config file not found").
		WithCode(liberror.CodeNotFound).
		WithOperation("config.Load").
		WithDetail("filePath", "/etc/app.ini")

# Wrapping Errors

Wrap errors from lower layers while preserving their classification:

	doc, err := parser.ParseFile(path)
	if err != nil {
		return liberror.Wrap(err, "failed to parse config file").
			WithCode(liberror.CodeConfigError)
	}

# Inspecting Errors

Check error codes without type assertions:

	if liberror.HasCode(err, liberror.CodeNotFound) {
		// fall back to defaults
	}
*/
package error
