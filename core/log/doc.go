// File: doc.go
// Title: Log Package Documentation
// Description: Package log provides structured logging for libini with
//              configurable levels, contextual fields, JSON and text output
//              formats, and operation timing helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

/*
Package log provides structured logging for libini.

Key Features:
  • Six log levels from TRACE to FATAL with minimum-level filtering
  • Persistent contextual fields via immutable With* clones
  • JSON and human-readable text output formats
  • Operation timers that log their duration on completion
  • Package-level default logger

# Basic Logging

Use the default logger or create a configured one:

	logger := liblog.NewWithConfig(liblog.Config{
		Level:  liblog.LevelDebug,
		Format: liblog.FormatText,
		Name:   "ini-parser",
	})

	logger.Info("parse completed", liblog.Fields{"sections": 3})

# Contextual Fields

With* methods return clones; the original logger is never mutated:

	parseLogger := logger.WithField("parse_id", id)
	parseLogger.Debug("tokenization completed", liblog.Fields{"tokens": n})

# Operation Timing

Timers log their elapsed time when stopped:

	timer := liblog.NewTimer(logger, "ini parse")
	doc, err := build(tokens)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("sections", len(doc.Sections)).Stop()
*/
package log
