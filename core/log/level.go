// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for structured logging with parsing and
//              priority comparison helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry
type Level int

const (
	// LevelTrace is for very fine-grained diagnostic information
	LevelTrace Level = iota

	// LevelDebug is for diagnostic information useful during development
	LevelDebug

	// LevelInfo is for general operational information
	LevelInfo

	// LevelWarn is for potentially harmful situations
	LevelWarn

	// LevelError is for error events that still allow the program to continue
	LevelError

	// LevelFatal is for severe errors that terminate the program
	LevelFatal
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Priority returns the numeric priority of the level
func (l Level) Priority() int {
	return int(l)
}

// ShouldLog returns true if the level should be logged at the given minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a Level
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "FATAL":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

// AllLevels returns all defined levels in ascending priority order
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// DefaultLevel returns the default log level for production use
func DefaultLevel() Level {
	return LevelInfo
}

// DevelopmentLevel returns the default log level for development use
func DevelopmentLevel() Level {
	return LevelDebug
}
