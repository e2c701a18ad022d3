// File: entry.go
// Title: Log Entry and Fields
// Description: Defines the Entry type that represents a single log record
//              and the Fields map used to attach structured context.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single log record
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields holds structured key-value context for log entries
type Fields map[string]interface{}

// Field creates a Fields map with a single key-value pair
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields map carrying an error
func Err(err error) Fields {
	return Fields{"error": err}
}

// Merge combines two Fields maps; the other map wins on key conflicts
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Clone returns a copy of the Fields map
func (f Fields) Clone() Fields {
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithFields adds fields to the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// WithError attaches an error to the entry
func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}
