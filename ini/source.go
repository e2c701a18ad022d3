// File: source.go
// Title: Character Source and Byte Predicates
// Description: Defines the character stream abstraction consumed by the
//              lexer and the predicate functions used to classify single
//              input bytes and to delimit token text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

package ini

import (
	"fmt"
	"io"
)

// Predicate classifies a single input byte
type Predicate func(byte) bool

// isChar builds a predicate matching any of the given bytes
func isChar(chars ...byte) Predicate {
	switch len(chars) {
	case 1:
		c := chars[0]
		return func(b byte) bool { return b == c }
	default:
		set := chars
		return func(b byte) bool {
			for _, c := range set {
				if b == c {
					return true
				}
			}
			return false
		}
	}
}

// anyOf composes two predicates with logical or
func anyOf(p, q Predicate) Predicate {
	return func(b byte) bool { return p(b) || q(b) }
}

// Stateless byte classifiers
var (
	isWhitespace      = isChar(' ', '\t')
	isEOL             = isChar('\n', '\r')
	isComment         = isChar('#')
	isWhitespaceOrEOL = anyOf(isWhitespace, isEOL)
)

// isDigit checks if the byte is a decimal digit
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// matchNothing is the delimiter in effect before any token has been emitted
func matchNothing(byte) bool { return false }

// Source is the character stream consumed by the Lexer. It supports peeking
// at the next unread byte, consuming it, and testing for end of input.
// Implementations track the 1-based line and column of the next unread byte
// for error reporting.
type Source interface {
	// Peek returns the next unread byte without consuming it
	Peek() (byte, bool)

	// Advance consumes and returns the next unread byte
	Advance() (byte, bool)

	// AtEnd reports whether the input is exhausted
	AtEnd() bool

	// Line returns the 1-based line of the next unread byte
	Line() int

	// Column returns the 1-based column of the next unread byte
	Column() int
}

// stringSource is a Source over an in-memory string
type stringSource struct {
	src  string
	pos  int
	line int
	col  int
}

// NewStringSource creates a Source reading from the given string
func NewStringSource(src string) Source {
	return &stringSource{
		src:  src,
		line: 1,
		col:  1,
	}
}

// NewReaderSource creates a Source reading from r. The reader is drained
// completely up front; tokenization is batch, not streaming.
func NewReaderSource(r io.Reader) (Source, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return NewStringSource(string(content)), nil
}

func (s *stringSource) Peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *stringSource) Advance() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]
	s.pos++

	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	return ch, true
}

func (s *stringSource) AtEnd() bool {
	return s.pos >= len(s.src)
}

func (s *stringSource) Line() int {
	return s.line
}

func (s *stringSource) Column() int {
	return s.col
}
