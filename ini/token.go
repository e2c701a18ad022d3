// File: token.go
// Title: INI Token Model
// Description: Defines the closed set of lexical token types produced by the
//              INI tokenizer together with their payloads. Punctuation tokens
//              carry no payload; section, identifier and string tokens carry
//              text; number tokens carry a parsed float value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial token model

package ini

import (
	"fmt"
	"strconv"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenNull is the initial "nothing emitted yet" type; it never appears
	// in a token sequence
	TokenNull TokenType = iota

	// Punctuation
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenEquals       // =
	TokenDoubleQuote  // "
	TokenSingleQuote  // '

	// Payload-bearing tokens
	TokenSection    // [section]
	TokenIdentifier // key or bare value
	TokenString     // quoted text
	TokenNumber     // 123, 123.45

	// TokenEOF marks input exhaustion; it terminates tokenization and is
	// never emitted into the token sequence
	TokenEOF
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenNull:
		return "NULL"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenEquals:
		return "EQUALS"
	case TokenDoubleQuote:
		return "DOUBLE_QUOTE"
	case TokenSingleQuote:
		return "SINGLE_QUOTE"
	case TokenSection:
		return "SECTION"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// HasText reports whether the token type carries a text payload
func (tt TokenType) HasText() bool {
	switch tt {
	case TokenSection, TokenIdentifier, TokenString:
		return true
	default:
		return false
	}
}

// Token represents a lexical token with position information.
// Tokens are immutable once produced; payloads are read through Text and
// Number, which fail when the token does not carry the requested payload.
type Token struct {
	Type   TokenType
	Line   int // Line number (1-based)
	Column int // Column number (1-based)

	text   string
	number float64
}

// ValueError is returned when a token payload is read as the wrong kind
type ValueError struct {
	Requested string    // "text" or "number"
	Actual    TokenType // the token's real type
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("token of type %s carries no %s payload", e.Actual, e.Requested)
}

func newPunctToken(tt TokenType, line, column int) Token {
	return Token{Type: tt, Line: line, Column: column}
}

func newTextToken(tt TokenType, text string, line, column int) Token {
	return Token{Type: tt, Line: line, Column: column, text: text}
}

func newNumberToken(value float64, line, column int) Token {
	return Token{Type: TokenNumber, Line: line, Column: column, number: value}
}

// Text returns the text payload of a section, identifier or string token
func (t Token) Text() (string, error) {
	if !t.Type.HasText() {
		return "", &ValueError{Requested: "text", Actual: t.Type}
	}
	return t.text, nil
}

// Number returns the numeric payload of a number token
func (t Token) Number() (float64, error) {
	if t.Type != TokenNumber {
		return 0, &ValueError{Requested: "number", Actual: t.Type}
	}
	return t.number, nil
}

// String returns a string representation of the token
func (t Token) String() string {
	switch {
	case t.Type.HasText():
		return fmt.Sprintf("%s(%s)", t.Type, t.text)
	case t.Type == TokenNumber:
		return fmt.Sprintf("%s(%s)", t.Type, strconv.FormatFloat(t.number, 'g', -1, 64))
	default:
		return t.Type.String()
	}
}
