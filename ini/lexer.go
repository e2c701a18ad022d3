// File: lexer.go
// Title: INI Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of INI parsing. The
//              tokenizer is context-sensitive: the type of the next token is
//              decided from the type of the previously emitted token plus a
//              mutable delimiter predicate that marks where the current
//              name or value text ends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial lexer implementation

package ini

import (
	"fmt"
	"strconv"
	"strings"
)

// LexError represents a tokenization error with position information
type LexError struct {
	Message string
	Line    int
	Column  int
	Err     error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Unwrap returns the underlying cause, e.g. a numeric conversion error
func (e *LexError) Unwrap() error {
	return e.Err
}

// Lexer performs lexical analysis of INI input.
//
// A Lexer owns its Source exclusively: Tokenize consumes the stream to the
// end in a single call, so a Lexer must not be shared between goroutines.
// Quoted strings have no escape sequences; the next identical quote byte
// always ends the string, so a quoted value cannot contain its own quote.
type Lexer struct {
	src       Source
	delimiter Predicate

	// identAsValue is set when the most recent identifier token was emitted
	// in value position (after =) rather than key position; the two cases
	// expect different successors
	identAsValue bool
}

// NewLexer creates a new lexer reading from the given source
func NewLexer(src Source) *Lexer {
	return &Lexer{
		src:       src,
		delimiter: matchNothing,
	}
}

// Tokenize scans the whole input and returns the ordered token sequence.
// TokenEOF is used only as the stop sentinel and never appears in the
// result. Tokenization fails with a LexError when a numeric literal cannot
// be decoded.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0, 32)

	for previous := TokenNull; ; {
		next := l.nextType(previous)
		if next == TokenEOF {
			return tokens, nil
		}

		line, column := l.src.Line(), l.src.Column()

		switch next {
		case TokenLeftBracket, TokenRightBracket, TokenEquals,
			TokenSingleQuote, TokenDoubleQuote:
			l.src.Advance()
			tokens = append(tokens, newPunctToken(next, line, column))

		case TokenSection, TokenIdentifier:
			text := strings.TrimRight(l.readName(l.delimiter), " \t\r")
			tokens = append(tokens, newTextToken(next, text, line, column))

		case TokenString:
			// Quoted text is taken verbatim up to the closing quote
			tokens = append(tokens, newTextToken(TokenString, l.readName(l.delimiter), line, column))

		case TokenNumber:
			literal := l.readNumber()
			value, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return nil, &LexError{
					Message: fmt.Sprintf("malformed number literal %q", literal),
					Line:    line,
					Column:  column,
					Err:     err,
				}
			}
			tokens = append(tokens, newNumberToken(value, line, column))
		}

		previous = next
	}
}

// nextType decides the type of the next token from the type of the
// previously emitted token and the next substantive input byte. Runs of
// whitespace and end-of-line characters are discarded, as are single-line
// comments from # to end of line; neither produces a token.
func (l *Lexer) nextType(previous TokenType) TokenType {
	for {
		ch, ok := l.src.Peek()
		if !ok {
			return TokenEOF
		}

		if isWhitespaceOrEOL(ch) {
			l.src.Advance()
			continue
		}

		if isComment(ch) {
			l.skipComment()
			continue
		}

		switch previous {
		case TokenNull:
			// Nothing emitted yet, a file starts with a section header
			return TokenLeftBracket

		case TokenLeftBracket:
			l.delimiter = isChar(']')
			return TokenSection

		case TokenSection:
			l.delimiter = isWhitespace
			return TokenRightBracket

		case TokenDoubleQuote:
			return l.afterQuote('"', ch)

		case TokenSingleQuote:
			return l.afterQuote('\'', ch)

		case TokenString:
			// A string is followed by its closing quote
			if l.delimiter('"') {
				return TokenDoubleQuote
			}
			return TokenSingleQuote

		case TokenIdentifier:
			if !l.identAsValue {
				// Key position: a = must follow
				return TokenEquals
			}
			return l.nextAfterValue(ch)

		case TokenEquals:
			switch {
			case isDigit(ch):
				return TokenNumber
			case ch == '\'':
				return TokenSingleQuote
			case ch == '"':
				return TokenDoubleQuote
			default:
				// Bare value, runs to end of line or a trailing comment
				l.delimiter = anyOf(isEOL, isComment)
				l.identAsValue = true
				return TokenIdentifier
			}

		default:
			return l.nextAfterValue(ch)
		}
	}
}

// afterQuote handles the token following a quote of the given kind: before
// the matching delimiter is active the quote opens a string; once it is
// active the quote was the closing one and a key or section header follows.
func (l *Lexer) afterQuote(quote byte, ch byte) TokenType {
	if !l.delimiter(quote) {
		l.delimiter = isChar(quote)
		return TokenString
	}
	return l.nextAfterValue(ch)
}

// nextAfterValue handles the position after a completed value or closing
// bracket: either a new section starts or an identifier (key) follows
func (l *Lexer) nextAfterValue(ch byte) TokenType {
	l.identAsValue = false
	if ch == '[' {
		return TokenLeftBracket
	}
	// A key ends at whitespace or directly at the = sign
	l.delimiter = anyOf(isWhitespace, isChar('='))
	return TokenIdentifier
}

// skipComment discards input from # up to (not including) end of line
func (l *Lexer) skipComment() {
	for {
		ch, ok := l.src.Peek()
		if !ok || isEOL(ch) {
			return
		}
		l.src.Advance()
	}
}

// readName accumulates bytes up to (not including) the first byte matched
// by the delimiter predicate, or to end of input
func (l *Lexer) readName(delimiter Predicate) string {
	var b strings.Builder

	for {
		ch, ok := l.src.Peek()
		if !ok || delimiter(ch) {
			return b.String()
		}
		l.src.Advance()
		b.WriteByte(ch)
	}
}

// readNumber reads a run of digits, optionally followed by a decimal point
// and a further run of digits
func (l *Lexer) readNumber() string {
	integer := l.readDigits()

	if ch, ok := l.src.Peek(); ok && ch == '.' {
		l.src.Advance()
		return integer + "." + l.readDigits()
	}

	return integer
}

func (l *Lexer) readDigits() string {
	var b strings.Builder

	for {
		ch, ok := l.src.Peek()
		if !ok || !isDigit(ch) {
			return b.String()
		}
		l.src.Advance()
		b.WriteByte(ch)
	}
}
