// File: lexer_test.go
// Title: INI Lexer Unit Tests
// Description: Unit tests for the context-sensitive INI tokenizer. Tests
//              cover token sequences for sections and members, comment and
//              whitespace handling, position tracking, numeric literals,
//              and error cases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial test suite

package ini

import (
	"strconv"
	"strings"
	"testing"
)

// expectedToken mirrors a Token for test comparison; payloads in Token are
// only reachable through the typed accessors
type expectedToken struct {
	typ    TokenType
	text   string
	number float64
	line   int
	column int
}

func assertTokens(t *testing.T, tokens []Token, expected []expectedToken) {
	t.Helper()

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}

	for i, want := range expected {
		token := tokens[i]

		if token.Type != want.typ {
			t.Errorf("Token %d: expected type %s, got %s", i, want.typ, token.Type)
			continue
		}

		if want.typ.HasText() {
			text, err := token.Text()
			if err != nil {
				t.Errorf("Token %d: unexpected payload error: %v", i, err)
			}
			if text != want.text {
				t.Errorf("Token %d: expected text %q, got %q", i, want.text, text)
			}
		}

		if want.typ == TokenNumber {
			number, err := token.Number()
			if err != nil {
				t.Errorf("Token %d: unexpected payload error: %v", i, err)
			}
			if number != want.number {
				t.Errorf("Token %d: expected number %v, got %v", i, want.number, number)
			}
		}

		if want.line > 0 && token.Line != want.line {
			t.Errorf("Token %d: expected line %d, got %d", i, want.line, token.Line)
		}

		if want.column > 0 && token.Column != want.column {
			t.Errorf("Token %d: expected column %d, got %d", i, want.column, token.Column)
		}
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{
			name:  "Section with quoted string member",
			input: "[general]\nname = \"alice\"",
			expected: []expectedToken{
				{typ: TokenLeftBracket, line: 1, column: 1},
				{typ: TokenSection, text: "general", line: 1, column: 2},
				{typ: TokenRightBracket, line: 1, column: 9},
				{typ: TokenIdentifier, text: "name", line: 2, column: 1},
				{typ: TokenEquals, line: 2, column: 6},
				{typ: TokenDoubleQuote, line: 2, column: 8},
				{typ: TokenString, text: "alice", line: 2, column: 9},
				{typ: TokenDoubleQuote, line: 2, column: 14},
			},
		},
		{
			name:  "Number member",
			input: "[general]\ncount = 42",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "general"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "count", line: 2, column: 1},
				{typ: TokenEquals, line: 2, column: 7},
				{typ: TokenNumber, number: 42, line: 2, column: 9},
			},
		},
		{
			name:  "Float member",
			input: "[general]\nratio = 0.75",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "general"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "ratio"},
				{typ: TokenEquals},
				{typ: TokenNumber, number: 0.75},
			},
		},
		{
			name:  "No spaces around equals",
			input: "[s]\nk=1",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "s"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "k"},
				{typ: TokenEquals},
				{typ: TokenNumber, number: 1},
			},
		},
		{
			name:  "Single quoted string",
			input: "[s]\nname = 'bob'",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "s"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "name"},
				{typ: TokenEquals},
				{typ: TokenSingleQuote},
				{typ: TokenString, text: "bob"},
				{typ: TokenSingleQuote},
			},
		},
		{
			name:  "Empty quoted string",
			input: "[s]\nempty = \"\"",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "s"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "empty"},
				{typ: TokenEquals},
				{typ: TokenDoubleQuote},
				{typ: TokenString, text: ""},
				{typ: TokenDoubleQuote},
			},
		},
		{
			name:  "Bare identifier value",
			input: "[s]\nmode = fast",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "s"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "mode"},
				{typ: TokenEquals},
				{typ: TokenIdentifier, text: "fast"},
			},
		},
		{
			name:  "Bare value followed by another member",
			input: "[s]\nmode = fast\ncount = 3",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "s"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "mode"},
				{typ: TokenEquals},
				{typ: TokenIdentifier, text: "fast"},
				{typ: TokenIdentifier, text: "count"},
				{typ: TokenEquals},
				{typ: TokenNumber, number: 3},
			},
		},
		{
			name:  "Two sections",
			input: "[a]\nx = 1\n[b]\ny = 2",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "a"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "x"},
				{typ: TokenEquals},
				{typ: TokenNumber, number: 1},
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "b"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "y"},
				{typ: TokenEquals},
				{typ: TokenNumber, number: 2},
			},
		},
		{
			name:  "New section after quoted value",
			input: "[a]\nname = \"x\"\n[b]\ny = 2",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "a"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "name"},
				{typ: TokenEquals},
				{typ: TokenDoubleQuote},
				{typ: TokenString, text: "x"},
				{typ: TokenDoubleQuote},
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "b"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "y"},
				{typ: TokenEquals},
				{typ: TokenNumber, number: 2},
			},
		},
		{
			name:  "Comments are discarded",
			input: "# header comment\n[s] # trailing\n# between\ncount = 42 # after value",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "s"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "count"},
				{typ: TokenEquals},
				{typ: TokenNumber, number: 42},
			},
		},
		{
			name:  "Comment directly after bare value",
			input: "[s]\nmode = fast# note",
			expected: []expectedToken{
				{typ: TokenLeftBracket},
				{typ: TokenSection, text: "s"},
				{typ: TokenRightBracket},
				{typ: TokenIdentifier, text: "mode"},
				{typ: TokenEquals},
				{typ: TokenIdentifier, text: "fast"},
			},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: []expectedToken{},
		},
		{
			name:     "Only comments and whitespace",
			input:    "  # nothing here\n\t\n# still nothing\n",
			expected: []expectedToken{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(NewStringSource(tt.input))

			tokens, err := lexer.Tokenize()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			assertTokens(t, tokens, tt.expected)
		})
	}
}

func TestLexer_WhitespaceInsensitivity(t *testing.T) {
	// Extra spaces and tabs around =, [ and ] must not change the token
	// sequence apart from positions
	compact := "[general]\nname = \"alice\"\ncount = 42"
	padded := "[ \tgeneral\t ]\n  name\t =   \"alice\"\n\tcount =\t42  "

	lexCompact, err := NewLexer(NewStringSource(compact)).Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error for compact input: %v", err)
	}

	lexPadded, err := NewLexer(NewStringSource(padded)).Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error for padded input: %v", err)
	}

	if len(lexCompact) != len(lexPadded) {
		t.Fatalf("Token count differs: %d vs %d", len(lexCompact), len(lexPadded))
	}

	for i := range lexCompact {
		a, b := lexCompact[i], lexPadded[i]
		if a.Type != b.Type {
			t.Errorf("Token %d: type %s vs %s", i, a.Type, b.Type)
			continue
		}
		if a.Type.HasText() {
			at, _ := a.Text()
			bt, _ := b.Text()
			if at != bt {
				t.Errorf("Token %d: text %q vs %q", i, at, bt)
			}
		}
		if a.Type == TokenNumber {
			an, _ := a.Number()
			bn, _ := b.Number()
			if an != bn {
				t.Errorf("Token %d: number %v vs %v", i, an, bn)
			}
		}
	}
}

func TestLexer_NumberRoundTrip(t *testing.T) {
	// The lexer must yield the same float as a direct decimal parse of the
	// literal text
	literals := []string{"0", "1", "42", "123.45", "0.15", "999999", "3.14159"}

	for _, literal := range literals {
		t.Run(literal, func(t *testing.T) {
			want, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				t.Fatalf("Literal %q does not parse directly: %v", literal, err)
			}

			tokens, err := NewLexer(NewStringSource("[s]\nn = " + literal)).Tokenize()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			last := tokens[len(tokens)-1]
			if last.Type != TokenNumber {
				t.Fatalf("Expected NUMBER token, got %s", last.Type)
			}

			got, err := last.Number()
			if err != nil {
				t.Fatalf("Unexpected payload error: %v", err)
			}
			if got != want {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestLexer_NumberOutOfRange(t *testing.T) {
	// A digit run too large for a float64 must fail tokenization
	input := "[s]\nn = 1" + strings.Repeat("0", 400)

	_, err := NewLexer(NewStringSource(input)).Tokenize()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("Expected *LexError, got %T: %v", err, err)
	}
	if lexErr.Line != 2 {
		t.Errorf("Expected error on line 2, got line %d", lexErr.Line)
	}
	if !strings.Contains(lexErr.Error(), "malformed number literal") {
		t.Errorf("Unexpected error message: %v", lexErr)
	}
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		tokenType TokenType
		expected  string
	}{
		{TokenNull, "NULL"},
		{TokenLeftBracket, "LEFT_BRACKET"},
		{TokenRightBracket, "RIGHT_BRACKET"},
		{TokenEquals, "EQUALS"},
		{TokenDoubleQuote, "DOUBLE_QUOTE"},
		{TokenSingleQuote, "SINGLE_QUOTE"},
		{TokenSection, "SECTION"},
		{TokenIdentifier, "IDENTIFIER"},
		{TokenString, "STRING"},
		{TokenNumber, "NUMBER"},
		{TokenEOF, "EOF"},
		{TokenType(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.tokenType.String()
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestToken_PayloadAccess(t *testing.T) {
	text := newTextToken(TokenIdentifier, "key", 1, 1)
	number := newNumberToken(42, 1, 1)
	punct := newPunctToken(TokenEquals, 1, 1)

	if _, err := text.Text(); err != nil {
		t.Errorf("Unexpected error reading text payload: %v", err)
	}
	if _, err := number.Number(); err != nil {
		t.Errorf("Unexpected error reading number payload: %v", err)
	}

	if _, err := text.Number(); err == nil {
		t.Error("Expected error reading text token as number, got nil")
	}
	if _, err := number.Text(); err == nil {
		t.Error("Expected error reading number token as text, got nil")
	}
	if _, err := punct.Text(); err == nil {
		t.Error("Expected error reading punctuation token as text, got nil")
	}

	_, err := punct.Number()
	valueErr, ok := err.(*ValueError)
	if !ok {
		t.Fatalf("Expected *ValueError, got %T", err)
	}
	if valueErr.Actual != TokenEquals {
		t.Errorf("Expected actual type EQUALS, got %s", valueErr.Actual)
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{newPunctToken(TokenEquals, 1, 1), "EQUALS"},
		{newTextToken(TokenIdentifier, "key", 1, 1), "IDENTIFIER(key)"},
		{newTextToken(TokenString, "hello", 1, 1), "STRING(hello)"},
		{newNumberToken(42, 1, 1), "NUMBER(42)"},
		{newNumberToken(0.5, 1, 1), "NUMBER(0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.token.String()
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

// Benchmarks

func BenchmarkLexer_SmallFile(b *testing.B) {
	input := "[general]\nname = \"alice\"\ncount = 42\nmode = fast\n"

	for i := 0; i < b.N; i++ {
		if _, err := NewLexer(NewStringSource(input)).Tokenize(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer_ManySections(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("[section]\nkey = \"value\"\ncount = 42\n")
	}
	input := sb.String()

	for i := 0; i < b.N; i++ {
		if _, err := NewLexer(NewStringSource(input)).Tokenize(); err != nil {
			b.Fatal(err)
		}
	}
}
