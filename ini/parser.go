// File: parser.go
// Title: INI Recursive Descent Parser
// Description: Implements the parsing phase of INI processing. Consumes the
//              token sequence produced by the lexer and builds the section
//              tree. The parser walks the immutable token slice with a
//              cursor; structural violations abort the parse and no partial
//              tree is returned.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial parser implementation

package ini

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	liblog "github.com/msto63/libini/core/log"
)

// Fixed violation messages, one per grammar site
const (
	errSectionMsg = "unexpected token while parsing section"
	errMemberMsg  = "unexpected token while parsing member"
	errValueMsg   = "unexpected token while parsing value"
	errPayloadMsg = "illegal token payload access while parsing"
)

// ParseError represents a structural parsing error with position information
type ParseError struct {
	Message string
	Line    int
	Column  int
	Token   Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near %s)",
		pe.Line, pe.Column, pe.Message, pe.Token)
}

// Parser builds Documents from INI input
type Parser struct {
	logger  *liblog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *liblog.Logger
}

// New creates a new INI parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = liblog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "ini-parser"),
		options: opts,
	}
}

// Parse tokenizes the source and builds the document tree. Each invocation
// constructs its own token sequence and tree, so concurrent Parse calls on
// the same Parser with distinct sources are safe.
func (p *Parser) Parse(src Source) (*Document, error) {
	logger := p.logger.WithField("parse_id", uuid.NewString())
	timer := liblog.NewTimer(logger, "ini parse")

	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	logger.Debug("ini tokenization completed", liblog.Fields{
		"tokens": len(tokens),
	})

	doc, err := buildTree(tokens)
	if err != nil {
		timer.WithField("tokens", len(tokens)).StopWithError(err)
		return nil, err
	}

	timer.
		WithField("tokens", len(tokens)).
		WithField("sections", len(doc.Sections)).
		Stop()

	return doc, nil
}

// ParseString parses INI content held in a string
func (p *Parser) ParseString(input string) (*Document, error) {
	return p.Parse(NewStringSource(input))
}

// ParseFile opens the named file, parses its content, and closes it again.
// File access lives here; the lexer itself only ever sees a Source.
func (p *Parser) ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	src, err := NewReaderSource(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return p.Parse(src)
}

// buildTree consumes the whole token sequence into a document. An empty
// sequence yields an empty document, not an error.
func buildTree(tokens []Token) (*Document, error) {
	doc := &Document{}

	for cur := 0; cur < len(tokens); {
		section, next, err := parseSection(tokens, cur)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section)
		cur = next
	}

	return doc, nil
}

// parseSection matches the [name] prefix at the cursor and then delegates
// to parseMembers for the section body. Returns the built section and the
// cursor position after its last member.
func parseSection(tokens []Token, cur int) (Section, int, error) {
	if tokens[cur].Type != TokenLeftBracket {
		return Section{}, 0, structuralError(tokens, cur, errSectionMsg)
	}
	cur++

	if cur >= len(tokens) || tokens[cur].Type != TokenSection {
		return Section{}, 0, structuralError(tokens, cur, errSectionMsg)
	}
	name, err := tokens[cur].Text()
	if err != nil {
		return Section{}, 0, payloadError(tokens, cur, err)
	}
	cur++

	if cur >= len(tokens) || tokens[cur].Type != TokenRightBracket {
		return Section{}, 0, structuralError(tokens, cur, errSectionMsg)
	}
	cur++

	section := Section{Name: name}
	cur, err = parseMembers(tokens, cur, &section)
	if err != nil {
		return Section{}, 0, err
	}

	return section, cur, nil
}

// parseMembers matches key = value members until the tokens run out or a
// new section begins. A minimal member needs three tokens; a shorter rest
// is ignored rather than rejected.
func parseMembers(tokens []Token, cur int, section *Section) (int, error) {
	for {
		if len(tokens)-cur < 3 || tokens[cur].Type == TokenLeftBracket {
			return cur, nil
		}

		if tokens[cur].Type != TokenIdentifier {
			return 0, structuralError(tokens, cur, errMemberMsg)
		}
		name, err := tokens[cur].Text()
		if err != nil {
			return 0, payloadError(tokens, cur, err)
		}
		cur++

		if tokens[cur].Type != TokenEquals {
			return 0, structuralError(tokens, cur, errMemberMsg)
		}
		cur++

		value, next, err := parseValue(tokens, cur)
		if err != nil {
			return 0, err
		}
		cur = next

		section.Leaves = append(section.Leaves, Leaf{Name: name, Value: value})
	}
}

// parseValue matches a single value at the cursor: a number or bare
// identifier directly, or a quote-delimited string including its closing
// quote. Any other token type is a structural error.
func parseValue(tokens []Token, cur int) (Value, int, error) {
	tok := tokens[cur]

	switch tok.Type {
	case TokenNumber:
		n, err := tok.Number()
		if err != nil {
			return Value{}, 0, payloadError(tokens, cur, err)
		}
		return NumberValue(n), cur + 1, nil

	case TokenIdentifier:
		text, err := tok.Text()
		if err != nil {
			return Value{}, 0, payloadError(tokens, cur, err)
		}
		return IdentifierValue(text), cur + 1, nil

	case TokenSingleQuote, TokenDoubleQuote:
		if cur+1 >= len(tokens) || tokens[cur+1].Type != TokenString {
			return Value{}, 0, structuralError(tokens, cur, errValueMsg)
		}
		text, err := tokens[cur+1].Text()
		if err != nil {
			return Value{}, 0, payloadError(tokens, cur+1, err)
		}
		// The closing quote must match the opening one
		if cur+2 >= len(tokens) || tokens[cur+2].Type != tok.Type {
			return Value{}, 0, structuralError(tokens, cur, errValueMsg)
		}
		return StringValue(text), cur + 3, nil

	default:
		return Value{}, 0, structuralError(tokens, cur, errValueMsg)
	}
}

// structuralError builds a ParseError for the token at the cursor, or for
// the end of input when the sequence ended too early
func structuralError(tokens []Token, cur int, message string) *ParseError {
	if cur >= len(tokens) {
		pe := &ParseError{Message: message, Token: newPunctToken(TokenEOF, 0, 0)}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			pe.Line, pe.Column = last.Line, last.Column
		}
		return pe
	}

	tok := tokens[cur]
	return &ParseError{
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
		Token:   tok,
	}
}

// payloadError re-raises an illegal payload access as a parse error with a
// fixed message; the original ValueError stays reachable via the message
func payloadError(tokens []Token, cur int, err error) *ParseError {
	pe := structuralError(tokens, cur, errPayloadMsg)
	pe.Message = fmt.Sprintf("%s: %v", errPayloadMsg, err)
	return pe
}
