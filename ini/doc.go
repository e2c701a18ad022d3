// File: doc.go
// Title: INI Package Documentation
// Description: Implements the lexical analyzer and parser for INI files.
//              Converts INI text into a queryable, strongly-typed section
//              tree with comprehensive error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation

/*
Package ini provides lexical analysis and parsing for INI configuration
files.

The package implements a two-stage pipeline. The lexer turns a character
source into an ordered token sequence; its classification of the next
token depends on the previously emitted token, so quoting, section headers
and bare values are distinguished by context rather than by a fixed
per-character dispatch. The parser then walks the complete token sequence
with a cursor and builds an immutable tree of sections and typed leaf
values (string, number, identifier). It includes:

  • Context-sensitive tokenizer over a peek/advance character source
  • Cursor-based recursive descent parser for the INI grammar
  • Immutable section/leaf tree with first-match member lookup
  • Typed value access with explicit not-found and type-mismatch errors
  • An asynchronous parse entry point returning a waitable handle

Structural violations abort a parse with a ParseError; undecodable number
literals abort tokenization with a LexError. A successful parse always
yields the complete tree, never a partial one.
*/
package ini
