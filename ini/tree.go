// File: tree.go
// Title: INI Parse Tree Model
// Description: Defines the immutable tree built by the parser: typed leaf
//              values, named leaves, sections, and the document root list,
//              together with the member lookup operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial tree model

package ini

import (
	"fmt"
	"strconv"
)

// ValueKind represents the type of a leaf value
type ValueKind int

const (
	// KindString is a quoted string value
	KindString ValueKind = iota

	// KindNumber is a numeric value
	KindNumber

	// KindIdentifier is a bare, unquoted value
	KindIdentifier
)

// String returns the string representation of the value kind
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Value is the typed payload of a leaf. Values are immutable after
// construction; typed access with the wrong kind fails with a TypeError.
type Value struct {
	kind   ValueKind
	text   string
	number float64
}

// StringValue creates a string-kind value
func StringValue(text string) Value {
	return Value{kind: KindString, text: text}
}

// NumberValue creates a number-kind value
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

// IdentifierValue creates an identifier-kind value
func IdentifierValue(text string) Value {
	return Value{kind: KindIdentifier, text: text}
}

// Kind returns the kind of the value
func (v Value) Kind() ValueKind {
	return v.kind
}

// Text returns the payload of a string-kind value
func (v Value) Text() (string, error) {
	if v.kind != KindString {
		return "", &TypeError{Want: KindString, Got: v.kind}
	}
	return v.text, nil
}

// Number returns the payload of a number-kind value
func (v Value) Number() (float64, error) {
	if v.kind != KindNumber {
		return 0, &TypeError{Want: KindNumber, Got: v.kind}
	}
	return v.number, nil
}

// Identifier returns the payload of an identifier-kind value
func (v Value) Identifier() (string, error) {
	if v.kind != KindIdentifier {
		return "", &TypeError{Want: KindIdentifier, Got: v.kind}
	}
	return v.text, nil
}

// Raw returns the display form of the value regardless of kind
func (v Value) Raw() string {
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	}
	return v.text
}

// Interface returns the payload as an untyped value, for encoding
func (v Value) Interface() interface{} {
	if v.kind == KindNumber {
		return v.number
	}
	return v.text
}

// TypeError is returned when a value is read as the wrong kind
type TypeError struct {
	Member string // set by document-level getters
	Want   ValueKind
	Got    ValueKind
}

func (e *TypeError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("member %q holds a %s value, not a %s", e.Member, e.Got, e.Want)
	}
	return fmt.Sprintf("value is a %s, not a %s", e.Got, e.Want)
}

// NotFoundError is returned when no section contains the requested member.
// It marks an expected negative lookup, not a defect; callers either guard
// with HasMember or handle it explicitly.
type NotFoundError struct {
	Member string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("member not found: %q", e.Member)
}

// Leaf is a single named key-value pair inside a section
type Leaf struct {
	Name  string
	Value Value
}

// Section is a named grouping of leaves, in file order. Member lookup is a
// linear scan; configuration files are small enough that no index is built.
type Section struct {
	Name   string
	Leaves []Leaf
}

// HasMember reports whether the section contains a leaf with the name
func (s *Section) HasMember(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Lookup returns the first leaf with the given name
func (s *Section) Lookup(name string) (Leaf, bool) {
	for _, leaf := range s.Leaves {
		if leaf.Name == name {
			return leaf, true
		}
	}
	return Leaf{}, false
}

// Document is the root list of all parsed sections, in file order. It is
// built once per parse invocation and immutable thereafter. A repeated
// section name produces a distinct node per occurrence; lookups resolve by
// first occurrence.
type Document struct {
	Sections []Section
}

// HasMember reports whether any section contains a leaf with the name
func (d *Document) HasMember(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}

// Lookup returns the first leaf with the given name, scanning sections in
// order
func (d *Document) Lookup(name string) (Leaf, bool) {
	for i := range d.Sections {
		if leaf, ok := d.Sections[i].Lookup(name); ok {
			return leaf, true
		}
	}
	return Leaf{}, false
}

// Section returns the first section with the given name
func (d *Document) Section(name string) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// GetString returns the string payload of the named member
func (d *Document) GetString(name string) (string, error) {
	leaf, ok := d.Lookup(name)
	if !ok {
		return "", &NotFoundError{Member: name}
	}
	text, err := leaf.Value.Text()
	if err != nil {
		return "", memberTypeError(name, err)
	}
	return text, nil
}

// GetNumber returns the numeric payload of the named member
func (d *Document) GetNumber(name string) (float64, error) {
	leaf, ok := d.Lookup(name)
	if !ok {
		return 0, &NotFoundError{Member: name}
	}
	n, err := leaf.Value.Number()
	if err != nil {
		return 0, memberTypeError(name, err)
	}
	return n, nil
}

// GetIdentifier returns the identifier payload of the named member
func (d *Document) GetIdentifier(name string) (string, error) {
	leaf, ok := d.Lookup(name)
	if !ok {
		return "", &NotFoundError{Member: name}
	}
	text, err := leaf.Value.Identifier()
	if err != nil {
		return "", memberTypeError(name, err)
	}
	return text, nil
}

// memberTypeError attaches the member name to a TypeError from the value
// layer before it propagates to the caller
func memberTypeError(name string, err error) error {
	if te, ok := err.(*TypeError); ok {
		return &TypeError{Member: name, Want: te.Want, Got: te.Got}
	}
	return err
}
