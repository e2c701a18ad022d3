// File: tree_test.go
// Title: INI Tree Model Unit Tests
// Description: Unit tests for the parse tree: typed value access, display
//              forms, member lookup, and the lookup error taxonomy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial test suite

package ini

import (
	"testing"
)

func testDocument() *Document {
	return &Document{
		Sections: []Section{
			{
				Name: "general",
				Leaves: []Leaf{
					{Name: "name", Value: StringValue("alice")},
					{Name: "count", Value: NumberValue(42)},
					{Name: "mode", Value: IdentifierValue("fast")},
				},
			},
			{
				Name: "limits",
				Leaves: []Leaf{
					{Name: "count", Value: NumberValue(7)},
				},
			},
		},
	}
}

func TestValue_TypedAccess(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		kind    ValueKind
		raw     string
		access  func(Value) (interface{}, error)
		payload interface{}
	}{
		{
			name:    "String value",
			value:   StringValue("alice"),
			kind:    KindString,
			raw:     "alice",
			access:  func(v Value) (interface{}, error) { return v.Text() },
			payload: "alice",
		},
		{
			name:    "Number value",
			value:   NumberValue(42),
			kind:    KindNumber,
			raw:     "42",
			access:  func(v Value) (interface{}, error) { return v.Number() },
			payload: 42.0,
		},
		{
			name:    "Float display form",
			value:   NumberValue(0.75),
			kind:    KindNumber,
			raw:     "0.75",
			access:  func(v Value) (interface{}, error) { return v.Number() },
			payload: 0.75,
		},
		{
			name:    "Identifier value",
			value:   IdentifierValue("fast"),
			kind:    KindIdentifier,
			raw:     "fast",
			access:  func(v Value) (interface{}, error) { return v.Identifier() },
			payload: "fast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind() != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, tt.value.Kind())
			}
			if tt.value.Raw() != tt.raw {
				t.Errorf("Expected raw %q, got %q", tt.raw, tt.value.Raw())
			}

			got, err := tt.access(tt.value)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.payload {
				t.Errorf("Expected payload %v, got %v", tt.payload, got)
			}
		})
	}
}

func TestValue_TypeMismatch(t *testing.T) {
	v := NumberValue(42)

	_, err := v.Text()
	if err == nil {
		t.Fatal("Expected error reading number as string, got nil")
	}

	typeErr, ok := err.(*TypeError)
	if !ok {
		t.Fatalf("Expected *TypeError, got %T", err)
	}
	if typeErr.Want != KindString || typeErr.Got != KindNumber {
		t.Errorf("Unexpected kinds in error: want=%s got=%s", typeErr.Want, typeErr.Got)
	}

	if _, err := StringValue("x").Number(); err == nil {
		t.Error("Expected error reading string as number, got nil")
	}
	if _, err := StringValue("x").Identifier(); err == nil {
		t.Error("Expected error reading string as identifier, got nil")
	}
}

func TestDocument_Lookup(t *testing.T) {
	doc := testDocument()

	tests := []struct {
		name      string
		member    string
		wantFound bool
	}{
		{"Existing member", "name", true},
		{"Member in later section", "mode", true},
		{"Missing member", "ghost", false},
		{"Section name is not a member", "general", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf, found := doc.Lookup(tt.member)
			if found != tt.wantFound {
				t.Fatalf("Lookup(%q) found=%v, want %v", tt.member, found, tt.wantFound)
			}

			// HasMember and Lookup must always agree
			if doc.HasMember(tt.member) != found {
				t.Errorf("HasMember(%q) disagrees with Lookup", tt.member)
			}

			if found && leaf.Name != tt.member {
				t.Errorf("Expected leaf name %q, got %q", tt.member, leaf.Name)
			}
		})
	}
}

func TestDocument_LookupFirstOccurrence(t *testing.T) {
	doc := testDocument()

	// count exists in both sections; the first in file order wins
	n, err := doc.GetNumber("count")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("Expected 42 from first occurrence, got %v", n)
	}
}

func TestDocument_TypedGetters(t *testing.T) {
	doc := testDocument()

	if s, err := doc.GetString("name"); err != nil || s != "alice" {
		t.Errorf("GetString(name) = %q, %v", s, err)
	}
	if n, err := doc.GetNumber("count"); err != nil || n != 42 {
		t.Errorf("GetNumber(count) = %v, %v", n, err)
	}
	if id, err := doc.GetIdentifier("mode"); err != nil || id != "fast" {
		t.Errorf("GetIdentifier(mode) = %q, %v", id, err)
	}

	// Missing member yields NotFoundError
	_, err := doc.GetString("ghost")
	if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("Expected *NotFoundError, got %T: %v", err, err)
	}

	// Wrong-kind access yields a TypeError naming the member
	_, err = doc.GetNumber("name")
	typeErr, ok := err.(*TypeError)
	if !ok {
		t.Fatalf("Expected *TypeError, got %T: %v", err, err)
	}
	if typeErr.Member != "name" {
		t.Errorf("Expected member name in error, got %q", typeErr.Member)
	}
}

func TestDocument_Section(t *testing.T) {
	doc := testDocument()

	section, ok := doc.Section("limits")
	if !ok {
		t.Fatal("Expected section limits to exist")
	}
	if !section.HasMember("count") {
		t.Error("Expected member count in section limits")
	}
	if section.HasMember("name") {
		t.Error("Section lookup must not cross section boundaries")
	}

	if _, ok := doc.Section("missing"); ok {
		t.Error("Expected missing section to not be found")
	}
}

func TestDocument_Empty(t *testing.T) {
	doc := &Document{}

	if doc.HasMember("anything") {
		t.Error("Empty document must not report members")
	}
	if _, found := doc.Lookup("anything"); found {
		t.Error("Empty document lookup must not find members")
	}
	if _, err := doc.GetString("anything"); err == nil {
		t.Error("Expected NotFoundError on empty document")
	}
}
