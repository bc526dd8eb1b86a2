// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

package rapidstruct

import (
	"github.com/pkg/errors"
)

// MaxSchemaKeys is the number of distinct fields one schema can declare.
// Keys are sent as a single byte, so there is no room for more.
const MaxSchemaKeys = 256

// KeyAbsent is returned by Lookup for tags without a schema definition.
const KeyAbsent = -1

// Schema is the ordered declaration of a record's field layout. Each entry
// pairs a human-readable tag with a field type; the entry's position is its
// schema key, assigned sequentially and never reused. A schema is populated
// once, then treated as frozen: the codec assumes it does not change during
// any encode or decode, which also makes it safe to share between structs.
//
// A schema can only have one definition per tag, but a Struct bound to it may
// hold multiple entries under that tag. They will all be of the declared type.
type Schema struct {
	tags   []string
	types  []FieldType
	nested []*Schema
}

// NewSchema returns a new, empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// AddField declares a field with the given tag and type and returns its
// schema key. Struct-typed fields carry a nested layout and must be declared
// with AddStruct instead.
func (s *Schema) AddField(tag string, t FieldType) (int, error) {
	if t == TypeStruct {
		return KeyAbsent, errors.Wrapf(ErrWrongBuilder, "tag %q", tag)
	}
	return s.add(tag, t, nil)
}

// AddStruct declares a struct-typed field whose values follow the nested
// schema, and returns its schema key.
func (s *Schema) AddStruct(tag string, nested *Schema) (int, error) {
	return s.add(tag, TypeStruct, nested)
}

func (s *Schema) add(tag string, t FieldType, nested *Schema) (int, error) {
	if s.Lookup(tag) != KeyAbsent {
		return KeyAbsent, errors.Wrapf(ErrDuplicateTag, "tag %q", tag)
	}
	if len(s.tags) == MaxSchemaKeys {
		return KeyAbsent, errors.Wrapf(ErrInvalidKey, "schema full, tag %q does not fit", tag)
	}

	s.tags = append(s.tags, tag)
	s.types = append(s.types, t)
	s.nested = append(s.nested, nested)
	return len(s.tags) - 1, nil
}

// Lookup returns the schema key for tag, or KeyAbsent if the tag is not
// declared. The scan is linear; schemas hold at most 256 entries and hot
// paths are expected to keep the returned key.
func (s *Schema) Lookup(tag string) int {
	for i, t := range s.tags {
		if t == tag {
			return i
		}
	}
	return KeyAbsent
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.tags)
}

// TypeAt returns the declared type at key. The key must be in range.
func (s *Schema) TypeAt(key int) FieldType {
	return s.types[key]
}

// TagAt returns the declared tag at key. The key must be in range.
func (s *Schema) TagAt(key int) string {
	return s.tags[key]
}

// NestedAt returns the nested schema at key, or nil for non-struct fields.
// The key must be in range.
func (s *Schema) NestedAt(key int) *Schema {
	return s.nested[key]
}

func (s *Schema) validKey(key int) bool {
	return key >= 0 && key < len(s.tags)
}
