// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

package rapidstruct

import (
	"github.com/pkg/errors"
)

// DefaultFieldCapacity is the starting field capacity of a Struct.
const DefaultFieldCapacity = 64

// Struct is an ordered sequence of (schema key, field) pairs bound to one
// schema. Appends keep insertion order, and the same key may appear multiple
// times, which is how repeated fields under one tag work. Capacity doubles
// when full and is retained across Reset, so an instance can be reused for
// many encode or decode cycles.
type Struct struct {
	schema *Schema

	keys   []int
	fields []*Field
}

// New returns an empty struct bound to schema.
func New(schema *Schema) *Struct {
	return NewSized(schema, DefaultFieldCapacity)
}

// NewSized returns an empty struct bound to schema with the given starting
// field capacity. Only worth reaching for when a record is known to hold
// very few fields.
func NewSized(schema *Schema, capacity int) *Struct {
	return &Struct{
		schema: schema,
		keys:   make([]int, 0, capacity),
		fields: make([]*Field, 0, capacity),
	}
}

// Schema returns the schema this struct is bound to.
func (s *Struct) Schema() *Schema {
	return s.schema
}

// Len returns the number of appended fields.
func (s *Struct) Len() int {
	return len(s.fields)
}

// Reset truncates the struct to zero fields while keeping its capacity.
func (s *Struct) Reset() {
	s.keys = s.keys[:0]
	s.fields = s.fields[:0]
}

// KeyAt returns the schema key the i-th field was appended under.
func (s *Struct) KeyAt(i int) int {
	return s.keys[i]
}

// FieldAt returns the i-th appended field.
func (s *Struct) FieldAt(i int) *Field {
	return s.fields[i]
}

// store appends without further checks, doubling capacity when full.
func (s *Struct) store(key int, f *Field) {
	if len(s.fields) == cap(s.fields) {
		s.grow()
	}
	s.keys = append(s.keys, key)
	s.fields = append(s.fields, f)
}

func (s *Struct) grow() {
	c := cap(s.fields) * 2
	if c == 0 {
		c = DefaultFieldCapacity
	}

	keys := make([]int, len(s.keys), c)
	fields := make([]*Field, len(s.fields), c)
	copy(keys, s.keys)
	copy(fields, s.fields)
	s.keys = keys
	s.fields = fields
}

func (s *Struct) resolve(tag string) (int, error) {
	key := s.schema.Lookup(tag)
	if key == KeyAbsent {
		return KeyAbsent, errors.Wrapf(ErrUnknownTag, "tag %q", tag)
	}
	return key, nil
}

func (s *Struct) checkKey(key int) error {
	if !s.schema.validKey(key) {
		return errors.Wrapf(ErrInvalidKey, "key %d", key)
	}
	return nil
}

// Append adds the passed field under the given tag. The field's declared
// type must match the schema definition for the tag.
func (s *Struct) Append(tag string, f *Field) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendKey(key, f)
}

// AppendKey adds the passed field under the given schema key. The field's
// declared type must match the schema definition for the key.
func (s *Struct) AppendKey(key int, f *Field) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	if want := s.schema.TypeAt(key); f.typ != want {
		return errors.Wrapf(ErrTypeMismatch, "field of type %s added under type %s", f.typ, want)
	}
	s.store(key, f)
	return nil
}

// AppendBool adds a bool value under the given tag.
func (s *Struct) AppendBool(tag string, v bool) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendBoolKey(key, v)
}

// AppendBoolKey adds a bool value under the given schema key.
func (s *Struct) AppendBoolKey(key int, v bool) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutBool(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendByte adds a byte value under the given tag.
func (s *Struct) AppendByte(tag string, v byte) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendByteKey(key, v)
}

// AppendByteKey adds a byte value under the given schema key.
func (s *Struct) AppendByteKey(key int, v byte) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutByte(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendShort adds a short value under the given tag.
func (s *Struct) AppendShort(tag string, v int16) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendShortKey(key, v)
}

// AppendShortKey adds a short value under the given schema key.
func (s *Struct) AppendShortKey(key int, v int16) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutShort(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendInt adds an int value under the given tag.
func (s *Struct) AppendInt(tag string, v int32) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendIntKey(key, v)
}

// AppendIntKey adds an int value under the given schema key.
func (s *Struct) AppendIntKey(key int, v int32) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutInt(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendLong adds a long value under the given tag.
func (s *Struct) AppendLong(tag string, v int64) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendLongKey(key, v)
}

// AppendLongKey adds a long value under the given schema key.
func (s *Struct) AppendLongKey(key int, v int64) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutLong(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendFloat adds a float value under the given tag.
func (s *Struct) AppendFloat(tag string, v float32) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendFloatKey(key, v)
}

// AppendFloatKey adds a float value under the given schema key.
func (s *Struct) AppendFloatKey(key int, v float32) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutFloat(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendDouble adds a double value under the given tag.
func (s *Struct) AppendDouble(tag string, v float64) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendDoubleKey(key, v)
}

// AppendDoubleKey adds a double value under the given schema key.
func (s *Struct) AppendDoubleKey(key int, v float64) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutDouble(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendString adds a string value under the given tag.
func (s *Struct) AppendString(tag string, v string) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendStringKey(key, v)
}

// AppendStringKey adds a string value under the given schema key.
func (s *Struct) AppendStringKey(key int, v string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutString(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// AppendBytes adds a byte payload under the given tag. The field is typed
// according to the schema definition for the tag, but the payload itself is
// not cross-checked against it. The intended use is raw-typed fields;
// anything else assumes you know what you are doing.
func (s *Struct) AppendBytes(tag string, v []byte) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendBytesKey(key, v)
}

// AppendBytesKey adds a byte payload under the given schema key, without a
// type cross-check. See AppendBytes.
func (s *Struct) AppendBytesKey(key int, v []byte) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	f.PutBytes(v)
	s.store(key, f)
	return nil
}

// AppendStruct adds a nested struct under the given tag.
func (s *Struct) AppendStruct(tag string, v *Struct) error {
	key, err := s.resolve(tag)
	if err != nil {
		return err
	}
	return s.AppendStructKey(key, v)
}

// AppendStructKey adds a nested struct under the given schema key.
func (s *Struct) AppendStructKey(key int, v *Struct) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	f := NewField(s.schema.TypeAt(key))
	if err := f.PutStruct(v); err != nil {
		return err
	}
	s.store(key, f)
	return nil
}

// First returns the first field appended under the given tag, or nil if the
// struct currently holds none.
func (s *Struct) First(tag string) *Field {
	key := s.schema.Lookup(tag)
	if key == KeyAbsent {
		return nil
	}
	return s.FirstKey(key)
}

// FirstKey returns the first field appended under the given schema key, or
// nil if the struct currently holds none.
func (s *Struct) FirstKey(key int) *Field {
	for i, k := range s.keys {
		if k == key {
			return s.fields[i]
		}
	}
	return nil
}

// All returns every field appended under the given tag, in insertion order.
func (s *Struct) All(tag string) []*Field {
	key := s.schema.Lookup(tag)
	if key == KeyAbsent {
		return nil
	}
	return s.AllKey(key)
}

// AllKey returns every field appended under the given schema key, in
// insertion order.
func (s *Struct) AllKey(key int) []*Field {
	var out []*Field
	for i, k := range s.keys {
		if k == key {
			out = append(out, s.fields[i])
		}
	}
	return out
}

// Has reports whether the struct holds at least one field under the tag.
func (s *Struct) Has(tag string) bool {
	return s.First(tag) != nil
}

// HasKey reports whether the struct holds at least one field under the key.
func (s *Struct) HasKey(key int) bool {
	return s.FirstKey(key) != nil
}
