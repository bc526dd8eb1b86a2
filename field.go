// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

package rapidstruct

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// initialVarAllocation is the starting buffer size for variable-length
// fields. PutBytes grows past it as needed.
const initialVarAllocation = 256

// Field is the value holder for one entry of a Struct. It carries its
// declared type and its payload as big-endian bytes, so the processor can
// copy the payload straight onto the wire. Struct-typed fields hold their
// nested Struct instead of a byte payload.
//
// Setters and getters check the declared type and fail with ErrTypeMismatch
// on disagreement, with two exceptions: PutBytes and AsBytes work on any
// field and never fail. They exist as the escape hatch for raw payloads and
// assume you know what you are doing.
type Field struct {
	typ    FieldType
	buf    []byte
	length int

	// only set when typ is TypeStruct
	strct *Struct
}

// NewField returns a field of the given type. Fixed-width fields get a
// zeroed payload of their exact width; variable-length fields start with a
// small buffer that grows on demand.
func NewField(t FieldType) *Field {
	size := t.Width()
	if size < 0 {
		size = initialVarAllocation
	}
	f := &Field{
		typ: t,
		buf: make([]byte, size),
	}
	if !t.Variable() {
		f.length = size
	}
	return f
}

// Type returns the declared type of the field.
func (f *Field) Type() FieldType {
	return f.typ
}

// Len returns the number of meaningful payload bytes.
func (f *Field) Len() int {
	return f.length
}

func (f *Field) check(want FieldType) error {
	if f.typ != want {
		return errors.Wrapf(ErrTypeMismatch, "field of type %s treated as %s", f.typ, want)
	}
	return nil
}

// PutBool stores a bool value.
func (f *Field) PutBool(v bool) error {
	if err := f.check(TypeBool); err != nil {
		return err
	}
	if v {
		f.buf[0] = 1
	} else {
		f.buf[0] = 0
	}
	f.length = 1
	return nil
}

// PutByte stores a byte value.
func (f *Field) PutByte(v byte) error {
	if err := f.check(TypeByte); err != nil {
		return err
	}
	f.buf[0] = v
	f.length = 1
	return nil
}

// PutShort stores a short value.
func (f *Field) PutShort(v int16) error {
	if err := f.check(TypeShort); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(f.buf, uint16(v))
	f.length = 2
	return nil
}

// PutInt stores an int value.
func (f *Field) PutInt(v int32) error {
	if err := f.check(TypeInt); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(f.buf, uint32(v))
	f.length = 4
	return nil
}

// PutLong stores a long value.
func (f *Field) PutLong(v int64) error {
	if err := f.check(TypeLong); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(f.buf, uint64(v))
	f.length = 8
	return nil
}

// PutFloat stores a float value.
func (f *Field) PutFloat(v float32) error {
	if err := f.check(TypeFloat); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(f.buf, math.Float32bits(v))
	f.length = 4
	return nil
}

// PutDouble stores a double value.
func (f *Field) PutDouble(v float64) error {
	if err := f.check(TypeDouble); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(f.buf, math.Float64bits(v))
	f.length = 8
	return nil
}

// PutString stores the UTF-8 bytes of a string value.
func (f *Field) PutString(v string) error {
	if err := f.check(TypeString); err != nil {
		return err
	}
	if len(v) > len(f.buf) {
		f.buf = make([]byte, len(v))
	}
	copy(f.buf, v)
	f.length = len(v)
	return nil
}

// PutBytes copies the passed bytes into the field's payload, growing the
// buffer to fit. It works regardless of the declared type and never fails;
// reading the field back with AsBytes returns exactly the bytes written.
func (f *Field) PutBytes(v []byte) {
	if len(v) > len(f.buf) {
		f.buf = make([]byte, len(v))
	}
	copy(f.buf, v)
	f.length = len(v)
}

// PutStruct stores a nested struct. The field takes ownership; its bytes are
// materialized on demand during encoding.
func (f *Field) PutStruct(v *Struct) error {
	if err := f.check(TypeStruct); err != nil {
		return err
	}
	f.strct = v
	return nil
}

// AsBool returns the field's value as a bool.
func (f *Field) AsBool() (bool, error) {
	if err := f.check(TypeBool); err != nil {
		return false, err
	}
	return f.buf[0] == 1, nil
}

// AsByte returns the field's value as a byte.
func (f *Field) AsByte() (byte, error) {
	if err := f.check(TypeByte); err != nil {
		return 0, err
	}
	return f.buf[0], nil
}

// AsShort returns the field's value as a short.
func (f *Field) AsShort() (int16, error) {
	if err := f.check(TypeShort); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(f.buf)), nil
}

// AsInt returns the field's value as an int.
func (f *Field) AsInt() (int32, error) {
	if err := f.check(TypeInt); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(f.buf)), nil
}

// AsLong returns the field's value as a long.
func (f *Field) AsLong() (int64, error) {
	if err := f.check(TypeLong); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(f.buf)), nil
}

// AsFloat returns the field's value as a float.
func (f *Field) AsFloat() (float32, error) {
	if err := f.check(TypeFloat); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(f.buf)), nil
}

// AsDouble returns the field's value as a double.
func (f *Field) AsDouble() (float64, error) {
	if err := f.check(TypeDouble); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(f.buf)), nil
}

// AsString returns the field's value as a string.
func (f *Field) AsString() (string, error) {
	if err := f.check(TypeString); err != nil {
		return "", err
	}
	return string(f.buf[:f.length]), nil
}

// AsBytes returns a copy of the meaningful payload bytes. It works on every
// type and never fails.
func (f *Field) AsBytes() []byte {
	out := make([]byte, f.length)
	copy(out, f.buf[:f.length])
	return out
}

// AsStruct returns the nested struct held by the field.
func (f *Field) AsStruct() (*Struct, error) {
	if err := f.check(TypeStruct); err != nil {
		return nil, err
	}
	return f.strct, nil
}

// payload returns the meaningful payload bytes without copying. Only for use
// inside the package; the slice aliases the field's buffer.
func (f *Field) payload() []byte {
	return f.buf[:f.length]
}
