// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

package rapidstruct

import (
	"github.com/pkg/errors"
)

// MaxFieldLen is the largest payload a variable-length field can carry,
// bounded by the two-byte length prefix.
const MaxFieldLen = 65535

// Processor encodes structs to bytes and decodes bytes into structs. It owns
// two scratch buffers that are reused across calls and across the recursion
// for nested structs, so a single Processor must not encode or decode
// concurrently. Instantiate one per worker to process records in parallel.
type Processor struct {
	w *writeStream
	r *readStream
}

// NewProcessor returns a processor with default buffer sizing.
func NewProcessor() *Processor {
	return NewProcessorSize(expansionIncrement)
}

// NewProcessorSize returns a processor whose write buffer starts at the
// given size. Useful when the encoded size of a record is roughly known up
// front; the buffer still grows on demand.
func NewProcessorSize(writeBufferSize int) *Processor {
	return &Processor{
		w: newWriteStream(writeBufferSize),
		r: newReadStream(),
	}
}

// Encode serializes the struct into a fresh byte sequence: for each field in
// insertion order, the one-byte schema key, a two-byte big-endian length for
// variable-length types, then the payload. Nested structs are encoded
// recursively and emitted as a length-prefixed payload like any other
// variable-length field. There is no envelope and no terminator; callers
// that need framing add it externally.
//
// The input struct is not modified.
func (p *Processor) Encode(s *Struct) ([]byte, error) {
	p.w.pushMark()
	defer func() {
		p.w.goToLastMark()
		p.w.popMark()
	}()

	for i := 0; i < s.Len(); i++ {
		key := s.keys[i]
		f := s.fields[i]
		p.w.writeByte(byte(key))

		payload := f.payload()
		if f.typ == TypeStruct {
			if f.strct == nil {
				return nil, errors.Wrapf(ErrTypeMismatch, "struct field at key %d holds no value", key)
			}
			nested, err := p.Encode(f.strct)
			if err != nil {
				return nil, errors.Wrapf(err, "encoding nested struct at key %d", key)
			}
			payload = nested
		}

		if f.typ.Variable() {
			if len(payload) > MaxFieldLen {
				return nil, errors.Wrapf(ErrFieldTooLong, "%d bytes at key %d", len(payload), key)
			}
			p.w.writeByte(byte(len(payload) >> 8))
			p.w.writeByte(byte(len(payload)))
		}

		p.w.write(payload)
	}

	return p.w.copyFromLastMark(), nil
}

// Decode resets the struct and populates it from data, which must be the
// wire encoding of a record following the struct's schema. Decoding stops
// when the input is exhausted. On failure the struct is left partially
// populated and should be reset or discarded; the processor itself stays
// usable.
func (p *Processor) Decode(data []byte, s *Struct) error {
	s.Reset()
	p.r.pushBytes(data)
	defer p.r.popBytes()

	for p.r.remaining() > 0 {
		key := int(p.r.readByte())
		if !s.schema.validKey(key) {
			return errors.Wrapf(ErrInvalidKey, "decoded key %d", key)
		}

		t := s.schema.TypeAt(key)
		f := NewField(t)
		if err := s.AppendKey(key, f); err != nil {
			return err
		}

		length := t.Width()
		if t.Variable() {
			if p.r.remaining() < 2 {
				return errors.Wrapf(ErrTruncatedInput, "length prefix at key %d", key)
			}
			length = int(p.r.readByte())<<8 | int(p.r.readByte())
		}

		payload := make([]byte, length)
		if n := p.r.readBytes(payload); n < length {
			return errors.Wrapf(ErrTruncatedInput, "%d of %d payload bytes at key %d", n, length, key)
		}

		if t == TypeStruct {
			nested := New(s.schema.NestedAt(key))
			if err := p.Decode(payload, nested); err != nil {
				return errors.Wrapf(err, "decoding nested struct at key %d", key)
			}
			if err := f.PutStruct(nested); err != nil {
				return err
			}
		} else {
			f.PutBytes(payload)
		}
	}

	return nil
}
