// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

// Package wire implements codec.Codec with the rapidstruct binary format.
package wire // import "github.com/fibrous-io/rapidstruct/codec/wire"

import (
	"io"

	"github.com/pkg/errors"

	"github.com/fibrous-io/rapidstruct"
	"github.com/fibrous-io/rapidstruct/codec"
	"github.com/fibrous-io/rapidstruct/framing/lenprefix"
)

var _ codec.Codec = (*wireCodec)(nil)

// New creates a codec bound to one schema. It is backed by a single
// processor, so a codec instance must not be used concurrently; instantiate
// one per worker or per stream.
func New(schema *rapidstruct.Schema) codec.Codec {
	return &wireCodec{
		schema: schema,
		proc:   rapidstruct.NewProcessor(),
	}
}

type wireCodec struct {
	schema *rapidstruct.Schema
	proc   *rapidstruct.Processor
}

func (c *wireCodec) Marshal(s *rapidstruct.Struct) ([]byte, error) {
	return c.proc.Encode(s)
}

func (c *wireCodec) Unmarshal(data []byte) (*rapidstruct.Struct, error) {
	s := rapidstruct.New(c.schema)
	if err := c.proc.Decode(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEncoder returns an encoder that writes each struct to w as one
// length-prefixed frame.
func (c *wireCodec) NewEncoder(w io.Writer) codec.Encoder {
	return &encoder{cdc: c, w: w}
}

// NewDecoder returns a decoder that reads one length-prefixed frame per
// struct from r. Decode returns io.EOF once r is exhausted.
func (c *wireCodec) NewDecoder(r io.Reader) codec.Decoder {
	return &decoder{cdc: c, r: r}
}

type encoder struct {
	cdc *wireCodec
	w   io.Writer
}

func (enc *encoder) Encode(s *rapidstruct.Struct) error {
	data, err := enc.cdc.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "error marshaling struct")
	}
	return lenprefix.WriteFrame(enc.w, data)
}

type decoder struct {
	cdc *wireCodec
	r   io.Reader
}

func (dec *decoder) Decode() (*rapidstruct.Struct, error) {
	data, err := lenprefix.ReadFrame(dec.r)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "error reading framed struct")
	}
	return dec.cdc.Unmarshal(data)
}
