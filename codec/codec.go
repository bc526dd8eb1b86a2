// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

// Package codec defines the interfaces for moving structs in and out of
// their serialized form, either one record at a time or over a byte stream.
package codec // import "github.com/fibrous-io/rapidstruct/codec"

import (
	"io"

	"github.com/fibrous-io/rapidstruct"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o codecfakes/fake_codec.go . Codec

type Codec interface {
	// Marshal encodes a single struct and returns the serialized byte slice.
	Marshal(s *rapidstruct.Struct) ([]byte, error)

	// Unmarshal decodes and returns the struct stored in data.
	Unmarshal(data []byte) (*rapidstruct.Struct, error)

	NewDecoder(io.Reader) Decoder
	NewEncoder(io.Writer) Encoder
}

type Decoder interface {
	Decode() (*rapidstruct.Struct, error)
}

type Encoder interface {
	Encode(s *rapidstruct.Struct) error
}
