// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

// Package framing delimits records on byte streams. The wire format itself
// carries no envelope or terminator, so transports that interleave records
// need an external framing; this package is that caller-side piece.
package framing // import "github.com/fibrous-io/rapidstruct/framing"

type Framing interface {
	DecodeFrame([]byte) ([]byte, error)
	EncodeFrame([]byte) ([]byte, error)
}
