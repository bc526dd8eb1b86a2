// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

// Package rapidstruct implements a schema-driven binary codec for compound
// records. A Schema declares the tags, types and nested layouts of a record
// ahead of time; a Struct holds the field values for one record; a Processor
// turns Structs into bytes and back. Both endpoints are expected to share the
// schema out of band, so the wire carries no type or tag metadata beyond a
// one-byte field key and, for variable-length values, a two-byte length.
package rapidstruct // import "github.com/fibrous-io/rapidstruct"
