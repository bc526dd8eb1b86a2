// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

package rapidstruct

import (
	"github.com/pkg/errors"
)

// The package signals and never recovers; every failure aborts the current
// operation and surfaces as one of these, usually wrapped with context.
var (
	// ErrUnknownTag means a tag is not declared in the schema.
	ErrUnknownTag = errors.New("no schema definition for tag")

	// ErrInvalidKey means a schema key is outside the declared range.
	ErrInvalidKey = errors.New("invalid schema key")

	// ErrDuplicateTag means a tag was declared twice in one schema.
	ErrDuplicateTag = errors.New("schema tag already defined")

	// ErrWrongBuilder means a struct-typed field was declared through
	// AddField instead of AddStruct.
	ErrWrongBuilder = errors.New("struct fields must be declared with their schema")

	// ErrTypeMismatch means a field was used as a type other than its
	// declared one. This is assertion-grade: it indicates a programming
	// error, not bad input.
	ErrTypeMismatch = errors.New("field type mismatch")

	// ErrFieldTooLong means a variable-length value exceeds MaxFieldLen.
	ErrFieldTooLong = errors.New("maximum field length exceeded")

	// ErrTruncatedInput means the decoder needed more bytes than remain in
	// the current layer of input.
	ErrTruncatedInput = errors.New("incomplete byte stream")
)

// IsTypeMismatch returns whether a particular error is a type mismatch,
// unwrapping any context added along the way.
func IsTypeMismatch(err error) bool {
	return errors.Cause(err) == ErrTypeMismatch
}

// IsTruncated returns whether a particular error reports truncated input.
func IsTruncated(err error) bool {
	return errors.Cause(err) == ErrTruncatedInput
}
