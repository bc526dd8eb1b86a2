// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

package rapidstruct

// FieldType enumerates the kinds of values a field can hold.
type FieldType uint8

const (
	TypeBool FieldType = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeString
	TypeRaw
	TypeStruct
)

// Width returns the fixed payload width of t in bytes, or -1 for the
// variable-length kinds (TypeString, TypeRaw, TypeStruct).
func (t FieldType) Width() int {
	switch t {
	case TypeBool, TypeByte:
		return 1
	case TypeShort:
		return 2
	case TypeInt, TypeFloat:
		return 4
	case TypeLong, TypeDouble:
		return 8
	}
	return -1
}

// Variable reports whether values of t carry a two-byte length prefix on the
// wire.
func (t FieldType) Variable() bool {
	return t == TypeString || t == TypeRaw || t == TypeStruct
}

func (t FieldType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeRaw:
		return "raw"
	case TypeStruct:
		return "struct"
	}
	return "unknown"
}
