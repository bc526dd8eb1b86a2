// SPDX-License-Identifier: MIT

// Package dump renders populated structs for humans: a line-per-field text
// form and a JSON form for log lines and test goldens. The codec itself
// never uses this package.
package dump // import "github.com/fibrous-io/rapidstruct/dump"

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/fibrous-io/rapidstruct"
)

// String renders one line per field: tag, schema key, type and value, with
// nested structs indented one tab per level. Duplicate tags appear once per
// occurrence, in insertion order.
func String(s *rapidstruct.Struct) string {
	var b strings.Builder
	writeStruct(&b, s, 0)
	return b.String()
}

func writeStruct(b *strings.Builder, s *rapidstruct.Struct, nesting int) {
	tabs := strings.Repeat("\t", nesting)

	for i := 0; i < s.Len(); i++ {
		key := s.KeyAt(i)
		f := s.FieldAt(i)
		tag := s.Schema().TagAt(key)

		fmt.Fprintf(b, "%sTag: %s, SchemaKey: %d, Type: %s, Value: ", tabs, tag, key, f.Type())

		if f.Type() == rapidstruct.TypeStruct {
			b.WriteString("\n")
			if nested, err := f.AsStruct(); err == nil && nested != nil {
				writeStruct(b, nested, nesting+1)
			}
			continue
		}

		b.WriteString(scalarString(f))
		b.WriteString("\n")
	}
}

func scalarString(f *rapidstruct.Field) string {
	switch f.Type() {
	case rapidstruct.TypeBool:
		v, _ := f.AsBool()
		return fmt.Sprint(v)
	case rapidstruct.TypeByte:
		v, _ := f.AsByte()
		return fmt.Sprint(v)
	case rapidstruct.TypeShort:
		v, _ := f.AsShort()
		return fmt.Sprint(v)
	case rapidstruct.TypeInt:
		v, _ := f.AsInt()
		return fmt.Sprint(v)
	case rapidstruct.TypeLong:
		v, _ := f.AsLong()
		return fmt.Sprint(v)
	case rapidstruct.TypeFloat:
		v, _ := f.AsFloat()
		return fmt.Sprint(v)
	case rapidstruct.TypeDouble:
		v, _ := f.AsDouble()
		return fmt.Sprint(v)
	case rapidstruct.TypeString:
		v, _ := f.AsString()
		return v
	}

	// raw bytes as comma-separated numbers
	parts := make([]string, 0, f.Len())
	for _, by := range f.AsBytes() {
		parts = append(parts, fmt.Sprint(by))
	}
	return strings.Join(parts, ",")
}

// JSON renders the struct as a tag-to-value object. A tag that occurs more
// than once maps to a list of its values in insertion order; nested structs
// become nested objects; raw fields use JSON's base64 form for bytes.
func JSON(s *rapidstruct.Struct) ([]byte, error) {
	return gojson.Marshal(toMap(s))
}

func toMap(s *rapidstruct.Struct) map[string]interface{} {
	out := make(map[string]interface{}, s.Len())

	for i := 0; i < s.Len(); i++ {
		key := s.KeyAt(i)
		tag := s.Schema().TagAt(key)
		v := value(s.FieldAt(i))

		prev, dup := out[tag]
		if !dup {
			out[tag] = v
			continue
		}
		if list, ok := prev.([]interface{}); ok {
			out[tag] = append(list, v)
		} else {
			out[tag] = []interface{}{prev, v}
		}
	}

	return out
}

func value(f *rapidstruct.Field) interface{} {
	switch f.Type() {
	case rapidstruct.TypeBool:
		v, _ := f.AsBool()
		return v
	case rapidstruct.TypeByte:
		v, _ := f.AsByte()
		return v
	case rapidstruct.TypeShort:
		v, _ := f.AsShort()
		return v
	case rapidstruct.TypeInt:
		v, _ := f.AsInt()
		return v
	case rapidstruct.TypeLong:
		v, _ := f.AsLong()
		return v
	case rapidstruct.TypeFloat:
		v, _ := f.AsFloat()
		return v
	case rapidstruct.TypeDouble:
		v, _ := f.AsDouble()
		return v
	case rapidstruct.TypeString:
		v, _ := f.AsString()
		return v
	case rapidstruct.TypeStruct:
		nested, _ := f.AsStruct()
		if nested == nil {
			return nil
		}
		return toMap(nested)
	}
	return f.AsBytes()
}
