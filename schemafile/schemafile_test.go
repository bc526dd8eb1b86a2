// SPDX-License-Identifier: MIT

package schemafile

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/fibrous-io/rapidstruct"
)

const subnetDoc = `
fields:
  - tag: IPV6
    type: bool
  - tag: IPAddress
    type: raw
  - tag: CIDR
    type: byte
  - tag: Name
    type: string
`

func TestParseFlat(t *testing.T) {
	r := require.New(t)

	schema, err := Parse([]byte(subnetDoc))
	r.NoError(err)
	r.Equal(4, schema.Len())

	r.Equal(0, schema.Lookup("IPV6"))
	r.Equal(rapidstruct.TypeBool, schema.TypeAt(0))
	r.Equal(rapidstruct.TypeRaw, schema.TypeAt(1))
	r.Equal(rapidstruct.TypeByte, schema.TypeAt(2))
	r.Equal(rapidstruct.TypeString, schema.TypeAt(3))
	r.Equal("Name", schema.TagAt(3))
}

func TestParseNested(t *testing.T) {
	r := require.New(t)

	doc := `
fields:
  - tag: Name
    type: string
  - tag: Route
    type: struct
    fields:
      - {tag: CIDR, type: byte}
      - {tag: Gateway, type: raw}
`
	schema, err := Parse([]byte(doc))
	r.NoError(err)
	r.Equal(2, schema.Len())
	r.Equal(rapidstruct.TypeStruct, schema.TypeAt(1))

	nested := schema.NestedAt(1)
	r.NotNil(nested)
	r.Equal(2, nested.Len())
	r.Equal(rapidstruct.TypeByte, nested.TypeAt(0))
	r.Equal("Gateway", nested.TagAt(1))

	// the parsed schema drives the codec end to end
	s := rapidstruct.New(nested)
	r.NoError(s.AppendByte("CIDR", 24))
	data, err := rapidstruct.NewProcessor().Encode(s)
	r.NoError(err)
	r.Equal([]byte{0x00, 24}, data)
}

func TestLoad(t *testing.T) {
	r := require.New(t)

	schema, err := Load(strings.NewReader(subnetDoc))
	r.NoError(err)
	r.Equal(4, schema.Len())
}

func TestParseErrors(t *testing.T) {
	type testcase struct {
		name string
		doc  string
	}

	tcs := []testcase{
		{"not yaml", "fields: ["},
		{"no fields", "fields: []"},
		{"missing tag", "fields:\n  - type: int"},
		{"unknown type", "fields:\n  - {tag: x, type: uuid}"},
		{"struct without fields", "fields:\n  - {tag: x, type: struct}"},
		{"scalar with fields", "fields:\n  - tag: x\n    type: int\n    fields:\n      - {tag: y, type: int}"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
		})
	}
}

func TestParseDuplicateTag(t *testing.T) {
	r := require.New(t)

	_, err := Parse([]byte("fields:\n  - {tag: x, type: int}\n  - {tag: x, type: long}"))
	r.Error(err)
	r.Equal(rapidstruct.ErrDuplicateTag, errors.Cause(err))
}
