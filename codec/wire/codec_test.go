// SPDX-License-Identifier: MIT

package wire

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fibrous-io/rapidstruct"
)

func subnetSchema(t *testing.T) *rapidstruct.Schema {
	t.Helper()
	r := require.New(t)

	schema := rapidstruct.NewSchema()
	_, err := schema.AddField("IPV6", rapidstruct.TypeBool)
	r.NoError(err)
	_, err = schema.AddField("IPAddress", rapidstruct.TypeRaw)
	r.NoError(err)
	_, err = schema.AddField("CIDR", rapidstruct.TypeByte)
	r.NoError(err)
	_, err = schema.AddField("Name", rapidstruct.TypeString)
	r.NoError(err)
	return schema
}

func subnet(t *testing.T, schema *rapidstruct.Schema, name string) *rapidstruct.Struct {
	t.Helper()
	r := require.New(t)

	s := rapidstruct.New(schema)
	r.NoError(s.AppendBool("IPV6", false))
	r.NoError(s.AppendBytes("IPAddress", []byte{10, 0, 0, 1}))
	r.NoError(s.AppendByte("CIDR", 8))
	r.NoError(s.AppendString("Name", name))
	return s
}

func TestMarshalUnmarshal(t *testing.T) {
	r := require.New(t)

	schema := subnetSchema(t)
	cdc := New(schema)

	data, err := cdc.Marshal(subnet(t, schema, "lab"))
	r.NoError(err)

	got, err := cdc.Unmarshal(data)
	r.NoError(err)
	r.Equal(schema, got.Schema())

	name, err := got.First("Name").AsString()
	r.NoError(err)
	r.Equal("lab", name)
	r.Equal([]byte{10, 0, 0, 1}, got.First("IPAddress").AsBytes())
}

func TestEncoderDecoderStream(t *testing.T) {
	r := require.New(t)

	schema := subnetSchema(t)
	cdc := New(schema)

	// fill
	var buf bytes.Buffer
	enc := cdc.NewEncoder(&buf)
	names := []string{"one", "two", "three"}
	for _, n := range names {
		r.NoError(enc.Encode(subnet(t, schema, n)))
	}

	// read
	dec := cdc.NewDecoder(&buf)
	for i, want := range names {
		s, err := dec.Decode()
		r.NoError(err, "failed to decode struct %d", i)

		name, err := s.First("Name").AsString()
		r.NoError(err)
		r.Equal(want, name)
	}

	_, err := dec.Decode()
	r.Equal(io.EOF, err)
}

func TestUnmarshalBadInput(t *testing.T) {
	r := require.New(t)

	cdc := New(subnetSchema(t))

	// key 9 is not declared
	_, err := cdc.Unmarshal([]byte{0x09})
	r.Error(err)
}
