// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

// Package schemafile builds schemas from YAML documents, so endpoints can
// share a record layout out of band as a file instead of code. The document
// never travels with the payload; the wire format stays schema-less.
//
// A document lists fields in declaration order, nested layouts inline:
//
//	fields:
//	  - tag: IPV6
//	    type: bool
//	  - tag: Route
//	    type: struct
//	    fields:
//	      - {tag: CIDR, type: byte}
package schemafile // import "github.com/fibrous-io/rapidstruct/schemafile"

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fibrous-io/rapidstruct"
)

type fieldDoc struct {
	Tag    string     `yaml:"tag"`
	Type   string     `yaml:"type"`
	Fields []fieldDoc `yaml:"fields"`
}

type schemaDoc struct {
	Fields []fieldDoc `yaml:"fields"`
}

var typeNames = map[string]rapidstruct.FieldType{
	"bool":   rapidstruct.TypeBool,
	"byte":   rapidstruct.TypeByte,
	"short":  rapidstruct.TypeShort,
	"int":    rapidstruct.TypeInt,
	"long":   rapidstruct.TypeLong,
	"float":  rapidstruct.TypeFloat,
	"double": rapidstruct.TypeDouble,
	"string": rapidstruct.TypeString,
	"raw":    rapidstruct.TypeRaw,
}

// Parse builds a schema from a YAML document.
func Parse(data []byte) (*rapidstruct.Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "error parsing schema document")
	}
	if len(doc.Fields) == 0 {
		return nil, errors.New("schema document declares no fields")
	}
	return build(doc.Fields)
}

// Load reads a full YAML document from r and builds a schema from it.
func Load(r io.Reader) (*rapidstruct.Schema, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading schema document")
	}
	return Parse(data)
}

func build(fields []fieldDoc) (*rapidstruct.Schema, error) {
	schema := rapidstruct.NewSchema()

	for _, fd := range fields {
		if fd.Tag == "" {
			return nil, errors.New("field without a tag")
		}

		if fd.Type == "struct" {
			if len(fd.Fields) == 0 {
				return nil, errors.Errorf("struct field %q declares no nested fields", fd.Tag)
			}
			nested, err := build(fd.Fields)
			if err != nil {
				return nil, errors.Wrapf(err, "in nested schema %q", fd.Tag)
			}
			if _, err := schema.AddStruct(fd.Tag, nested); err != nil {
				return nil, err
			}
			continue
		}

		t, ok := typeNames[fd.Type]
		if !ok {
			return nil, errors.Errorf("unknown field type %q for tag %q", fd.Type, fd.Tag)
		}
		if len(fd.Fields) != 0 {
			return nil, errors.Errorf("field %q of type %s cannot declare nested fields", fd.Tag, t)
		}
		if _, err := schema.AddField(fd.Tag, t); err != nil {
			return nil, err
		}
	}

	return schema, nil
}
