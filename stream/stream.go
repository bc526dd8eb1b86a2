// SPDX-License-Identifier: MIT

// Package stream adapts a codec to luigi sources and sinks, so framed struct
// streams plug into the same plumbing as any other luigi pipeline.
package stream // import "github.com/fibrous-io/rapidstruct/stream"

import (
	"context"
	"io"

	"github.com/pkg/errors"
	luigi "github.com/ssbc/go-luigi"

	"github.com/fibrous-io/rapidstruct"
	"github.com/fibrous-io/rapidstruct/codec"
)

var _ luigi.Source = (*source)(nil)
var _ luigi.Sink = (*sink)(nil)

// NewSource returns a source that yields one decoded *rapidstruct.Struct per
// frame read from r, and EOS once r is exhausted.
func NewSource(r io.Reader, cdc codec.Codec) luigi.Source {
	return &source{dec: cdc.NewDecoder(r)}
}

type source struct {
	dec codec.Decoder
}

func (src *source) Next(ctx context.Context) (interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s, err := src.dec.Decode()
	if err != nil {
		if errors.Cause(err) == io.EOF {
			return nil, luigi.EOS{}
		}
		return nil, errors.Wrap(err, "error decoding next struct")
	}
	return s, nil
}

// NewSink returns a sink that writes every poured *rapidstruct.Struct to w
// as one frame.
func NewSink(w io.Writer, cdc codec.Codec) luigi.Sink {
	return &sink{w: w, enc: cdc.NewEncoder(w)}
}

type sink struct {
	w   io.Writer
	enc codec.Encoder
}

func (snk *sink) Pour(ctx context.Context, v interface{}) error {
	s, ok := v.(*rapidstruct.Struct)
	if !ok {
		return errors.Errorf("expected *rapidstruct.Struct, got %T", v)
	}
	return errors.Wrap(snk.enc.Encode(s), "error pouring struct")
}

func (snk *sink) Close() error {
	if c, ok := snk.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
