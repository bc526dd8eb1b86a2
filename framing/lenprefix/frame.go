// SPDX-FileCopyrightText: 2026 The rapidstruct Authors
//
// SPDX-License-Identifier: MIT

// Package lenprefix frames records by prefixing them with their length in
// 32bit big endian format.
package lenprefix // import "github.com/fibrous-io/rapidstruct/framing/lenprefix"

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/fibrous-io/rapidstruct/framing"
)

// MaxFrameSize bounds the payload of a single frame. It protects readers
// from allocating absurd buffers off a corrupt or hostile length prefix.
const MaxFrameSize = 1 << 24

var _ framing.Framing = frame32{}

// New returns a length-prefix framing.
func New() framing.Framing {
	return frame32{}
}

type frame32 struct{}

func (frame32) EncodeFrame(data []byte) ([]byte, error) {
	if len(data) > MaxFrameSize {
		return nil, errors.Errorf("frame payload too large: %d bytes", len(data))
	}

	frame := make([]byte, 4+len(data))
	binary.BigEndian.PutUint32(frame[:4], uint32(len(data)))
	copy(frame[4:], data)
	return frame, nil
}

func (frame32) DecodeFrame(frame []byte) ([]byte, error) {
	if len(frame) < 4 {
		return nil, errors.New("frame shorter than its length prefix")
	}

	size := int(binary.BigEndian.Uint32(frame[:4]))
	if size > MaxFrameSize {
		return nil, errors.Errorf("frame payload too large: %d bytes", size)
	}
	if size != len(frame)-4 {
		return nil, errors.Errorf("frame length mismatch: prefix says %d, got %d", size, len(frame)-4)
	}
	return frame[4:], nil
}

// WriteFrame writes data to w as one frame.
func WriteFrame(w io.Writer, data []byte) error {
	frame, err := New().EncodeFrame(data)
	if err != nil {
		return err
	}

	_, err = w.Write(frame)
	return errors.Wrap(err, "error writing frame")
}

// ReadFrame reads the next frame payload from r. It returns io.EOF when the
// stream ends cleanly between frames; a stream that ends inside a frame is
// an error.
func ReadFrame(r io.Reader) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "error reading frame length")
	}

	size := int(binary.BigEndian.Uint32(prefix[:]))
	if size > MaxFrameSize {
		return nil, errors.Errorf("frame payload too large: %d bytes", size)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrap(err, "error reading frame payload")
	}
	return data, nil
}
