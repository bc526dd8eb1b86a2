// SPDX-License-Identifier: MIT

package rapidstruct

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteStreamMarks(t *testing.T) {
	r := require.New(t)
	ws := newWriteStream(expansionIncrement)

	ws.pushMark()
	ws.write([]byte{1, 2, 3})

	// a nested mark scopes its own slice
	ws.pushMark()
	ws.write([]byte{4, 5})
	r.Equal([]byte{4, 5}, ws.copyFromLastMark())
	ws.goToLastMark()
	ws.popMark()

	// the outer scope continues where the inner one rewound to
	ws.write([]byte{6})
	r.Equal([]byte{1, 2, 3, 6}, ws.copyFromLastMark())
	r.Equal(4, ws.bytesWritten())
}

func TestWriteStreamExpansion(t *testing.T) {
	r := require.New(t)
	ws := newWriteStream(expansionIncrement)

	ws.pushMark()
	chunk := bytes.Repeat([]byte{0xab}, 1000)
	for i := 0; i < 10; i++ {
		ws.write(chunk)
	}
	out := ws.copyFromLastMark()
	r.Len(out, 10000)
	r.Equal(chunk, out[9000:])

	// growth rounds up to whole increments
	r.Equal(0, len(ws.buf)%expansionIncrement)
	r.True(len(ws.buf) >= 10000)
}

func TestWriteStreamReset(t *testing.T) {
	r := require.New(t)
	ws := newWriteStream(expansionIncrement)

	ws.pushMark()
	ws.writeByte(0xff)
	ws.reset()
	r.Equal(0, ws.bytesWritten())

	ws.pushMark()
	ws.write([]byte{1})
	r.Equal([]byte{1}, ws.copyFromLastMark())
}

func TestReadStreamLayers(t *testing.T) {
	r := require.New(t)
	rs := newReadStream()

	rs.pushBytes([]byte{1, 2, 3, 4})
	r.Equal(4, rs.remaining())
	r.Equal(byte(1), rs.readByte())
	r.Equal(byte(2), rs.readByte())

	// push a nested layer mid-read; remaining() is scoped to it
	rs.pushBytes([]byte{9, 8})
	r.Equal(2, rs.remaining())
	r.Equal(byte(9), rs.readByte())
	r.Equal(byte(8), rs.readByte())
	r.Equal(0, rs.remaining())
	rs.popBytes()

	// back in the outer layer, exactly where we left off
	r.Equal(2, rs.remaining())
	r.Equal(byte(3), rs.readByte())
	r.Equal(byte(4), rs.readByte())
	rs.popBytes()
}

func TestReadStreamBoundedRead(t *testing.T) {
	r := require.New(t)
	rs := newReadStream()

	rs.pushBytes([]byte{1, 2, 3})
	out := make([]byte, 5)
	n := rs.readBytes(out)
	r.Equal(3, n)
	r.Equal([]byte{1, 2, 3}, out[:n])
	r.Equal(0, rs.remaining())
	rs.popBytes()
}

func TestReadStreamReset(t *testing.T) {
	r := require.New(t)
	rs := newReadStream()

	rs.pushBytes([]byte{1, 2})
	rs.readByte()
	rs.reset()

	rs.pushBytes([]byte{7})
	r.Equal(1, rs.remaining())
	r.Equal(byte(7), rs.readByte())
	rs.popBytes()
}

func TestReadStreamExpansion(t *testing.T) {
	r := require.New(t)
	rs := newReadStream()

	big := bytes.Repeat([]byte{0xcd}, 3*expansionIncrement)
	rs.pushBytes(big)
	r.Equal(len(big), rs.remaining())

	out := make([]byte, len(big))
	r.Equal(len(big), rs.readBytes(out))
	r.Equal(big, out)
	rs.popBytes()
}
