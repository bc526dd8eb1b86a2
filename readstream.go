// SPDX-License-Identifier: MIT

package rapidstruct

// readStream is the processor's read scratch buffer: a growable byte array
// with two parallel stacks. The mark stack saves read positions, the end
// stack saves per-layer end offsets. Each nested decode pushes its payload
// as a new layer whose remaining() is exactly that payload's length, so the
// inner loop can never read past its own field into the outer stream. The
// inner payload is copied behind the outer layer's end, and the outer call
// has already read past that payload when the recursion starts; on return
// its position goes back to the read position saved at push time.
type readStream struct {
	buf []byte
	pos int

	marks []int
	ends  []int
}

func newReadStream() *readStream {
	return &readStream{
		buf:  make([]byte, expansionIncrement),
		ends: []int{0},
	}
}

func (rs *readStream) reset() {
	rs.pos = 0
	rs.marks = rs.marks[:0]
	rs.ends = rs.ends[:1]
	rs.ends[0] = 0
}

// remaining returns how many bytes of the active layer are left to read.
func (rs *readStream) remaining() int {
	return rs.ends[len(rs.ends)-1] - rs.pos
}

func (rs *readStream) expand(end, n int) {
	need := end + n
	if need <= len(rs.buf) {
		return
	}

	overflow := need - len(rs.buf)
	incs := (overflow + expansionIncrement - 1) / expansionIncrement
	next := make([]byte, len(rs.buf)+incs*expansionIncrement)
	copy(next, rs.buf)
	rs.buf = next
}

// pushBytes appends p behind the current layer's end, saves the current read
// position, and makes p the active layer.
func (rs *readStream) pushBytes(p []byte) {
	end := rs.ends[len(rs.ends)-1]
	rs.expand(end, len(p))

	rs.marks = append(rs.marks, rs.pos)
	copy(rs.buf[end:], p)
	rs.pos = end
	rs.ends = append(rs.ends, end+len(p))
}

// popBytes restores the read position saved by the matching pushBytes and
// drops the topmost layer.
func (rs *readStream) popBytes() {
	rs.pos = rs.marks[len(rs.marks)-1]
	rs.marks = rs.marks[:len(rs.marks)-1]
	rs.ends = rs.ends[:len(rs.ends)-1]
}

// readByte returns the next byte. The caller checks remaining() first.
func (rs *readStream) readByte() byte {
	b := rs.buf[rs.pos]
	rs.pos++
	return b
}

// readBytes fills out with the next available bytes, bounded by the active
// layer, and returns how many were copied.
func (rs *readStream) readBytes(out []byte) int {
	n := len(out)
	if left := rs.remaining(); n > left {
		n = left
	}
	copy(out, rs.buf[rs.pos:rs.pos+n])
	rs.pos += n
	return n
}
