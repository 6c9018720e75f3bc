// Package bitio reads bit-packed data held in memory.
// Bits are consumed most significant bit first within each byte.
package bitio

import (
	"fmt"
	"io"
)

// ErrFieldWidth is returned when a field wider than 32 bits is requested.
var ErrFieldWidth = fmt.Errorf("bitio: field wider than 32 bits")

// A Reader reads bits from an immutable byte slice.
// The cursor only moves forward.
type Reader struct {
	buf []byte
	off int // bit offset of the next unread bit
}

// NewReader returns a Reader positioned at the first bit of buf.
// The caller must not modify buf while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total number of bits in the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) * 8 }

// Offset returns the number of bits consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.Len() - r.off }

// ReadBit returns the next bit.
// io.EOF is returned once every bit has been consumed.
func (r *Reader) ReadBit() (uint, error) {
	if r.off >= r.Len() {
		return 0, io.EOF
	}
	b := (r.buf[r.off>>3] >> (7 - uint(r.off&7))) & 1
	r.off++
	return uint(b), nil
}

// ReadBits reads an n bit field, most significant bit first.
// If fewer than n bits remain, the remaining bits are consumed and
// io.ErrUnexpectedEOF is returned.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	if n > 32 {
		return 0, ErrFieldWidth
	}
	var v uint32
	for i := uint(0); i < n; i++ {
		b, err := r.ReadBit()
		if err != nil {
			return v, io.ErrUnexpectedEOF
		}
		v = v<<1 | uint32(b)
	}
	return v, nil
}

// RestZero reports whether every unread bit is zero.
// It is true when no bits remain.
func (r *Reader) RestZero() bool {
	i := r.off >> 3
	if i >= len(r.buf) {
		return true
	}
	if r.buf[i]<<uint(r.off&7) != 0 {
		return false
	}
	for _, b := range r.buf[i+1:] {
		if b != 0 {
			return false
		}
	}
	return true
}
