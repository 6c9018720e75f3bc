package huf

import (
	"fmt"

	"github.com/fumin/huf/bitio"
	"github.com/pkg/errors"
)

// maxSeqLen is the longest multi-byte symbol.
const maxSeqLen = 4

// A Symbol is the value of a code tree leaf.
// It holds the bytes of one ASCII or multi-byte sequence packed big endian,
// e.g. '0' is 0x30 and "é" is 0xC3A9.
type Symbol uint32

// AppendTo appends the bytes of s to dst, most significant non-zero byte first.
// The lowest byte is always appended, even when it is zero.
func (s Symbol) AppendTo(dst []byte) []byte {
	switch {
	case s > 0xffffff:
		dst = append(dst, byte(s>>24))
		fallthrough
	case s > 0xffff:
		dst = append(dst, byte(s>>16))
		fallthrough
	case s > 0xff:
		dst = append(dst, byte(s>>8))
		fallthrough
	default:
		dst = append(dst, byte(s))
	}
	return dst
}

// Len returns the number of bytes AppendTo emits for s.
func (s Symbol) Len() int {
	switch {
	case s > 0xffffff:
		return 4
	case s > 0xffff:
		return 3
	case s > 0xff:
		return 2
	}
	return 1
}

func (s Symbol) String() string {
	return fmt.Sprintf("%q", s.AppendTo(nil))
}

// readSymbol reads a leaf's symbol.
// The number of leading one bits k of the lead byte gives the sequence length:
// k == 0 is a 7 bit ASCII code unit, k in [2, maxSeqLen] is a k byte sequence
// whose k-1 continuation bytes must each match 10xxxxxx.
func readSymbol(r *bitio.Reader) (Symbol, error) {
	start := r.Offset()
	k := 0
	for k <= maxSeqLen {
		b, err := r.ReadBit()
		if err != nil {
			return 0, errors.Wrapf(ErrTruncatedStream, "symbol at bit %d", start)
		}
		if b == 0 {
			break
		}
		k++
	}
	if k == 1 || k > maxSeqLen {
		return 0, errors.Wrapf(ErrInvalidEncoding, "symbol at bit %d: lead byte has %d leading ones", start, k)
	}

	// The lead byte carries 7-k payload bits after its length prefix.
	payload, err := r.ReadBits(uint(7 - k))
	if err != nil {
		return 0, errors.Wrapf(ErrTruncatedStream, "symbol at bit %d", start)
	}
	v := payload
	if k > 0 {
		v |= (uint32(0xff) << (8 - k)) & 0xff
	}

	for i := 1; i < k; i++ {
		c, err := r.ReadBits(8)
		if err != nil {
			return 0, errors.Wrapf(ErrTruncatedStream, "symbol at bit %d", start)
		}
		if c&0xc0 != 0x80 {
			return 0, errors.Wrapf(ErrInvalidEncoding, "symbol at bit %d: continuation byte %#02x", start, c)
		}
		v = v<<8 | c
	}
	return Symbol(v), nil
}
