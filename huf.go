// Package huf decodes prefix-code (Huffman) compressed streams.
//
// An encoded stream starts with its code tree serialized in pre-order:
// a 0 bit for an internal node followed by its left and right subtrees,
// or a 1 bit for a leaf followed by the leaf's symbol.
// A symbol is an ASCII code unit, or a 2 to 4 byte sequence laid out like UTF-8.
// The tree is followed by chunks, each a header and then that many symbols,
// each symbol being the path from the root to its leaf (0 left, 1 right).
// A chunk header is a single 1 bit for a chunk of FixedChunkSize symbols,
// or a 0 bit followed by a 12 bit symbol count.
// Chunks follow one another until the stream is exhausted.
//
// Below is an example of decoding a file with the bundled command:
//    go run decompress/main.go test0.huf test0.txt
package huf

import (
	"fmt"
)

const (
	// FixedChunkSize is the number of symbols in a chunk whose header is a single 1 bit.
	FixedChunkSize = 4096

	// chunkSizeBits is the width of an explicit chunk size field.
	chunkSizeBits = 12

	// DefaultMaxTreeDepth bounds the depth of a code tree read from a stream.
	DefaultMaxTreeDepth = 1 << 16
)

var (
	// ErrInvalidEncoding is returned when a stream is malformed:
	// a code tree without a leaf, a bad lead or continuation byte in a symbol,
	// or an input that is all zero bits.
	ErrInvalidEncoding = fmt.Errorf("invalid encoding")

	// ErrTruncatedStream is returned when a stream ends in the middle of a
	// symbol or chunk header, or before a chunk has all its declared symbols.
	ErrTruncatedStream = fmt.Errorf("truncated stream")

	// ErrIO matches every error caused by reading the input or writing the output.
	ErrIO = fmt.Errorf("i/o error")
)

// ioError wraps a failure of the underlying reader, writer or file.
type ioError struct {
	op  string
	err error
}

func newIOError(op string, err error) error {
	return &ioError{op: op, err: err}
}

func (e *ioError) Error() string { return e.op + ": " + e.err.Error() }

func (e *ioError) Unwrap() error { return e.err }

func (e *ioError) Is(target error) bool { return target == ErrIO }
