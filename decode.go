package huf

import (
	"bufio"
	"bytes"
	"io"

	"github.com/fumin/huf/bitio"
	"github.com/pkg/errors"
)

// Stats summarizes a decode.
type Stats struct {
	Chunks  int   // chunk headers read
	Symbols int64 // symbols decoded
	Bytes   int64 // bytes written
	Bits    int   // encoded bits consumed, excluding padding
}

type decodeState int

const (
	readingChunkHeader decodeState = iota
	decodingSymbol
	done
	failed
)

// A streamDecoder decodes the chunks following a code tree.
type streamDecoder struct {
	r    *bitio.Reader
	tree *Tree
	w    *bufio.Writer

	state     decodeState
	remaining int // symbols left in the current chunk
	err       error
	scratch   []byte
	stats     Stats
}

func (d *streamDecoder) run() error {
	for {
		switch d.state {
		case readingChunkHeader:
			d.readChunkHeader()
		case decodingSymbol:
			d.decodeSymbol()
		case done:
			d.stats.Bits = d.r.Offset()
			if err := d.w.Flush(); err != nil {
				return newIOError("write", err)
			}
			return nil
		case failed:
			return d.err
		}
	}
}

func (d *streamDecoder) fail(err error) {
	d.err = err
	d.state = failed
}

func (d *streamDecoder) readChunkHeader() {
	// Fewer than 8 zero bits cannot hold a chunk header and its symbols;
	// they are the padding of the last byte.
	if d.r.Remaining() < 8 && d.r.RestZero() {
		d.state = done
		return
	}

	start := d.r.Offset()
	b, err := d.r.ReadBit()
	if err != nil {
		d.fail(errors.Wrapf(ErrTruncatedStream, "chunk header at bit %d", start))
		return
	}
	size := FixedChunkSize
	if b == 0 {
		v, err := d.r.ReadBits(chunkSizeBits)
		if err != nil {
			d.fail(errors.Wrapf(ErrTruncatedStream, "chunk header at bit %d", start))
			return
		}
		size = int(v)
	}
	d.stats.Chunks++
	d.remaining = size
	d.state = decodingSymbol
}

func (d *streamDecoder) decodeSymbol() {
	if d.remaining == 0 {
		d.state = readingChunkHeader
		return
	}

	sym, err := d.tree.next(d.r)
	if err != nil {
		d.fail(errors.Wrapf(err, "chunk %d short by %d symbols", d.stats.Chunks, d.remaining))
		return
	}
	d.scratch = sym.AppendTo(d.scratch[:0])
	if _, err := d.w.Write(d.scratch); err != nil {
		d.fail(newIOError("write", err))
		return
	}
	d.stats.Symbols++
	d.stats.Bytes += int64(sym.Len())
	d.remaining--
}

// Decode decodes the encoded stream data and writes the result to w.
// Output is buffered; on failure w may hold a partial result.
func Decode(w io.Writer, data []byte, cfg Config) (Stats, error) {
	// A valid stream has at least one leaf marker, i.e. a 1 bit.
	if bitio.NewReader(data).RestZero() {
		return Stats{}, errors.Wrap(ErrInvalidEncoding, "input has no set bits")
	}

	r := bitio.NewReader(data)
	tree, err := ReadTree(r, cfg.MaxTreeDepth)
	if err != nil {
		return Stats{}, err
	}
	d := &streamDecoder{
		r:       r,
		tree:    tree,
		w:       bufio.NewWriter(w),
		state:   readingChunkHeader,
		scratch: make([]byte, 0, maxSeqLen),
	}
	err = d.run()
	return d.stats, err
}

// DecodeBytes decodes the encoded stream data and returns the result.
func DecodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decode(&buf, data, DefaultConfig()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
