package huf

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// A Container is a general purpose compression format an encoded stream may be wrapped in.
type Container string

const (
	ContainerRaw  Container = "raw"
	ContainerAuto Container = "auto"
	ContainerZstd Container = "zstd"
	ContainerGzip Container = "gzip"
	ContainerS2   Container = "s2"
)

var (
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic   = []byte{0x1f, 0x8b}
	s2Magic     = []byte("\xff\x06\x00\x00S2sTwO")
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

func (c Container) valid() bool {
	switch c {
	case ContainerRaw, ContainerAuto, ContainerZstd, ContainerGzip, ContainerS2:
		return true
	}
	return false
}

// sniff guesses the container of b from its magic bytes.
func sniff(b []byte) Container {
	switch {
	case bytes.HasPrefix(b, zstdMagic):
		return ContainerZstd
	case bytes.HasPrefix(b, gzipMagic):
		return ContainerGzip
	case bytes.HasPrefix(b, s2Magic), bytes.HasPrefix(b, snappyMagic):
		return ContainerS2
	}
	return ContainerRaw
}

// readInput loads all of src and unwraps it from container c.
// With ContainerAuto, input that looks like a container but fails to open
// is taken to be a raw stream.
func readInput(src io.Reader, c Container) ([]byte, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, newIOError("read", err)
	}
	switch c {
	case ContainerRaw, "":
		return b, nil
	case ContainerAuto:
		sniffed := sniff(b)
		if sniffed == ContainerRaw {
			return b, nil
		}
		unwrapped, err := unwrap(b, sniffed)
		if err != nil {
			return b, nil
		}
		return unwrapped, nil
	}
	return unwrap(b, c)
}

func unwrap(b []byte, c Container) ([]byte, error) {
	switch c {
	case ContainerZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		defer dec.Close()
		out, err := dec.DecodeAll(b, nil)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		return out, nil
	case ContainerGzip:
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		return out, nil
	case ContainerS2:
		out, err := io.ReadAll(s2.NewReader(bytes.NewReader(b)))
		if err != nil {
			return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
		}
		return out, nil
	}
	return nil, errors.Errorf("unknown container %q", c)
}
