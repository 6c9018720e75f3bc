package huf

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

func zstdWrap(t *testing.T, b []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("%v", err)
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil)
}

func gzipWrap(t *testing.T, b []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		t.Fatalf("%v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("%v", err)
	}
	return buf.Bytes()
}

func s2Wrap(t *testing.T, b []byte) []byte {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	if _, err := w.Write(b); err != nil {
		t.Fatalf("%v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("%v", err)
	}
	return buf.Bytes()
}

func TestDecompressContainers(t *testing.T) {
	const text = "she sells sea shells by the sea shore"
	raw := encode(t, text, encodeOptions{})
	tests := []struct {
		name      string
		data      []byte
		container Container
	}{
		{name: "raw", data: raw, container: ContainerRaw},
		{name: "raw auto", data: raw, container: ContainerAuto},
		{name: "zstd", data: zstdWrap(t, raw), container: ContainerZstd},
		{name: "zstd auto", data: zstdWrap(t, raw), container: ContainerAuto},
		{name: "gzip", data: gzipWrap(t, raw), container: ContainerGzip},
		{name: "gzip auto", data: gzipWrap(t, raw), container: ContainerAuto},
		{name: "s2", data: s2Wrap(t, raw), container: ContainerS2},
		{name: "s2 auto", data: s2Wrap(t, raw), container: ContainerAuto},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Decompress(&out, bytes.NewReader(test.data), Config{Container: test.container})
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if diff := cmp.Diff(text, out.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		data []byte
		want Container
	}{
		{nil, ContainerRaw},
		{[]byte{0xb0}, ContainerRaw},
		{[]byte{0x28, 0xb5, 0x2f, 0xfd, 0}, ContainerZstd},
		{[]byte{0x1f, 0x8b, 8}, ContainerGzip},
		{[]byte("\xff\x06\x00\x00S2sTwO"), ContainerS2},
		{[]byte("\xff\x06\x00\x00sNaPpY"), ContainerS2},
	}
	for _, test := range tests {
		if got := sniff(test.data); got != test.want {
			t.Errorf("%x: %s != %s", test.data, got, test.want)
		}
	}
}

func TestReadInputAutoFallback(t *testing.T) {
	// Looks like gzip but is not; auto takes it as a raw stream.
	data := []byte{0x1f, 0x8b, 0xff, 0xff}
	got, err := readInput(bytes.NewReader(data), ContainerAuto)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("%x", got)
	}

	if _, err := readInput(bytes.NewReader(data), ContainerGzip); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("%v", err)
	}
	if _, err := readInput(bytes.NewReader(data), ContainerZstd); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("%v", err)
	}
}

func TestDecompressUnknownContainer(t *testing.T) {
	_, err := Decompress(&bytes.Buffer{}, bytes.NewReader([]byte{0xb0}), Config{Container: "lzma"})
	if err == nil {
		t.Fatalf("expected error")
	}
}
