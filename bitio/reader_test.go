package bitio

import (
	"io"
	"testing"
)

func TestReadBitOrder(t *testing.T) {
	r := NewReader([]byte{0xb0, 0x01})
	want := []uint{1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	for i, w := range want {
		b, err := r.ReadBit()
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if b != w {
			t.Errorf("bit %d: %d != %d", i, b, w)
		}
	}
	if _, err := r.ReadBit(); err != io.EOF {
		t.Fatalf("%v", err)
	}
	if r.Len() != 16 || r.Offset() != 16 || r.Remaining() != 0 {
		t.Errorf("offset %d remaining %d", r.Offset(), r.Remaining())
	}
}

func TestReadBits(t *testing.T) {
	// 1 | 011 0000 | 0000 0000 0101 | 1
	r := NewReader([]byte{0xb0, 0x00, 0x58})
	tests := []struct {
		n    uint
		want uint32
	}{
		{1, 1},
		{7, 0x30},
		{12, 5},
		{1, 1},
		{0, 0},
	}
	for _, test := range tests {
		v, err := r.ReadBits(test.n)
		if err != nil {
			t.Fatalf("%d: %v", test.n, err)
		}
		if v != test.want {
			t.Errorf("ReadBits(%d) = %#x, want %#x", test.n, v, test.want)
		}
	}
	if r.Offset() != 21 {
		t.Errorf("%d", r.Offset())
	}
}

func TestReadBitsTruncated(t *testing.T) {
	r := NewReader([]byte{0xff})
	if _, err := r.ReadBits(3); err != nil {
		t.Fatalf("%v", err)
	}
	if _, err := r.ReadBits(12); err != io.ErrUnexpectedEOF {
		t.Fatalf("%v", err)
	}
	// The cursor never moves backwards.
	if r.Offset() != 8 {
		t.Errorf("%d", r.Offset())
	}
	if _, err := r.ReadBit(); err != io.EOF {
		t.Errorf("%v", err)
	}
}

func TestReadBitsWidth(t *testing.T) {
	r := NewReader(make([]byte, 8))
	if _, err := r.ReadBits(33); err != ErrFieldWidth {
		t.Fatalf("%v", err)
	}
	if r.Offset() != 0 {
		t.Errorf("%d", r.Offset())
	}
	v, err := r.ReadBits(32)
	if err != nil || v != 0 {
		t.Fatalf("%d %v", v, err)
	}
}

func TestRestZero(t *testing.T) {
	tests := []struct {
		buf  []byte
		skip uint
		want bool
	}{
		{nil, 0, true},
		{[]byte{0, 0, 0}, 0, true},
		{[]byte{0, 0, 1}, 0, false},
		{[]byte{0x80}, 0, false},
		{[]byte{0x80}, 1, true},
		{[]byte{0xc0, 0}, 1, false},
		{[]byte{0xc0, 0}, 2, true},
		{[]byte{0xff}, 8, true},
	}
	for _, test := range tests {
		r := NewReader(test.buf)
		if _, err := r.ReadBits(test.skip); err != nil {
			t.Fatalf("%v", err)
		}
		if got := r.RestZero(); got != test.want {
			t.Errorf("%x skip %d: %t != %t", test.buf, test.skip, got, test.want)
		}
	}
}
