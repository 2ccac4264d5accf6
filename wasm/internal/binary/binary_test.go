package binary

import (
	"bytes"
	"testing"
)

func TestWriterU32LE(t *testing.T) {
	w := NewWriter()
	w.WriteU32LE(0x6d736100)
	if got := w.Bytes(); !bytes.Equal(got, []byte{0x00, 0x61, 0x73, 0x6d}) {
		t.Errorf("WriteU32LE = % x", got)
	}
}

func TestWriterName(t *testing.T) {
	w := NewWriter()
	w.WriteName("env")
	if got := w.Bytes(); !bytes.Equal(got, []byte{0x03, 'e', 'n', 'v'}) {
		t.Errorf("WriteName = % x", got)
	}
}

func TestReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Byte(0x60)
	w.WriteU32(300)
	w.WriteU32LE(1)

	r := NewReader(w.Bytes())
	if b, err := r.Byte(); err != nil || b != 0x60 {
		t.Fatalf("Byte = %x, %v", b, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 300 {
		t.Fatalf("ReadU32 = %d, %v", v, err)
	}
	if v, err := r.ReadU32LE(); err != nil || v != 1 {
		t.Fatalf("ReadU32LE = %d, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d", r.Remaining())
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadBytes(3); err != ErrUnterminated {
		t.Errorf("ReadBytes past end: %v", err)
	}
	if _, err := r.ReadU32LE(); err != ErrUnterminated {
		t.Errorf("ReadU32LE past end: %v", err)
	}
	if err := r.Skip(5); err != ErrUnterminated {
		t.Errorf("Skip past end: %v", err)
	}
}
