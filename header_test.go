package matroska

import "testing"

func TestParseHeader(t *testing.T) {
	t.Run("known size", func(t *testing.T) {
		// Ebml id (4 bytes) + size VINT 0x85 (1 byte, value 5)
		b := []byte{0x1A, 0x45, 0xDF, 0xA3, 0x85}
		consumed, h, err := parseHeader(b)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if consumed != 5 || h.ID != Ebml || h.HeaderSize != 5 {
			t.Fatalf("got consumed=%d id=%v headerSize=%d", consumed, h.ID, h.HeaderSize)
		}
		if h.BodySize == nil || *h.BodySize != 5 {
			t.Fatalf("got BodySize=%v, want 5", h.BodySize)
		}
	})

	t.Run("unknown size allowed on Segment", func(t *testing.T) {
		b := []byte{0x18, 0x53, 0x80, 0x67, 0xFF}
		_, h, err := parseHeader(b)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if h.BodySize != nil {
			t.Fatalf("want nil BodySize for unknown size, got %v", h.BodySize)
		}
	})

	t.Run("unknown size forbidden elsewhere", func(t *testing.T) {
		// Info id (0x1549A966) with an unknown-size marker.
		b := []byte{0x15, 0x49, 0xA9, 0x66, 0xFF}
		_, _, err := parseHeader(b)
		if err != ErrForbiddenUnknownSize {
			t.Fatalf("err = %v, want ErrForbiddenUnknownSize", err)
		}
	})
}

func TestHeaderTotalSize(t *testing.T) {
	size := uint64(10)
	h := Header{HeaderSize: 3, BodySize: &size}
	total, ok := h.TotalSize()
	if !ok || total != 13 {
		t.Fatalf("got (%d, %v), want (13, true)", total, ok)
	}

	h2 := Header{HeaderSize: 3}
	if _, ok := h2.TotalSize(); ok {
		t.Fatalf("want ok=false for unknown size")
	}
}
