package matroska

import (
	"bytes"
	"io"
	"testing"
)

func TestDriverDecodesSequence(t *testing.T) {
	// Ebml(size 4){EbmlVersion=1} followed by a sibling EbmlVersion=2.
	var buf bytes.Buffer
	buf.Write([]byte{0x1A, 0x45, 0xDF, 0xA3, 0x84}) // Ebml, size 4
	buf.Write([]byte{0x42, 0x86, 0x81, 0x01})       // EbmlVersion = 1
	buf.Write([]byte{0x42, 0x86, 0x81, 0x02})       // EbmlVersion = 2

	d := NewDriver(&buf, Options{BufferSize: 64})

	var got []Element
	for {
		el, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got = append(got, el)
	}

	if len(got) != 3 {
		t.Fatalf("got %d elements, want 3", len(got))
	}
	if got[0].Header.ID != Ebml || got[0].Header.Position == nil || *got[0].Header.Position != 0 {
		t.Fatalf("got[0] = %+v", got[0])
	}
	if got[1].Header.ID != EbmlVersion || *got[1].Header.Position != 5 {
		t.Fatalf("got[1] = %+v", got[1])
	}
	if got[2].Body.Unsigned != 2 || *got[2].Header.Position != 9 {
		t.Fatalf("got[2] = %+v", got[2])
	}
}

func TestDriverResyncsPastGarbage(t *testing.T) {
	// A leading zero byte is never a legal VINT/id lead byte, so this
	// forces an immediate structural error (not ErrNeedData) and a
	// transition into corrupt mode; the scanner then finds the real Ebml
	// header's 4-byte id immediately after.
	var full bytes.Buffer
	full.Write([]byte{0x00, 0x00, 0x00, 0x00})
	full.Write([]byte{0x1A, 0x45, 0xDF, 0xA3, 0x84})
	full.Write([]byte{0x42, 0x86, 0x81, 0x01})

	d := NewDriver(&full, Options{BufferSize: 64})

	first, err := d.Next()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !isCorrupted(first) {
		t.Fatalf("got %+v, want a Corrupted element first", first)
	}
	if first.Header.BodySize == nil || *first.Header.BodySize != 4 {
		t.Fatalf("got BodySize=%v, want 4", first.Header.BodySize)
	}

	second, err := d.Next()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second.Header.ID != Ebml {
		t.Fatalf("got %+v, want Ebml", second)
	}
}

func TestDriverEndOfFileResidue(t *testing.T) {
	// A header announcing more bytes than actually follow.
	buf := bytes.NewBuffer([]byte{0x42, 0x86, 0x82, 0x01})
	d := NewDriver(buf, Options{BufferSize: 64})

	el, err := d.Next()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !isCorrupted(el) {
		t.Fatalf("got %+v, want a Corrupted residue element", el)
	}

	if _, err := d.Next(); err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestDriverOutOfBufferSpace(t *testing.T) {
	// DocType (a String element, not Binary) declaring a 4096-byte body:
	// far larger than the buffer, and a kind the driver does not
	// special-case for oversized skipping, so it can never make progress.
	// (An Unsigned/Signed/Float element this oversized would instead be
	// rejected immediately as ErrForbiddenIntegerSize/ErrForbiddenFloatSize
	// before the buffer ever comes into it — see checkDeclaredSize.)
	buf := bytes.NewBuffer(append([]byte{0x42, 0x82, 0x10, 0x00, 0x10, 0x00}, make([]byte, 10)...))
	d := NewDriver(buf, Options{BufferSize: 8})

	if _, err := d.Next(); err != ErrOutOfBufferSpace {
		t.Fatalf("err = %v, want ErrOutOfBufferSpace", err)
	}
}
