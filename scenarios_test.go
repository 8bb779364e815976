package matroska

import (
	"bytes"
	"io"
	"testing"
	"time"
)

// TestSpecScenarios exercises the acceptance scenarios. All but S7 are
// decoded through the full Driver so the test covers header parsing, body
// interpretation, and (for S6) the resync path together rather than any
// single component in isolation; S7 feeds its bytes straight to the block
// decoder.
func TestSpecScenarios(t *testing.T) {
	t.Run("S1 EBML header", func(t *testing.T) {
		b := []byte{
			0x1A, 0x45, 0xDF, 0xA3, 0x9F, // Ebml, size 31
			0x42, 0x86, 0x81, 0x01, // EbmlVersion = 1
			0x42, 0xF7, 0x81, 0x01, // EbmlReadVersion = 1
			0x42, 0xF2, 0x81, 0x04, // EbmlMaxIdLength = 4
			0x42, 0xF3, 0x81, 0x08, // EbmlMaxSizeLength = 8
			0x42, 0x82, 0x84, 0x77, 0x65, 0x62, 0x6D, // DocType = "webm"
			0x42, 0x87, 0x81, 0x04, // DocTypeVersion = 4
			0x42, 0x85, 0x81, 0x02, // DocTypeReadVersion = 2
		}
		elems := decodeAllOrFatal(t, b, 64)
		if len(elems) != 8 {
			t.Fatalf("got %d elements, want 8", len(elems))
		}
		if elems[0].Header.ID != Ebml || elems[0].Header.BodySize == nil || *elems[0].Header.BodySize != 31 {
			t.Fatalf("elems[0] = %+v", elems[0])
		}
		want := []struct {
			id    Id
			value uint64
		}{
			{EbmlVersion, 1},
			{EbmlReadVersion, 1},
			{EbmlMaxIdLength, 4},
			{EbmlMaxSizeLength, 8},
		}
		for i, w := range want {
			got := elems[i+1]
			if got.Header.ID != w.id || got.Body.Unsigned != w.value {
				t.Fatalf("elems[%d] = %+v, want id=%v value=%d", i+1, got, w.id, w.value)
			}
		}
		if elems[5].Header.ID != DocType || elems[5].Body.Str != "webm" {
			t.Fatalf("DocType = %+v", elems[5])
		}
		if elems[6].Header.ID != DocTypeVersion || elems[6].Body.Unsigned != 4 {
			t.Fatalf("DocTypeVersion = %+v", elems[6])
		}
	})

	t.Run("S2 TrackType enumeration", func(t *testing.T) {
		b := []byte{0x83, 0x81, 0x01}
		elems := decodeAllOrFatal(t, b, 64)
		if len(elems) != 1 {
			t.Fatalf("got %d elements, want 1", len(elems))
		}
		el := elems[0]
		if el.Header.ID != TrackType || el.Body.Unsigned != 1 {
			t.Fatalf("got %+v", el)
		}
		if el.Body.UnsignedEnum == nil || el.Body.UnsignedEnum.WireLabel != "video" {
			t.Fatalf("got UnsignedEnum=%+v, want wire label \"video\"", el.Body.UnsignedEnum)
		}
	})

	t.Run("S3 TrackType standard value", func(t *testing.T) {
		b := []byte{0x83, 0x81, 0xFF}
		elems := decodeAllOrFatal(t, b, 64)
		if len(elems) != 1 {
			t.Fatalf("got %d elements, want 1", len(elems))
		}
		el := elems[0]
		if el.Header.ID != TrackType || el.Body.Unsigned != 255 {
			t.Fatalf("got %+v", el)
		}
		if el.Body.UnsignedEnum != nil {
			t.Fatalf("got UnsignedEnum=%+v, want nil (255 is not a member)", el.Body.UnsignedEnum)
		}
	})

	t.Run("S4 SeekId binary", func(t *testing.T) {
		b := []byte{0x53, 0xAB, 0x84, 0x15, 0x49, 0xA9, 0x66}
		elems := decodeAllOrFatal(t, b, 64)
		if len(elems) != 1 {
			t.Fatalf("got %d elements, want 1", len(elems))
		}
		el := elems[0]
		if el.Header.ID != SeekId || el.Body.BinaryVariant != BinarySeekID || el.Body.BinarySeekID != Info {
			t.Fatalf("got %+v", el)
		}
	})

	t.Run("S5 Crc32 hex summary", func(t *testing.T) {
		b := []byte{0xBF, 0x84, 0xAF, 0x93, 0x97, 0x18}
		elems := decodeAllOrFatal(t, b, 64)
		if len(elems) != 1 {
			t.Fatalf("got %d elements, want 1", len(elems))
		}
		el := elems[0]
		if el.Header.ID != Crc32 || el.Body.BinaryVariant != BinaryStandard {
			t.Fatalf("got %+v", el)
		}
		if el.Body.BinarySummary != "[af 93 97 18]" {
			t.Fatalf("got summary %q, want \"[af 93 97 18]\"", el.Body.BinarySummary)
		}
	})

	t.Run("S6 forbidden integer size resyncs onto Segment", func(t *testing.T) {
		// DocTypeVersion (0x4287, Unsigned) declares size 16, forbidden for
		// an integer kind; the scanner resyncs past the bogus header plus
		// one stray byte and lands exactly on Segment's id. A trailing 0xFF
		// (unknown-size sentinel) is appended so the resync target decodes
		// to a complete header, the way it would against a longer stream.
		b := []byte{0x42, 0x87, 0x90, 0x01, 0x18, 0x53, 0x80, 0x67, 0xFF}
		elems := decodeAllOrFatal(t, b, 64)
		if len(elems) != 2 {
			t.Fatalf("got %d elements, want 2", len(elems))
		}
		if !isCorrupted(elems[0]) || elems[0].Header.BodySize == nil || *elems[0].Header.BodySize != 4 {
			t.Fatalf("elems[0] = %+v, want Corrupted body_size=4", elems[0])
		}
		if elems[1].Header.ID != Segment || elems[1].Header.BodySize != nil {
			t.Fatalf("elems[1] = %+v, want Segment with unknown size", elems[1])
		}
	})

	t.Run("S7 block header", func(t *testing.T) {
		b := []byte{0x81, 0x0F, 0x7A, 0x00}
		_, sh, err := parseBlockHeader(b, false)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if sh.TrackNumber != 1 || sh.Timestamp != 3962 || sh.Invisible || sh.Lacing != LacingNone || sh.NumFrames != nil {
			t.Fatalf("got %+v", sh)
		}
	})

	t.Run("S8 DateUtc instant", func(t *testing.T) {
		b := []byte{0x44, 0x61, 0x88, 0x09, 0x76, 0x97, 0xBD, 0xCA, 0xC9, 0x1E, 0x00}
		elems := decodeAllOrFatal(t, b, 64)
		if len(elems) != 1 {
			t.Fatalf("got %d elements, want 1", len(elems))
		}
		el := elems[0]
		if el.Header.ID != DateUtc {
			t.Fatalf("got %+v", el)
		}
		want := time.Date(2022, time.August, 11, 8, 27, 15, 0, time.UTC)
		if !el.Body.Date.Equal(want) {
			t.Fatalf("got Date=%v, want %v", el.Body.Date, want)
		}
	})
}

func decodeAllOrFatal(t *testing.T, b []byte, bufferSize int) []Element {
	t.Helper()
	d := NewDriver(bytes.NewReader(b), Options{BufferSize: bufferSize})
	var elems []Element
	for {
		el, err := d.Next()
		if err == io.EOF {
			return elems
		}
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		elems = append(elems, el)
	}
}
