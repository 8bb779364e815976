package matroska

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// BinaryVariant distinguishes the specialised interpretations of a Binary
// body. Every id other than SeekId/SimpleBlock/Block/Void decodes to
// BinaryStandard.
type BinaryVariant int

// The six binary sub-interpretations: the body interpreter produces the
// first five, and BinaryCorruptedVariant marks synthetic Corrupted elements.
const (
	BinaryStandard BinaryVariant = iota
	BinarySeekID
	BinarySimpleBlock
	BinaryBlockVariant
	BinaryVoidVariant
	BinaryCorruptedVariant
)

// ebmlEpoch is the reference instant for EBML Date bodies: 2001-01-01T00:00:00 UTC.
var ebmlEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Body is the decoded, typed payload of a non-master element. Kind selects
// which of the fields below is meaningful, mirroring the sum type in
// spec's data model without the overhead of an interface per element.
type Body struct {
	Kind Kind

	Unsigned     uint64
	UnsignedEnum *EnumMember // set when the catalog restricts this id's values and Unsigned is a member

	Signed int64
	Float  float64
	Str    string // String or Utf8
	Date   time.Time

	BinaryVariant   BinaryVariant
	BinarySummary   string // BinaryStandard: hex listing or "N bytes"
	BinarySeekID    Id     // BinarySeekID
	SimpleBlock     *SimpleBlockHeader
	BlockHeaderOnly *BlockHeader // BinaryBlockVariant (no keyframe/discardable bits)
}

// parseBody decodes the body of a non-master element according to the
// catalog's value type for h.ID. data must already hold exactly *h.BodySize
// bytes; the driver is responsible for ensuring the full body is buffered
// before calling this, since sub-parsers (Block/SimpleBlock) re-enter the
// VINT codec on a payload that is already bounded.
func parseBody(h Header, data []byte) (Body, error) {
	kind := h.ID.Kind()

	switch kind {
	case KindUnsigned:
		return parseUnsignedBody(h.ID, data)
	case KindSigned:
		return parseSignedBody(data)
	case KindFloat:
		return parseFloatBody(data)
	case KindString:
		return parseStringBody(data, false)
	case KindUtf8:
		return parseStringBody(data, true)
	case KindDate:
		return parseDateBody(data)
	case KindBinary:
		return parseBinaryBody(h.ID, data)
	default:
		// KindMaster never reaches here: the driver/tree builder never
		// asks the body interpreter for a Master's non-existent body.
		return Body{}, fmt.Errorf("ebml: %s has no body interpretation", kind)
	}
}

func parseUnsignedBody(id Id, data []byte) (Body, error) {
	if len(data) > 8 {
		return Body{}, ErrForbiddenIntegerSize
	}
	var padded [8]byte
	copy(padded[8-len(data):], data)
	value := uint64(0)
	for _, b := range padded {
		value = value<<8 | uint64(b)
	}

	b := Body{Kind: KindUnsigned, Unsigned: value}
	if m, ok := id.EnumLabel(value); ok {
		b.UnsignedEnum = &m
	}
	return b, nil
}

func parseSignedBody(data []byte) (Body, error) {
	n := len(data)
	if n > 8 {
		return Body{}, ErrForbiddenIntegerSize
	}
	if n == 0 {
		return Body{Kind: KindSigned}, nil
	}

	value := int64(0)
	if data[0]&0x80 != 0 {
		value = -1 // sign-extend via all-ones prefix
	}
	for _, b := range data {
		value = value<<8 | int64(b)&0xFF
	}
	return Body{Kind: KindSigned, Signed: value}, nil
}

func parseFloatBody(data []byte) (Body, error) {
	switch len(data) {
	case 0:
		return Body{Kind: KindFloat, Float: 0}, nil
	case 4:
		bits := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
		return Body{Kind: KindFloat, Float: float64(math.Float32frombits(bits))}, nil
	case 8:
		var bits uint64
		for _, b := range data {
			bits = bits<<8 | uint64(b)
		}
		return Body{Kind: KindFloat, Float: math.Float64frombits(bits)}, nil
	default:
		return Body{}, ErrForbiddenFloatSize
	}
}

func parseStringBody(data []byte, isUtf8 bool) (Body, error) {
	if !utf8.Valid(data) {
		return Body{}, ErrInvalidUTF8
	}
	s := string(data)
	if !isUtf8 {
		s = strings.TrimRight(s, "\x00")
		return Body{Kind: KindString, Str: s}, nil
	}
	return Body{Kind: KindUtf8, Str: s}, nil
}

func parseDateBody(data []byte) (Body, error) {
	if len(data) != 8 {
		return Body{}, ErrInvalidDate
	}
	var bits uint64
	for _, b := range data {
		bits = bits<<8 | uint64(b)
	}
	nanos := int64(bits)
	return Body{Kind: KindDate, Date: ebmlEpoch.Add(time.Duration(nanos))}, nil
}

func parseBinaryBody(id Id, data []byte) (Body, error) {
	switch id {
	case SeekId:
		_, seekID, err := decodeID(data)
		if err != nil {
			return Body{}, err
		}
		return Body{Kind: KindBinary, BinaryVariant: BinarySeekID, BinarySeekID: seekID}, nil

	case SimpleBlock:
		_, sh, err := parseBlockHeader(data, true)
		if err != nil {
			return Body{}, err
		}
		return Body{Kind: KindBinary, BinaryVariant: BinarySimpleBlock, SimpleBlock: &sh}, nil

	case Block:
		_, sh, err := parseBlockHeader(data, false)
		if err != nil {
			return Body{}, err
		}
		return Body{Kind: KindBinary, BinaryVariant: BinaryBlockVariant, BlockHeaderOnly: &sh.BlockHeader}, nil

	case Void:
		return Body{Kind: KindBinary, BinaryVariant: BinaryVoidVariant}, nil

	default:
		return Body{Kind: KindBinary, BinaryVariant: BinaryStandard, BinarySummary: standardSummary(data)}, nil
	}
}

// standardSummary renders a Binary(Standard) payload: a bracketed,
// space-separated lowercase-hex byte listing for payloads up to 64 bytes,
// else a byte-count summary.
func standardSummary(data []byte) string {
	if len(data) > 64 {
		return fmt.Sprintf("%d bytes", len(data))
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, by := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", by)
	}
	b.WriteByte(']')
	return b.String()
}

// corruptedBody is the fixed Body value every synthetic Corrupted element
// carries.
var corruptedBody = Body{Kind: KindBinary, BinaryVariant: BinaryCorruptedVariant}
