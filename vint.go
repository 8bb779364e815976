package matroska

// allOnesSizes is the "unknown size" sentinel value for each VINT width,
// indexed by width-1: all of the value's 7*(k+1) bits set to one.
var allOnesSizes = [8]uint64{
	0x7F,
	0x3FFF,
	0x1FFFFF,
	0xFFFFFFF,
	0x7FFFFFFFF,
	0x3FFFFFFFFFF,
	0x1FFFFFFFFFFFF,
	0xFFFFFFFFFFFFFF,
}

// decodeVarint decodes an EBML variable-length integer (VINT) from the
// front of b. A VINT is a big-endian unsigned integer prefixed by a width
// marker: the count of leading zero bits in the first byte, k, means the
// VINT occupies k+1 bytes; the value is the remaining 7*(k+1) bits.
//
// It returns the number of bytes consumed, the decoded value, and whether
// the value is the "unknown size" sentinel (every value bit set to one).
// Size fields that hit the sentinel are legal only on Segment and Cluster;
// callers enforce that, decodeVarint only reports the fact.
func decodeVarint(b []byte) (consumed int, value uint64, unknown bool, err error) {
	if len(b) == 0 {
		return 0, 0, false, ErrNeedData
	}
	first := b[0]
	if first == 0x00 {
		return 0, 0, false, ErrInvalidVarint
	}

	width := leadingZeroBits(first) + 1
	if len(b) < width {
		return 0, 0, false, ErrNeedData
	}

	value = uint64(first) &^ (1 << uint(8-width))
	for i := 1; i < width; i++ {
		value = value<<8 | uint64(b[i])
	}

	maxValue := allOnesSizes[width-1]
	return width, value, value == maxValue, nil
}

// decodeID decodes an EBML element identifier from the front of b. Ids use
// the same width-marker prefix as VINTs but retain the marker bits in the
// returned value (that is the wire identity of an id) and are limited to
// four bytes.
func decodeID(b []byte) (consumed int, id Id, err error) {
	if len(b) == 0 {
		return 0, 0, ErrNeedData
	}
	first := b[0]
	if first == 0x00 {
		return 0, 0, ErrInvalidId
	}

	width := leadingZeroBits(first) + 1
	if width > 4 {
		return 0, 0, ErrInvalidId
	}
	if len(b) < width {
		return 0, 0, ErrNeedData
	}

	var value uint32
	for i := 0; i < width; i++ {
		value = value<<8 | uint32(b[i])
	}

	return width, Id(value), nil
}

// leadingZeroBits counts the number of leading zero bits in b, stopping at
// 8 (an all-zero byte, which is never a legal VINT/id lead byte).
func leadingZeroBits(b byte) int {
	n := 0
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		if b&mask != 0 {
			return n
		}
		n++
	}
	return 8
}
