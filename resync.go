package matroska

// syncIDBytes holds the big-endian wire encoding of each SyncIDs entry, to
// be scanned for directly — these are exactly the 4-octet ids EBML
// reserves "for resynchronizing to major structures in the event of data
// corruption or loss".
var syncIDBytes = func() [][4]byte {
	out := make([][4]byte, len(SyncIDs))
	for i, id := range SyncIDs {
		v := uint32(id)
		out[i] = [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	}
	return out
}()

// findValidElement scans b for the shortest-offset occurrence of any SYNC
// id. On a hit at offset o it returns a synthetic Corrupted element
// accounting for the o skipped bytes; the matched id's bytes themselves are
// left in the stream for the next parse attempt. It fails with
// ErrValidElementNotFound if no SYNC id occurs anywhere in b.
func findValidElement(b []byte) (skip int, el Element, err error) {
	for o := 0; o+4 <= len(b); o++ {
		for _, sync := range syncIDBytes {
			if b[o] == sync[0] && b[o+1] == sync[1] && b[o+2] == sync[2] && b[o+3] == sync[3] {
				size := uint64(o)
				h := Header{ID: IdCorrupted, HeaderSize: 0, BodySize: &size}
				return o, Element{Header: h, Body: corruptedBody}, nil
			}
		}
	}
	return 0, Element{}, ErrValidElementNotFound
}

// isCorrupted reports whether el is a synthetic element produced by the
// resync scanner or by driver end-of-file residue handling.
func isCorrupted(el Element) bool {
	return el.Header.ID == IdCorrupted
}

// coalesceCorrupted merges a newly produced Corrupted element into prev,
// the last-emitted element, when both are Corrupted, so the flat emission
// never contains two adjacent Corrupted elements (spec's corrupt-region
// coalescing, §4.7.1).
func coalesceCorrupted(prev, next Element) Element {
	prevSize := uint64(0)
	if prev.Header.BodySize != nil {
		prevSize = *prev.Header.BodySize
	}
	nextSize := uint64(0)
	if next.Header.BodySize != nil {
		nextSize = *next.Header.BodySize
	}
	total := prevSize + nextSize
	headerSize := prev.Header.HeaderSize + next.Header.HeaderSize

	h := Header{
		ID:         IdCorrupted,
		HeaderSize: headerSize,
		BodySize:   &total,
		Position:   prev.Header.Position,
	}
	return Element{Header: h, Body: corruptedBody}
}
