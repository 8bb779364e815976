package matroska

// Header is the decoded id and size of one EBML element. BodySize is nil
// exactly when the element declared "unknown size" on the wire; Position
// is nil until the chunked driver stamps it on emission.
type Header struct {
	ID         Id
	HeaderSize int
	BodySize   *uint64
	Position   *uint64
}

// TotalSize returns HeaderSize plus BodySize, and whether both are known.
func (h Header) TotalSize() (uint64, bool) {
	if h.BodySize == nil {
		return 0, false
	}
	return uint64(h.HeaderSize) + *h.BodySize, true
}

// parseHeader decodes one element header (id + body size) from the front
// of b. It fails with ErrForbiddenUnknownSize for any id other than
// Segment or Cluster that declares the unknown-size sentinel.
func parseHeader(b []byte) (consumed int, h Header, err error) {
	idLen, id, err := decodeID(b)
	if err != nil {
		return 0, Header{}, err
	}

	sizeLen, size, unknown, err := decodeVarint(b[idLen:])
	if err != nil {
		return 0, Header{}, err
	}

	headerSize := idLen + sizeLen
	if unknown {
		if id != Segment && id != Cluster {
			return 0, Header{}, ErrForbiddenUnknownSize
		}
		return headerSize, Header{ID: id, HeaderSize: headerSize, BodySize: nil}, nil
	}

	return headerSize, Header{ID: id, HeaderSize: headerSize, BodySize: &size}, nil
}
