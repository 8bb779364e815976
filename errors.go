package matroska

import "errors"

// Error kinds surfaced by the element parser and chunked driver. Every
// failure in the resilient-parsing core is one of these sentinel values,
// tested with errors.Is rather than string matching, so the driver's
// recoverable/fatal classification never depends on error text.
var (
	// ErrNeedData means the input was truncated mid-element; the driver
	// should refill its buffer and retry the same view.
	ErrNeedData = errors.New("ebml: need data")

	// ErrInvalidId means a VINT id width exceeded 4 bytes, or its first
	// byte was 0x00.
	ErrInvalidId = errors.New("ebml: invalid id")

	// ErrInvalidVarint means a VINT size width exceeded 8 bytes, or its
	// first byte was 0x00.
	ErrInvalidVarint = errors.New("ebml: invalid varint")

	// ErrForbiddenUnknownSize means an element other than Segment or
	// Cluster declared the all-ones "unknown size" sentinel.
	ErrForbiddenUnknownSize = errors.New("ebml: forbidden unknown size")

	// ErrForbiddenIntegerSize means an Unsigned or Signed body was larger
	// than 8 bytes.
	ErrForbiddenIntegerSize = errors.New("ebml: forbidden integer size")

	// ErrForbiddenFloatSize means a Float body was a size other than 0,
	// 4, or 8 bytes.
	ErrForbiddenFloatSize = errors.New("ebml: forbidden float size")

	// ErrMissingTrackNumber means a Block/SimpleBlock's track number VINT
	// was itself the unknown-size sentinel.
	ErrMissingTrackNumber = errors.New("ebml: missing track number")

	// ErrForbiddenBlockSize means a Block/SimpleBlock declared a body
	// smaller than its sub-header could ever fit (a 1-byte track number
	// VINT, a 2-byte timestamp, and one flag byte), so no amount of
	// additional buffering could complete it.
	ErrForbiddenBlockSize = errors.New("ebml: forbidden block size")

	// ErrInvalidDate means a Date body was not exactly 8 bytes.
	ErrInvalidDate = errors.New("ebml: invalid date")

	// ErrInvalidUTF8 means a String/Utf8 body was not valid UTF-8.
	ErrInvalidUTF8 = errors.New("ebml: invalid utf-8")

	// ErrOverflow means a decoded value could not be represented by the
	// platform's native integer width.
	ErrOverflow = errors.New("ebml: overflow")

	// ErrValidElementNotFound means the resync scanner exhausted its view
	// without finding a SYNC id.
	ErrValidElementNotFound = errors.New("ebml: valid element not found")

	// ErrOutOfBufferSpace means the configured buffer is too small to
	// ever complete one element; this is fatal and is returned to the
	// caller rather than triggering resync.
	ErrOutOfBufferSpace = errors.New("ebml: out of buffer space")
)

// recoverable reports whether err should send the chunked driver into
// corrupt mode (resync) rather than aborting the whole run. ErrNeedData is
// handled by refilling, never by resync; ErrOutOfBufferSpace is fatal.
func recoverable(err error) bool {
	switch {
	case errors.Is(err, ErrNeedData), errors.Is(err, ErrOutOfBufferSpace):
		return false
	default:
		return true
	}
}
