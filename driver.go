package matroska

import (
	"fmt"
	"io"

	"github.com/go-ebml/mkvdump/internal/xlog"
)

// defaultBufferSize is the chunked driver's default fixed buffer size, per
// spec's resource policy.
const defaultBufferSize = 8 * 1024

// Options configures a Driver.
type Options struct {
	// BufferSize is the fixed-size read buffer. Zero selects
	// defaultBufferSize.
	BufferSize int
	// Logger receives diagnostic messages (corrupt mode transitions,
	// oversized binary bodies skipped). A nil Logger gets xlog.Default().
	Logger *xlog.Helper
}

func (o Options) withDefaults() Options {
	if o.BufferSize <= 0 {
		o.BufferSize = defaultBufferSize
	}
	if o.Logger == nil {
		o.Logger = xlog.Default()
	}
	return o
}

// Driver is the chunked streaming driver (spec component H): it amortises
// I/O over a fixed buffer, parses elements from the buffered view, and
// falls back to the resync scanner on any structural error. It owns a
// single fixed-size byte buffer and issues at most one outstanding read at
// a time, matching spec's concurrency model (single-threaded, synchronous,
// pull-based).
type Driver struct {
	src    io.Reader
	seeker io.Seeker // non-nil if src also implements io.Seeker

	buf    []byte
	filled int

	pos      uint64
	corrupt  bool
	eof      bool
	pending  []Element
	lastEmit *Element
	log      *xlog.Helper
}

// NewDriver creates a Driver reading from src. If src implements io.Seeker,
// the driver uses relative seeks to skip oversized binary bodies instead of
// reading and discarding them.
func NewDriver(src io.Reader, opts Options) *Driver {
	opts = opts.withDefaults()
	d := &Driver{
		src: src,
		buf: make([]byte, opts.BufferSize),
		log: opts.Logger,
	}
	if s, ok := src.(io.Seeker); ok {
		d.seeker = s
	}
	return d
}

// Next returns the next Element in stream order, stamped with its absolute
// position. It returns io.EOF once the input is exhausted and every
// buffered byte has been accounted for, and ErrOutOfBufferSpace if the
// configured buffer is too small to ever complete one element. A trailing
// Corrupted element is held back until the element after it has been
// decoded or the input is exhausted, so that a damaged range that continues
// past a refill is merged into it instead of following it as a second
// Corrupted element.
func (d *Driver) Next() (Element, error) {
	for len(d.pending) == 0 || (len(d.pending) == 1 && isCorrupted(d.pending[0])) {
		if d.eof && d.filled == 0 {
			if len(d.pending) == 0 {
				return Element{}, io.EOF
			}
			break
		}
		if err := d.fillAndParse(); err != nil {
			return Element{}, err
		}
	}
	el := d.pending[0]
	d.pending = d.pending[1:]
	return el, nil
}

func (d *Driver) fillAndParse() error {
	if !d.eof {
		n, err := d.src.Read(d.buf[d.filled:])
		d.filled += n
		if n == 0 {
			if err == nil || err == io.EOF {
				d.eof = true
			} else {
				return fmt.Errorf("ebml: reading input: %w", err)
			}
		} else if err != nil && err != io.EOF {
			return fmt.Errorf("ebml: reading input: %w", err)
		}
	}

	view := d.buf[:d.filled]
	progressed := 0

	for len(view) > 0 {
		consumed, el, skipDeficit, err := d.step(view)
		if err == ErrNeedData || err == ErrValidElementNotFound {
			break
		}
		if err != nil {
			return err
		}

		view = view[consumed:]
		progressed += consumed

		if skipDeficit > 0 {
			if err := d.discard(skipDeficit); err != nil {
				return err
			}
		}

		d.emit(el)
	}

	if progressed == 0 && d.filled == len(d.buf) && !d.eof {
		if !d.corrupt || len(view) < 4 {
			return ErrOutOfBufferSpace
		}
		// The resync scan found no SYNC id in a full buffer: account for
		// everything but the last three bytes (which may begin an id that
		// the refill completes) as corrupted, and keep scanning.
		skipped := uint64(len(view) - 3)
		d.emit(Element{Header: Header{ID: IdCorrupted, BodySize: &skipped}, Body: corruptedBody})
		view = view[len(view)-3:]
	}

	copy(d.buf, view)
	d.filled = len(view)

	if d.eof && d.filled > 0 {
		size := uint64(d.filled)
		h := Header{ID: IdCorrupted, HeaderSize: 0, BodySize: &size}
		d.emit(Element{Header: h, Body: corruptedBody})
		d.filled = 0
	}

	return nil
}

// step decodes exactly one element (or corrupted range) from the front of
// view. It returns the number of view bytes consumed, the element, and the
// number of additional bytes (beyond view) that must be discarded from the
// underlying source because a binary body did not fit the buffer.
func (d *Driver) step(view []byte) (consumed int, el Element, skipDeficit int, err error) {
	if !d.corrupt {
		if consumed, el, err = parseElement(view); err == nil {
			return consumed, el, 0, nil
		}
		if !recoverable(err) {
			hConsumed, h, skip, ok, oerr := d.tryOversizedBinary(view)
			if oerr != nil {
				return 0, Element{}, 0, oerr
			}
			if ok {
				return hConsumed, Element{Header: h.header, Body: h.body}, skip, nil
			}
			return 0, Element{}, 0, err
		}

		d.log.Debugf("entering corrupt mode: %v", err)
		d.corrupt = true
	}

	skip, corruptEl, rerr := findValidElement(view)
	if rerr != nil {
		return 0, Element{}, 0, rerr
	}
	// A scan that lands strictly before the end of the view found real
	// anchor bytes to resume parsing from; clear corrupt mode so the next
	// step attempts a normal parse again. A scan that only succeeds by
	// using the view's very last bytes may be about to repeat itself once
	// more data arrives, so it stays in corrupt mode — except when skip is
	// already zero, since then leaving corrupt mode set would rediscover
	// the same zero-byte match forever without ever advancing.
	if skip == 0 || skip+4 < len(view) {
		d.corrupt = false
	}
	return skip, corruptEl, 0, nil
}

type oversizedResult struct {
	header Header
	body   Body
}

// tryOversizedBinary handles a binary body whose declared size can never
// fit the configured buffer: it decodes the header alone and reports a
// best-effort body plus the byte count still owed to the source, rather
// than blocking forever on ErrNeedData. Void gets a Void body, Block and
// SimpleBlock get their sub-header decoded from the buffered prefix of the
// body, and every other id gets an "N bytes" Standard summary. SeekId
// bodies, and a Block/SimpleBlock whose sub-header does not decode from the
// buffered prefix, are left to the normal parse.
func (d *Driver) tryOversizedBinary(view []byte) (consumed int, result oversizedResult, skipDeficit int, handled bool, err error) {
	hConsumed, h, err := parseHeader(view)
	if err != nil || h.BodySize == nil || h.ID.Kind() != KindBinary || h.ID == SeekId {
		return 0, oversizedResult{}, 0, false, nil
	}

	bodySize, err := toInt(*h.BodySize)
	if err != nil {
		return 0, oversizedResult{}, 0, false, err
	}
	if hConsumed+bodySize <= len(d.buf) {
		return 0, oversizedResult{}, 0, false, nil // fits once refilled; wait for more data
	}

	var body Body
	switch h.ID {
	case Void, SimpleBlock, Block:
		if body, err = parseBinaryBody(h.ID, view[hConsumed:]); err != nil {
			return 0, oversizedResult{}, 0, false, nil
		}
	default:
		body = Body{Kind: KindBinary, BinaryVariant: BinaryStandard, BinarySummary: fmt.Sprintf("%d bytes", bodySize)}
	}

	available := len(view) - hConsumed
	deficit := bodySize - available
	d.log.Debugf("skipping oversized binary body: id=%s size=%d", h.ID.Name(), bodySize)
	return hConsumed + available, oversizedResult{header: h, body: body}, deficit, true, nil
}

// discard disposes of n bytes immediately following the current buffer
// (already-consumed view), via a relative seek when the source supports
// one, else by reading and throwing the bytes away.
func (d *Driver) discard(n int) error {
	if d.seeker != nil {
		_, err := d.seeker.Seek(int64(n), io.SeekCurrent)
		return err
	}
	_, err := io.CopyN(io.Discard, d.src, int64(n))
	return err
}

// emit stamps el's position, advances the driver's running position, and
// either appends it to the pending queue or coalesces it into the previous
// Corrupted emission.
func (d *Driver) emit(el Element) {
	pos := d.pos
	el.Header.Position = &pos

	if isCorrupted(el) {
		if d.lastEmit != nil && isCorrupted(*d.lastEmit) {
			merged := coalesceCorrupted(*d.lastEmit, el)
			d.pending[len(d.pending)-1] = merged
			d.lastEmit = &merged
			d.advance(el, false) // only the merged-in piece's bytes are new
			return
		}
		if el.Header.BodySize != nil {
			d.log.Warnf("corrupted region: %d bytes at position %d", *el.Header.BodySize, pos)
		}
	}

	d.pending = append(d.pending, el)
	d.lastEmit = &el
	d.advance(el, false)
}

// advance moves the driver's running position forward by an element's
// total size, or by its header size alone for a Master (whose body is
// accounted for entirely by its children's own advances). merged set to
// true leaves the position unchanged, for an element whose bytes have
// already been counted.
func (d *Driver) advance(el Element, merged bool) {
	if merged {
		return
	}
	if el.Header.ID.Kind() == KindMaster {
		d.pos += uint64(el.Header.HeaderSize)
		return
	}
	total, ok := el.Header.TotalSize()
	if !ok {
		// Unknown-size Master never reaches here (Kind==KindMaster is
		// handled above); a non-master Header always has a known size
		// by construction (parseHeader rejects unknown size elsewhere).
		total = uint64(el.Header.HeaderSize)
	}
	d.pos += total
}
