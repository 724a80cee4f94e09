/*
Package rolling computes rolling checksums: a checksum of every fixed size window of a byte stream,
each one derived from the last in constant time as the window slides forward by a byte.

It is inspired by the weak checksum in rsync, and the way go-sync used it to scan for matching blocks,
but it knows nothing about any particular algorithm. An algorithm is a Family (see family.go), and the
engine here (Rolling) is only responsible for the window storage and for handing out the checksums in
stream order, one per window position.

A stream of N bytes with a window of W bytes produces exactly N - W + 1 checksums, and the checksum at
index i is the checksum of bytes [i, i+W). A stream shorter than the window produces none.

The engine pulls from an io.ByteReader and never reads ahead by more than one byte. It is not safe for
concurrent use, and there is nothing to close: stop calling Next and drop it.
*/
package rolling

import (
	"bufio"
	"io"
	"iter"

	"github.com/Redundancy/go-rollsum/circularbuffer"
	"github.com/pkg/errors"
)

// ErrInsufficientInput is returned when the stream ends before the first window is full.
// This is an expected condition for short inputs, not a failure of the source.
var ErrInsufficientInput = errors.New("stream is shorter than the window")

/*
Rolling slides a Family over a byte stream.

It always holds the checksum of the window one byte ahead of the one last handed out by Next,
so that the first checksum returned is the one of the initial window, and the last one is only
handed out once the source reports that it has nothing more.
*/
type Rolling[C, A any] struct {
	family Family[C, A]
	window *circularbuffer.Window
	state  A

	next    C
	hasNext bool

	bytes io.ByteReader
	err   error

	// index of the window whose checksum was last returned
	offset int64
}

/*
Start reads the first window from src, and returns an engine positioned before it.

If src runs out before Width bytes, the result is nil and ErrInsufficientInput: a stream
shorter than the window has no checksums at all. Errors other than io.EOF from src are
returned wrapped, also with a nil engine.
*/
func Start[C, A any](family Family[C, A], src io.ByteReader) (*Rolling[C, A], error) {
	width := family.Width()

	if width <= 0 {
		return nil, errors.Wrapf(ErrInvalidWidth, "width %v", width)
	}

	window := circularbuffer.NewWindow(width)
	sum, state := family.EmptyChecksum(), family.InitialState()

	for !window.Full() {
		b, err := src.ReadByte()

		if err == io.EOF {
			return nil, errors.Wrapf(
				ErrInsufficientInput,
				"read %v of %v bytes",
				window.Len(),
				width,
			)
		} else if err != nil {
			return nil, errors.Wrapf(err, "reading byte %v of the first window", window.Len())
		}

		sum, state = family.ProcessByte(state, window.Swap(b), b)
	}

	return &Rolling[C, A]{
		family:  family,
		window:  window,
		state:   state,
		next:    sum,
		hasNext: true,
		bytes:   src,
		offset:  -1,
	}, nil
}

// FromReader returns r itself if it can already be read a byte at a time,
// otherwise a buffered reader over it
func FromReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// Width of the window, from the family
func (r *Rolling[C, A]) Width() int {
	return r.window.Cap()
}

// feed evicts the oldest byte of the window, admits b and returns the checksum of the new window
func (r *Rolling[C, A]) feed(b byte) C {
	sum, state := r.family.ProcessByte(r.state, r.window.Oldest(), b)
	r.state = state
	r.window.Swap(b)
	return sum
}

/*
Next returns the checksum of the next window position, or false once the stream is exhausted.

Each call reads at most one byte from the source. Once Next has returned false it will always
return false. Check Err afterwards to tell the end of the stream from a failing source.
*/
func (r *Rolling[C, A]) Next() (sum C, ok bool) {
	if !r.hasNext {
		return sum, false
	}

	sum = r.next
	r.offset++

	b, err := r.bytes.ReadByte()

	switch {
	case err == nil:
		r.next = r.feed(b)
	case err == io.EOF:
		r.hasNext = false
	default:
		r.err = errors.Wrapf(err, "reading byte at offset %v", r.offset+int64(r.Width()))
		r.hasNext = false
	}

	if !r.hasNext {
		var empty C
		r.next = empty
	}

	return sum, true
}

// Err returns the first error other than io.EOF encountered while reading the source
func (r *Rolling[C, A]) Err() error {
	return r.err
}

// Offset is the stream offset of the start of the window whose checksum was last returned by Next.
// It is -1 before the first call.
func (r *Rolling[C, A]) Offset() int64 {
	return r.offset
}

// All returns the remaining checksums, keyed by the offset of their window.
// Breaking out of the loop leaves the remaining stream unread.
func (r *Rolling[C, A]) All() iter.Seq2[int64, C] {
	return func(yield func(int64, C) bool) {
		for {
			sum, ok := r.Next()

			if !ok || !yield(r.offset, sum) {
				return
			}
		}
	}
}

// Sums collects the checksum of every window of src.
// A stream shorter than the window returns ErrInsufficientInput.
func Sums[C, A any](family Family[C, A], src io.ByteReader) ([]C, error) {
	r, err := Start(family, src)

	if err != nil {
		return nil, err
	}

	var result []C

	for _, sum := range r.All() {
		result = append(result, sum)
	}

	return result, r.Err()
}
