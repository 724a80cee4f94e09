package rollsum

import (
	rolling "github.com/Redundancy/go-rollsum"
	"github.com/Redundancy/go-rollsum/circularbuffer"
	"github.com/chmduquesne/rollinghash"
)

/*
Hash32 wraps a family with a 32 bit checksum as a rollinghash.Hash32 (a hash.Hash32 that can Roll).

Unlike the rolling engine, which only ever hands out checksums of full windows, Hash32 can be
asked for its sum at any time. Until Width bytes have been written, the sum is that of the bytes
so far preceded by zeros, since that is how the window fills. A new or reset Hash32 has the sum
of a window of zeros.

Writing more than Width bytes at once just keeps the last Width of them.
It cannot be used concurrently.
*/
type Hash32[A any] struct {
	family rolling.Family[uint32, A]
	window *circularbuffer.Window
	state  A
	sum    uint32
}

var _ rollinghash.Hash32 = (*Hash32[RsyncState])(nil)

// NewHash32 fails with rolling.ErrInvalidWidth if the family's width is not positive
func NewHash32[A any](family rolling.Family[uint32, A]) (*Hash32[A], error) {
	if err := checkWidth(family.Width()); err != nil {
		return nil, err
	}

	h := &Hash32[A]{
		family: family,
		window: circularbuffer.NewWindow(family.Width()),
	}
	h.Reset()
	return h, nil
}

// Write is io.Writer, and never fails
func (h *Hash32[A]) Write(p []byte) (n int, err error) {
	n = len(p)

	if w := h.window.Cap(); len(p) >= w {
		// if it's really long, we can just ignore a load of it
		h.Reset()
		p = p[len(p)-w:]
	}

	for _, b := range p {
		h.Roll(b)
	}

	return n, nil
}

// Roll moves the window forward by one byte
func (h *Hash32[A]) Roll(b byte) {
	h.sum, h.state = h.family.ProcessByte(h.state, h.window.Swap(b), b)
}

func (h *Hash32[A]) Sum32() uint32 {
	return h.sum
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state.
func (h *Hash32[A]) Sum(b []byte) []byte {
	v := h.sum
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (h *Hash32[A]) Reset() {
	h.window.Reset()
	h.state = h.family.InitialState()
	// sliding a zero out and a zero in leaves a window of zeros as it was
	h.sum, _ = h.family.ProcessByte(h.state, 0, 0)
}

// the number of bytes
func (h *Hash32[A]) Size() int {
	return 4
}

// The most efficient byte length to call Write with
func (h *Hash32[A]) BlockSize() int {
	return h.window.Cap()
}

// GetLastBlock returns the bytes in the window, oldest first
func (h *Hash32[A]) GetLastBlock() []byte {
	return h.window.Bytes()
}
