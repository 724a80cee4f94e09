/*
Package circularbuffer provides the fixed size byte window that a rolling checksum slides over.

A rolling checksum needs to know exactly one thing from its window storage on every step: which byte
is leaving as the new one arrives. The Window keeps its storage at a fixed capacity and overwrites the
oldest byte in place, moving a begin offset forward by one (modulo the size) for every byte written, so
sliding never allocates.

Getting the window contents in stream order is the only operation that may allocate, and only when the
begin offset is not at the start of the storage.
*/
package circularbuffer

// Window is a circular buffer of bytes with a fixed capacity.
// Once filled to capacity, each new byte overwrites (evicts) the oldest one.
// It cannot be used concurrently.
type Window struct {
	buffer []byte
	begin  int
}

func NewWindow(size int) *Window {
	return &Window{
		buffer: make([]byte, 0, size),
	}
}

// Cap is the number of bytes the window holds once full
func (w *Window) Cap() int {
	return cap(w.buffer)
}

func (w *Window) Len() int {
	return len(w.buffer)
}

// True once the window has been filled to capacity and further
// writes of even a single byte will evict the oldest byte
func (w *Window) Full() bool {
	return len(w.buffer) == cap(w.buffer)
}

// Begin is the storage index of the oldest byte in the window.
// It is always in [0, Cap()), or 0 for a window that is not yet full.
func (w *Window) Begin() int {
	return w.begin
}

// Fill appends a byte to a window that is not yet full.
// It returns false, and leaves the window unchanged, once the window is full.
func (w *Window) Fill(b byte) bool {
	if w.Full() {
		return false
	}

	w.buffer = append(w.buffer, b)
	return true
}

// Swap writes b over the oldest byte and returns the byte it replaced.
// On a window that is not yet full nothing is evicted: b is appended and the
// evicted value is reported as 0, as if the window started out full of zeros.
func (w *Window) Swap(b byte) (evicted byte) {
	if w.Fill(b) {
		return 0
	}

	evicted = w.buffer[w.begin]
	w.buffer[w.begin] = b
	w.begin++

	if w.begin == len(w.buffer) {
		w.begin = 0
	}

	return evicted
}

// Oldest is the byte that the next Swap will evict
func (w *Window) Oldest() byte {
	if !w.Full() || len(w.buffer) == 0 {
		return 0
	}
	return w.buffer[w.begin]
}

// Bytes gets the contents of the window, from oldest to newest.
// This will return the storage itself if possible, otherwise
// it will have to allocate and copy data into a new block of memory.
// The returned slice must not be modified.
func (w *Window) Bytes() []byte {
	if w.begin == 0 {
		return w.buffer
	}

	l := len(w.buffer)
	c := make([]byte, l)
	n := copy(c, w.buffer[w.begin:])
	copy(c[n:], w.buffer[:w.begin])

	return c
}

// Reset empties the window, keeping its storage
func (w *Window) Reset() {
	w.buffer = w.buffer[:0]
	w.begin = 0
}
