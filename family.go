package rolling

import (
	"github.com/pkg/errors"
)

var (
	// ErrLengthMismatch is returned by ProcessSlice when the evicted and admitted
	// sequences are of different lengths. No update is applied in that case.
	ErrLengthMismatch = errors.New("old and new data have different lengths")

	// ErrInvalidWidth is a family contract violation: the window width must be positive
	ErrInvalidWidth = errors.New("window width must be positive")
)

/*
Family describes a rolling checksum algorithm.

C is the checksum of a window, A is whatever the algorithm needs to carry from one
step to the next (for an rsync style sum, the two running sums). They may be different
types, and neither is inspected by the engine.

ProcessByte is the only real work: given the previous accumulator, the byte leaving the
window and the byte entering it, compute the new checksum and accumulator. It must not
depend on anything but its arguments, and must cost the same whatever the width - this
is what makes the checksum rolling.
*/
type Family[C, A any] interface {
	// Window size in bytes. Positive, and constant for the lifetime of the family.
	Width() int

	// A "no data yet" checksum, only returned by the batch helpers when given nothing to do.
	// It is never the checksum of a real window.
	EmptyChecksum() C

	// The accumulator of an empty window.
	// Start-up admits the first Width bytes while evicting zeros, so a family whose checksum
	// of zero bytes is not the zero value should return the state of a window of zeros.
	InitialState() A

	ProcessByte(state A, oldByte, newByte byte) (C, A)
}

// SliceProcessor can be implemented by a Family that can advance over a block of bytes
// faster than one byte at a time. The result must be identical to calling ProcessByte for
// each pair and keeping the last checksum. Lengths are validated before it is called.
type SliceProcessor[C, A any] interface {
	ProcessSlice(state A, oldData, newData []byte) (C, A)
}

type Chunk64Processor[C, A any] interface {
	ProcessChunk64(state A, oldData, newData *[8]byte) (C, A)
}

type Chunk128Processor[C, A any] interface {
	ProcessChunk128(state A, oldData, newData *[16]byte) (C, A)
}

type Chunk256Processor[C, A any] interface {
	ProcessChunk256(state A, oldData, newData *[32]byte) (C, A)
}

type Chunk512Processor[C, A any] interface {
	ProcessChunk512(state A, oldData, newData *[64]byte) (C, A)
}

// ProcessSlice advances the accumulator over pairs of (evicted, admitted) bytes and returns
// the checksum after the last pair. Intermediate checksums are discarded.
//
// Given empty slices it returns the family's EmptyChecksum and the state unchanged.
// Slices of different lengths are rejected with ErrLengthMismatch rather than truncated.
func ProcessSlice[C, A any](f Family[C, A], state A, oldData, newData []byte) (C, A, error) {
	if len(oldData) != len(newData) {
		return f.EmptyChecksum(), state, errors.Wrapf(
			ErrLengthMismatch,
			"%v evicted bytes, %v admitted bytes",
			len(oldData),
			len(newData),
		)
	}

	if p, ok := f.(SliceProcessor[C, A]); ok {
		sum, state := p.ProcessSlice(state, oldData, newData)
		return sum, state, nil
	}

	sum, state := processSequentially(f, state, oldData, newData)
	return sum, state, nil
}

func processSequentially[C, A any](f Family[C, A], state A, oldData, newData []byte) (C, A) {
	sum := f.EmptyChecksum()

	for i, oldByte := range oldData {
		sum, state = f.ProcessByte(state, oldByte, newData[i])
	}

	return sum, state
}

// the array lengths already match, so the slice path cannot fail
func processChunk[C, A any](f Family[C, A], state A, oldData, newData []byte) (C, A) {
	if p, ok := f.(SliceProcessor[C, A]); ok {
		return p.ProcessSlice(state, oldData, newData)
	}
	return processSequentially(f, state, oldData, newData)
}

// ProcessChunk64 advances over 8 bytes (64 bits)
func ProcessChunk64[C, A any](f Family[C, A], state A, oldData, newData *[8]byte) (C, A) {
	if p, ok := f.(Chunk64Processor[C, A]); ok {
		return p.ProcessChunk64(state, oldData, newData)
	}
	return processChunk(f, state, oldData[:], newData[:])
}

// ProcessChunk128 advances over 16 bytes
func ProcessChunk128[C, A any](f Family[C, A], state A, oldData, newData *[16]byte) (C, A) {
	if p, ok := f.(Chunk128Processor[C, A]); ok {
		return p.ProcessChunk128(state, oldData, newData)
	}
	return processChunk(f, state, oldData[:], newData[:])
}

// ProcessChunk256 advances over 32 bytes
func ProcessChunk256[C, A any](f Family[C, A], state A, oldData, newData *[32]byte) (C, A) {
	if p, ok := f.(Chunk256Processor[C, A]); ok {
		return p.ProcessChunk256(state, oldData, newData)
	}
	return processChunk(f, state, oldData[:], newData[:])
}

// ProcessChunk512 advances over 64 bytes
func ProcessChunk512[C, A any](f Family[C, A], state A, oldData, newData *[64]byte) (C, A) {
	if p, ok := f.(Chunk512Processor[C, A]); ok {
		return p.ProcessChunk512(state, oldData, newData)
	}
	return processChunk(f, state, oldData[:], newData[:])
}
