/*
Package familytest checks that a rolling.Family keeps the promises the engine relies on.

A family that gets these wrong is not broken in a way that the engine can detect at run time:
the checksums just come out wrong. These helpers are meant to be called from the tests of
each family implementation.
*/
package familytest

import (
	"bytes"
	"math/rand"
	"testing"

	rolling "github.com/Redundancy/go-rollsum"
	"github.com/stretchr/testify/assert"
)

// Fresh computes the checksum of window from scratch, the same way the engine
// fills its first window: from the initial state, evicting zeros.
func Fresh[C, A any](f rolling.Family[C, A], window []byte) C {
	sum, state := f.EmptyChecksum(), f.InitialState()

	for _, b := range window {
		sum, state = f.ProcessByte(state, 0, b)
	}

	return sum
}

// Equivalence checks that the batch helper gives the same checksum and state as
// calling ProcessByte on each pair and keeping the last result
func Equivalence[C, A any](t testing.TB, f rolling.Family[C, A], state A, oldData, newData []byte) bool {
	t.Helper()

	expectedSum, expectedState := f.EmptyChecksum(), state
	for i := range oldData {
		expectedSum, expectedState = f.ProcessByte(expectedState, oldData[i], newData[i])
	}

	sum, newState, err := rolling.ProcessSlice(f, state, oldData, newData)

	ok := assert.NoError(t, err)
	ok = assert.Equal(t, expectedSum, sum, "checksum after %v bytes", len(oldData)) && ok
	ok = assert.Equal(t, expectedState, newState, "state after %v bytes", len(oldData)) && ok

	return ok
}

// Chunks checks each of the fixed size chunk helpers against the slice helper,
// starting from a state that has already seen a window of random bytes
func Chunks[C, A any](t testing.TB, f rolling.Family[C, A], rnd *rand.Rand) bool {
	t.Helper()

	window := make([]byte, f.Width())
	rnd.Read(window)

	state := f.InitialState()
	for _, b := range window {
		_, state = f.ProcessByte(state, 0, b)
	}

	var o64, n64 [8]byte
	var o128, n128 [16]byte
	var o256, n256 [32]byte
	var o512, n512 [64]byte

	for _, b := range [][]byte{o64[:], n64[:], o128[:], n128[:], o256[:], n256[:], o512[:], n512[:]} {
		rnd.Read(b)
	}

	ok := true

	check := func(name string, sum C, newState A, oldData, newData []byte) {
		expectedSum, expectedState, err := rolling.ProcessSlice(f, state, oldData, newData)
		ok = assert.NoError(t, err) && ok
		ok = assert.Equal(t, expectedSum, sum, name) && ok
		ok = assert.Equal(t, expectedState, newState, name) && ok
	}

	sum, s := rolling.ProcessChunk64(f, state, &o64, &n64)
	check("ProcessChunk64", sum, s, o64[:], n64[:])

	sum, s = rolling.ProcessChunk128(f, state, &o128, &n128)
	check("ProcessChunk128", sum, s, o128[:], n128[:])

	sum, s = rolling.ProcessChunk256(f, state, &o256, &n256)
	check("ProcessChunk256", sum, s, o256[:], n256[:])

	sum, s = rolling.ProcessChunk512(f, state, &o512, &n512)
	check("ProcessChunk512", sum, s, o512[:], n512[:])

	return ok
}

// Windows runs the engine over data, and checks that the checksum at index i is the
// checksum of data[i:i+width] as computed by expected (or Fresh, if expected is nil)
func Windows[C, A any](t testing.TB, f rolling.Family[C, A], data []byte, expected func([]byte) C) bool {
	t.Helper()

	if expected == nil {
		expected = func(window []byte) C {
			return Fresh(f, window)
		}
	}

	width := f.Width()
	sums, err := rolling.Sums(f, bytes.NewReader(data))

	if len(data) < width {
		return assert.ErrorIs(t, err, rolling.ErrInsufficientInput) && assert.Empty(t, sums)
	}

	if !assert.NoError(t, err) || !assert.Len(t, sums, len(data)-width+1) {
		return false
	}

	for i, sum := range sums {
		if !assert.Equal(t, expected(data[i:i+width]), sum, "window at offset %v", i) {
			return false
		}
	}

	return true
}

// Conformance runs all of the above with random data
func Conformance[C, A any](t *testing.T, f rolling.Family[C, A]) {
	rnd := rand.New(rand.NewSource(int64(f.Width())))

	t.Run("equivalence", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 7, 64, 1000} {
			state := f.InitialState()
			warmup := make([]byte, f.Width())
			rnd.Read(warmup)
			for _, b := range warmup {
				_, state = f.ProcessByte(state, 0, b)
			}

			oldData, newData := make([]byte, n), make([]byte, n)
			rnd.Read(oldData)
			rnd.Read(newData)
			Equivalence(t, f, state, oldData, newData)
		}
	})

	t.Run("chunks", func(t *testing.T) {
		Chunks(t, f, rnd)
	})

	t.Run("windows", func(t *testing.T) {
		for _, n := range []int{f.Width() - 1, f.Width(), f.Width() + 1, 3*f.Width() + 17} {
			data := make([]byte, n)
			rnd.Read(data)
			Windows(t, f, data, nil)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, state, err := rolling.ProcessSlice(f, f.InitialState(), []byte{1, 2}, []byte{1})
		assert.ErrorIs(t, err, rolling.ErrLengthMismatch)
		assert.Equal(t, f.InitialState(), state)
	})
}
