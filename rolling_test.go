package rolling

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Redundancy/go-rollsum/util/readers"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioA(t *testing.T) {
	sums, err := Sums[uint8, uint8](additive{width: 4}, bytes.NewReader([]byte{1, 2, 3, 4, 5, 6}))
	require.NoError(t, err)
	assert.Equal(t, []uint8{10, 14, 18}, sums)
}

func TestScenarioB(t *testing.T) {
	r, err := Start[uint8, uint8](additive{width: 4}, bytes.NewReader([]byte{1, 2, 3}))

	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrInsufficientInput)
}

func TestScenarioC(t *testing.T) {
	sums, err := Sums[uint8, uint8](additive{width: 1}, bytes.NewReader([]byte{7, 8, 9}))
	require.NoError(t, err)
	assert.Equal(t, []uint8{7, 8, 9}, sums)
}

func TestStartRejectsInvalidWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		_, err := Start[uint8, uint8](additive{width: width}, bytes.NewReader([]byte{1}))
		assert.ErrorIs(t, err, ErrInvalidWidth)
	}
}

func TestWindowCount(t *testing.T) {
	for _, width := range []int{1, 2, 3, 16} {
		for n := 0; n < 40; n++ {
			data := make([]byte, n)
			readers.NewNonRepeatingSequence(n).Read(data)

			sums, err := Sums[uint8, uint8](additive{width: width}, bytes.NewReader(data))

			if n < width {
				assert.ErrorIs(t, err, ErrInsufficientInput, "n=%v width=%v", n, width)
				assert.Empty(t, sums)
				continue
			}

			require.NoError(t, err)
			assert.Len(t, sums, n-width+1, "n=%v width=%v", n, width)
		}
	}
}

func TestEveryWindowIsVisitedOnce(t *testing.T) {
	const width = 5
	data := make([]byte, 200)
	readers.NewNonRepeatingSequence(7).Read(data)

	r, err := Start[uint8, uint8](additive{width: width}, bytes.NewReader(data))
	require.NoError(t, err)

	expectedOffset := int64(0)
	for offset, sum := range r.All() {
		require.Equal(t, expectedOffset, offset)

		var fresh uint8
		for _, b := range data[offset : offset+width] {
			fresh += b
		}
		require.Equal(t, fresh, sum, "window at offset %v", offset)

		expectedOffset++
	}

	assert.EqualValues(t, len(data)-width+1, expectedOffset)
	assert.NoError(t, r.Err())
}

func TestOffset(t *testing.T) {
	r, err := Start[uint8, uint8](additive{width: 2}, bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)

	assert.EqualValues(t, -1, r.Offset())

	_, ok := r.Next()
	assert.True(t, ok)
	assert.EqualValues(t, 0, r.Offset())

	_, ok = r.Next()
	assert.True(t, ok)
	assert.EqualValues(t, 1, r.Offset())

	_, ok = r.Next()
	assert.False(t, ok)
	assert.EqualValues(t, 1, r.Offset())
}

func TestNextAfterExhaustion(t *testing.T) {
	r, err := Start[uint8, uint8](additive{width: 3}, bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)

	sum, ok := r.Next()
	assert.True(t, ok)
	assert.EqualValues(t, 6, sum)

	for i := 0; i < 3; i++ {
		_, ok = r.Next()
		assert.False(t, ok)
	}

	assert.NoError(t, r.Err())
}

func TestLookaheadIsOneByte(t *testing.T) {
	const width = 8
	src := &readers.Counting{R: readers.NewSizedNonRepeatingSequence(0, 100)}

	r, err := Start[uint8, uint8](additive{width: width}, src)
	require.NoError(t, err)
	assert.Equal(t, width, src.Bytes, "start should only read the first window")

	for i := 1; i <= 10; i++ {
		_, ok := r.Next()
		require.True(t, ok)
		assert.Equal(t, width+i, src.Bytes)
		assert.Equal(t, width+i, src.Calls)
	}
}

func TestBreakingOutOfAllLeavesTheRestUnread(t *testing.T) {
	src := &readers.Counting{R: readers.NewSizedNonRepeatingSequence(0, 1000)}

	r, err := Start[uint8, uint8](additive{width: 4}, src)
	require.NoError(t, err)

	seen := 0
	for range r.All() {
		seen++
		if seen == 5 {
			break
		}
	}

	assert.Equal(t, 4+5, src.Bytes)
	assert.EqualValues(t, 4, r.Offset())

	// and the engine carries on from where it stopped
	_, ok := r.Next()
	assert.True(t, ok)
	assert.EqualValues(t, 5, r.Offset())
}

func TestOneByteProcessedPerWindow(t *testing.T) {
	for _, width := range []int{1, 64, 4096} {
		calls := 0

		sums, err := Sums[uint8, uint8](additive{width: width, calls: &calls}, readers.ZeroReader(width+99))
		require.NoError(t, err)
		require.Len(t, sums, 100)

		// width to fill the first window, then one per slide
		assert.Equal(t, width+99, calls, "width %v", width)
	}
}

func TestSourceErrorEndsTheSequence(t *testing.T) {
	broken := errors.New("broken")
	data := []byte{1, 2, 3, 4, 5, 6}

	r, err := Start[uint8, uint8](additive{width: 4}, readers.ErrorAfter(data, broken))
	require.NoError(t, err)

	var sums []uint8
	for _, sum := range r.All() {
		sums = append(sums, sum)
	}

	assert.Equal(t, []uint8{10, 14, 18}, sums)
	assert.ErrorIs(t, r.Err(), broken)

	_, err = Sums[uint8, uint8](additive{width: 4}, readers.ErrorAfter(data, broken))
	assert.ErrorIs(t, err, broken)
}

func TestSourceErrorInFirstWindow(t *testing.T) {
	broken := errors.New("broken")

	r, err := Start[uint8, uint8](additive{width: 4}, readers.ErrorAfter([]byte{1, 2}, broken))

	assert.Nil(t, r)
	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, ErrInsufficientInput)
}

func TestFromReader(t *testing.T) {
	br := bytes.NewReader([]byte{1})
	assert.Same(t, br, FromReader(br))

	// io.LimitReader has no ReadByte
	wrapped := FromReader(io.LimitReader(strings.NewReader("abcdef"), 5))
	sums, err := Sums[uint8, uint8](additive{width: 5}, wrapped)
	require.NoError(t, err)

	var expected uint8
	for _, c := range []byte("abcde") {
		expected += c
	}
	assert.Equal(t, []uint8{expected}, sums)
}

func TestWidth(t *testing.T) {
	r, err := Start[uint8, uint8](additive{width: 3}, bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Width())
}

func benchmarkWidth(b *testing.B, width int) {
	const windows = 64 << 10
	data := make([]byte, windows+width-1)
	readers.NewNonRepeatingSequence(0).Read(data)
	f := additive{width: width}

	b.SetBytes(windows)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r, _ := Start[uint8, uint8](f, bytes.NewReader(data))
		for _, ok := r.Next(); ok; _, ok = r.Next() {
		}
	}
}

// These two should report about the same throughput
func BenchmarkNarrowWindow(b *testing.B) {
	benchmarkWidth(b, 64)
}

func BenchmarkWideWindow(b *testing.B) {
	benchmarkWidth(b, 65536)
}
