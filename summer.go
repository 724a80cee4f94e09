package rolling

import (
	"io"
)

// Summer runs a Family chosen at run time.
// The checksum type is erased to a uint64, so this costs an indirect call per window;
// prefer Start / Sums when the family is known when compiling.
type Summer interface {
	Name() string
	Width() int

	// Run calls fn with the offset and checksum of every window of src, in stream order,
	// until fn returns false or src is exhausted. It returns the number of checksums passed to fn.
	Run(src io.ByteReader, fn func(offset int64, sum uint64) bool) (int64, error)
}

type summer[C, A any] struct {
	name   string
	family Family[C, A]
	widen  func(C) uint64
}

// NewSummer wraps a Family, using widen to convert its checksums
func NewSummer[C, A any](name string, f Family[C, A], widen func(C) uint64) Summer {
	return &summer[C, A]{
		name:   name,
		family: f,
		widen:  widen,
	}
}

func (s *summer[C, A]) Name() string {
	return s.name
}

func (s *summer[C, A]) Width() int {
	return s.family.Width()
}

func (s *summer[C, A]) Run(src io.ByteReader, fn func(offset int64, sum uint64) bool) (count int64, err error) {
	r, err := Start(s.family, src)

	if err != nil {
		return 0, err
	}

	for offset, sum := range r.All() {
		count++

		if !fn(offset, s.widen(sum)) {
			break
		}
	}

	return count, r.Err()
}
