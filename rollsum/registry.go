package rollsum

import (
	"sort"
	"sync"

	rolling "github.com/Redundancy/go-rollsum"
	"github.com/pkg/errors"
)

// Type names a family in the registry
type Type string

const (
	TypeAdditive     Type = "additive"
	TypeRsync        Type = "rsync"
	TypeRollsum64    Type = "rollsum64"
	TypeAdler32      Type = "adler32"
	TypeBuzhash32    Type = "buzhash32"
	TypeBuzhash64    Type = "buzhash64"
	TypePolynomial32 Type = "polynomial32"
)

// Factory builds a family of the given width, type erased so it can be chosen at run time
type Factory func(width int) (rolling.Summer, error)

var ErrUnknownFamily = errors.New("unknown checksum family")

var (
	mu        sync.RWMutex
	factories = make(map[Type]Factory)
)

func init() {
	Register(TypeAdditive, func(width int) (rolling.Summer, error) {
		f, err := NewAdditive(width)
		return summer(TypeAdditive, f, err, widen8)
	})
	Register(TypeRsync, func(width int) (rolling.Summer, error) {
		f, err := NewRsync(width)
		return summer(TypeRsync, f, err, widen32)
	})
	Register(TypeRollsum64, func(width int) (rolling.Summer, error) {
		f, err := NewRollsum64(width)
		return summer(TypeRollsum64, f, err, widen64)
	})
	Register(TypeAdler32, func(width int) (rolling.Summer, error) {
		f, err := NewAdler32(width)
		return summer(TypeAdler32, f, err, widen32)
	})
	Register(TypeBuzhash32, func(width int) (rolling.Summer, error) {
		f, err := NewBuzhash32(width)
		return summer(TypeBuzhash32, f, err, widen32)
	})
	Register(TypeBuzhash64, func(width int) (rolling.Summer, error) {
		f, err := NewBuzhash64(width)
		return summer(TypeBuzhash64, f, err, widen64)
	})
	Register(TypePolynomial32, func(width int) (rolling.Summer, error) {
		f, err := NewPolynomial32(width)
		return summer(TypePolynomial32, f, err, widen32)
	})
}

func widen8(c uint8) uint64   { return uint64(c) }
func widen32(c uint32) uint64 { return uint64(c) }
func widen64(c uint64) uint64 { return c }

func summer[C, A any](t Type, f rolling.Family[C, A], err error, widen func(C) uint64) (rolling.Summer, error) {
	if err != nil {
		return nil, errors.Wrapf(err, "creating %v", t)
	}
	return rolling.NewSummer(string(t), f, widen), nil
}

// Register adds or replaces a family factory
func Register(t Type, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[t] = factory
}

func Unregister(t Type) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, t)
}

// New creates a registered family with the given window width
func New(t Type, width int) (rolling.Summer, error) {
	mu.RLock()
	factory, ok := factories[t]
	mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownFamily, "%q", t)
	}

	return factory(width)
}

// Types lists the registered family names, sorted
func Types() []Type {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Type, 0, len(factories))
	for t := range factories {
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})

	return result
}
