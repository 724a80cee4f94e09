package rollsum

import (
	"math/bits"
	"math/rand"
)

// DefaultTable32 and DefaultTable64 are generated from a fixed seed, so checksums
// are stable across runs and machines. Every entry is distinct.
var (
	DefaultTable32 [256]uint32
	DefaultTable64 [256]uint64
)

const buzhashSeed = 1

func init() {
	rnd := rand.New(rand.NewSource(buzhashSeed))

	seen32 := make(map[uint32]bool)
	for i := range DefaultTable32 {
		for {
			v := rnd.Uint32()
			if !seen32[v] {
				seen32[v] = true
				DefaultTable32[i] = v
				break
			}
		}
	}

	seen64 := make(map[uint64]bool)
	for i := range DefaultTable64 {
		for {
			v := rnd.Uint64()
			if !seen64[v] {
				seen64[v] = true
				DefaultTable64[i] = v
				break
			}
		}
	}
}

// Buzhash32 is a cyclic polynomial rolling hash: each byte maps to a random
// 32 bit value, rotated by its distance from the end of the window, and XORed together.
// Removing a byte is a rotation by the width, independent of the rest of the window.
type Buzhash32 struct {
	width   int
	rotate  int
	table   *[256]uint32
	initial uint32
}

func NewBuzhash32(width int) (Buzhash32, error) {
	return NewBuzhash32FromTable(width, DefaultTable32)
}

func NewBuzhash32FromTable(width int, table [256]uint32) (Buzhash32, error) {
	if err := checkWidth(width); err != nil {
		return Buzhash32{}, err
	}

	f := Buzhash32{
		width:  width,
		rotate: width % 32,
		table:  &table,
	}

	// the hash of a window full of zeros
	for i := 0; i < width; i++ {
		f.initial = bits.RotateLeft32(f.initial, 1) ^ table[0]
	}

	return f, nil
}

func (f Buzhash32) Width() int {
	return f.width
}

func (Buzhash32) EmptyChecksum() uint32 {
	return 0
}

func (f Buzhash32) InitialState() uint32 {
	return f.initial
}

func (f Buzhash32) ProcessByte(state uint32, oldByte, newByte byte) (uint32, uint32) {
	state = bits.RotateLeft32(state, 1) ^
		bits.RotateLeft32(f.table[oldByte], f.rotate) ^
		f.table[newByte]

	return state, state
}

// Buzhash64 is Buzhash32 with a table of 64 bit values
type Buzhash64 struct {
	width   int
	rotate  int
	table   *[256]uint64
	initial uint64
}

func NewBuzhash64(width int) (Buzhash64, error) {
	return NewBuzhash64FromTable(width, DefaultTable64)
}

func NewBuzhash64FromTable(width int, table [256]uint64) (Buzhash64, error) {
	if err := checkWidth(width); err != nil {
		return Buzhash64{}, err
	}

	f := Buzhash64{
		width:  width,
		rotate: width % 64,
		table:  &table,
	}

	for i := 0; i < width; i++ {
		f.initial = bits.RotateLeft64(f.initial, 1) ^ table[0]
	}

	return f, nil
}

func (f Buzhash64) Width() int {
	return f.width
}

func (Buzhash64) EmptyChecksum() uint64 {
	return 0
}

func (f Buzhash64) InitialState() uint64 {
	return f.initial
}

func (f Buzhash64) ProcessByte(state uint64, oldByte, newByte byte) (uint64, uint64) {
	state = bits.RotateLeft64(state, 1) ^
		bits.RotateLeft64(f.table[oldByte], f.rotate) ^
		f.table[newByte]

	return state, state
}
