package rollsum

const fullBytes32 = (1 << 32) - 1

// Rollsum64 is the rsync style rollsum with 64 bit internal values.
// The checksum is the low 32 bits of each sum: a | b << 32.
// Since the sums are only ever taken mod 2^64 and then truncated, its low 16 bits
// of each half agree with Rsync.
type Rollsum64 struct {
	width uint64
}

type Rollsum64State struct {
	A, B uint64
}

func NewRollsum64(width int) (Rollsum64, error) {
	if err := checkWidth(width); err != nil {
		return Rollsum64{}, err
	}
	return Rollsum64{width: uint64(width)}, nil
}

func (f Rollsum64) Width() int {
	return int(f.width)
}

func (Rollsum64) EmptyChecksum() uint64 {
	return 0
}

func (Rollsum64) InitialState() Rollsum64State {
	return Rollsum64State{}
}

func (s Rollsum64State) Sum() uint64 {
	return (s.A & fullBytes32) + ((s.B & fullBytes32) << 32)
}

// Remove the old byte from the start (using the full width, since
// it has been counted in b once for every byte since), then add the new byte
func (f Rollsum64) ProcessByte(state Rollsum64State, oldByte, newByte byte) (uint64, Rollsum64State) {
	state.A -= uint64(oldByte)
	state.B -= f.width * uint64(oldByte)

	state.A += uint64(newByte)
	state.B += state.A

	return state.Sum(), state
}
