package rollsum

// Largest prime smaller than 65536
const AdlerMod = 65521

// Adler32 rolls the Adler-32 checksum over the window.
// Every checksum it produces is the hash/adler32 checksum of the window bytes.
type Adler32 struct {
	width uint32
	// width mod AdlerMod, used to take a leaving byte out of b
	n uint32
}

type Adler32State struct {
	A, B uint32
}

func NewAdler32(width int) (Adler32, error) {
	if err := checkWidth(width); err != nil {
		return Adler32{}, err
	}

	return Adler32{
		width: uint32(width),
		n:     uint32(width % AdlerMod),
	}, nil
}

func (f Adler32) Width() int {
	return int(f.width)
}

func (Adler32) EmptyChecksum() uint32 {
	return 0
}

// InitialState is the state of a window of zeros: a is 1 and b counts one
// for every byte, so that evicting zeros while the window fills is exact.
func (f Adler32) InitialState() Adler32State {
	return Adler32State{A: 1, B: f.n}
}

func (s Adler32State) Sum() uint32 {
	return s.B<<16 | s.A
}

// See http://stackoverflow.com/questions/40985080/why-does-my-rolling-adler32-checksum-not-work-in-go-modulo-arithmetic
// All intermediate values are kept below 4*AdlerMod, so they cannot overflow.
func (f Adler32) ProcessByte(state Adler32State, oldByte, newByte byte) (uint32, Adler32State) {
	leave := uint32(oldByte)
	leaveN := (f.n * leave) % AdlerMod

	state.A = (state.A + AdlerMod + uint32(newByte) - leave) % AdlerMod
	state.B = (state.B + state.A + 2*AdlerMod - leaveN - 1) % AdlerMod

	return state.Sum(), state
}
