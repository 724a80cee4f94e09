package rollsum

// Rsync is the weak rolling checksum used by rsync, based on the writeup here:
// http://tutorials.jenkov.com/rsync/checksums.html
//
// s1 is the sum of the bytes in the window, s2 the sum of the s1 values as each
// byte was added, both mod 2^16. The checksum is s1 | s2 << 16.
type Rsync struct {
	width int
}

// RsyncState is the pair of running sums
type RsyncState struct {
	S1, S2 uint16
}

func NewRsync(width int) (Rsync, error) {
	if err := checkWidth(width); err != nil {
		return Rsync{}, err
	}
	return Rsync{width: width}, nil
}

func (f Rsync) Width() int {
	return f.width
}

func (Rsync) EmptyChecksum() uint32 {
	return 0
}

func (Rsync) InitialState() RsyncState {
	return RsyncState{}
}

func (s RsyncState) Sum() uint32 {
	return uint32(s.S1) | uint32(s.S2)<<16
}

// Removing a byte from the start of the window takes width * byte out of s2,
// since it was counted once for every s1 since it was added
func (f Rsync) ProcessByte(state RsyncState, oldByte, newByte byte) (uint32, RsyncState) {
	state.S1 = state.S1 - uint16(oldByte) + uint16(newByte)
	state.S2 = state.S2 - uint16(f.width)*uint16(oldByte) + state.S1
	return state.Sum(), state
}

/*
ProcessSlice advances over a whole block in one pass, without working out the
intermediate checksums. For k pairs with d_i = new_i - old_i:

	s1' = s1 + sum(d_i)
	s2' = s2 + k*s1 - width*sum(old_i) + sum((k-i) * d_i)   (i from 0)
*/
func (f Rsync) ProcessSlice(state RsyncState, oldData, newData []byte) (uint32, RsyncState) {
	k := len(newData)

	if k == 0 {
		return f.EmptyChecksum(), state
	}

	var sumDiff, sumOld, weighted uint16

	for i, n := range newData {
		o := uint16(oldData[i])
		d := uint16(n) - o
		sumDiff += d
		sumOld += o
		weighted += uint16(k-i) * d
	}

	state.S2 = state.S2 + uint16(k)*state.S1 - uint16(f.width)*sumOld + weighted
	state.S1 += sumDiff

	return state.Sum(), state
}
