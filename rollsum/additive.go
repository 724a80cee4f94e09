package rollsum

// Additive is the sum of the bytes in the window, mod 256.
// The accumulator is the sum itself.
type Additive struct {
	width int
}

func NewAdditive(width int) (Additive, error) {
	if err := checkWidth(width); err != nil {
		return Additive{}, err
	}
	return Additive{width: width}, nil
}

func (f Additive) Width() int {
	return f.width
}

func (Additive) EmptyChecksum() uint8 {
	return 0
}

func (Additive) InitialState() uint8 {
	return 0
}

func (Additive) ProcessByte(state uint8, oldByte, newByte byte) (uint8, uint8) {
	state = state - oldByte + newByte
	return state, state
}

// ProcessSlice only needs the difference of the two sums
func (f Additive) ProcessSlice(state uint8, oldData, newData []byte) (uint8, uint8) {
	if len(newData) == 0 {
		return f.EmptyChecksum(), state
	}

	for i, b := range newData {
		state += b - oldData[i]
	}

	return state, state
}
