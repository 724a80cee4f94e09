package rollsum

// DefaultPolynomialBase is the largest prime fitting in 16 bits
const DefaultPolynomialBase = 65521

// Polynomial32 treats the window as the digits of a number in base a, mod 2^32:
//
//	h = x_1*a^(w-1) + x_2*a^(w-2) + ... + x_w
//
// This is the Rabin-Karp rolling hash over integers rather than over GF(2) polynomials.
type Polynomial32 struct {
	width int
	base  uint32
	// base^width, the weight of a byte as it leaves the window
	basePowWidth uint32
}

func NewPolynomial32(width int) (Polynomial32, error) {
	return NewPolynomial32WithBase(width, DefaultPolynomialBase)
}

func NewPolynomial32WithBase(width int, base uint32) (Polynomial32, error) {
	if err := checkWidth(width); err != nil {
		return Polynomial32{}, err
	}

	f := Polynomial32{
		width:        width,
		base:         base,
		basePowWidth: 1,
	}

	for i := 0; i < width; i++ {
		f.basePowWidth *= base
	}

	return f, nil
}

func (f Polynomial32) Width() int {
	return f.width
}

func (Polynomial32) EmptyChecksum() uint32 {
	return 0
}

func (Polynomial32) InitialState() uint32 {
	return 0
}

func (f Polynomial32) ProcessByte(state uint32, oldByte, newByte byte) (uint32, uint32) {
	state = state*f.base + uint32(newByte) - uint32(oldByte)*f.basePowWidth
	return state, state
}
