package readers

import (
	"io"
)

const nonRepeatingModulo = 87178291199
const nonRepeatingIncrement = 17180131327

// *should* produce a non-repeating sequence of bytes in a deterministic fashion.
// It never ends: use NewSizedNonRepeatingSequence for a finite stream.
type nonRepeatingSequenceReader struct {
	value int
}

// NonRepeatingSequence can be read in blocks or a byte at a time
type NonRepeatingSequence interface {
	io.Reader
	io.ByteReader
}

func NewNonRepeatingSequence(i int) NonRepeatingSequence {
	return &nonRepeatingSequenceReader{i}
}

// NewSizedNonRepeatingSequence stops after s bytes
func NewSizedNonRepeatingSequence(i int, s int64) NonRepeatingSequence {
	return &limitedByteReader{
		r:         NewNonRepeatingSequence(i),
		remaining: s,
	}
}

func (r *nonRepeatingSequenceReader) ReadByte() (byte, error) {
	// low byte of the little endian encoding
	b := byte(uint32(r.value))
	r.value = (r.value + nonRepeatingIncrement) % nonRepeatingModulo
	return b, nil
}

func (r *nonRepeatingSequenceReader) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i], _ = r.ReadByte()
	}
	return len(p), nil
}

type limitedByteReader struct {
	r         NonRepeatingSequence
	remaining int64
}

func (l *limitedByteReader) ReadByte() (byte, error) {
	if l.remaining <= 0 {
		return 0, io.EOF
	}
	l.remaining--
	return l.r.ReadByte()
}

func (l *limitedByteReader) Read(p []byte) (n int, err error) {
	if l.remaining <= 0 {
		return 0, io.EOF
	}

	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}

	n, err = l.r.Read(p)
	l.remaining -= int64(n)
	return
}
