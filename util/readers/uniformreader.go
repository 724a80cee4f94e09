package readers

import (
	"io"
)

// Reads a continuous stream of bytes with the same value, up to length
type uniformReader struct {
	value  byte
	length int
	read   int
}

func (r *uniformReader) Read(p []byte) (n int, err error) {
	readable := r.length - r.read
	read := min(len(p), readable)

	if read == 0 {
		return 0, io.EOF
	}

	for i := 0; i < read; i++ {
		p[i] = r.value
	}

	r.read += read

	if read == readable {
		return read, io.EOF
	}

	return read, nil
}

func (r *uniformReader) ReadByte() (byte, error) {
	if r.read >= r.length {
		return 0, io.EOF
	}
	r.read++
	return r.value, nil
}

// Uniform is a finite stream of a single byte value
type Uniform interface {
	io.Reader
	io.ByteReader
}

func UniformReader(value byte, length int) Uniform {
	return &uniformReader{
		value:  value,
		length: length,
	}
}

func ZeroReader(length int) Uniform {
	return UniformReader(0, length)
}
