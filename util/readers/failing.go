package readers

import (
	"io"
)

// ErrorAfter returns the bytes of data one at a time, then err instead of io.EOF.
// It stands in for a source that breaks part way through a stream.
func ErrorAfter(data []byte, err error) io.ByteReader {
	return &failingReader{data: data, err: err}
}

type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) ReadByte() (byte, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}

	b := f.data[0]
	f.data = f.data[1:]
	return b, nil
}

// Counting wraps a byte source and counts the calls to ReadByte
type Counting struct {
	R     io.ByteReader
	Calls int
	Bytes int
}

func (c *Counting) ReadByte() (byte, error) {
	c.Calls++
	b, err := c.R.ReadByte()
	if err == nil {
		c.Bytes++
	}
	return b, err
}
