/*
Package sources opens files as byte sources for the rolling checksum engine, decompressing them
on the fly when they are stored gzip, zstd, snappy or lz4 compressed.
*/
package sources

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Format names how a file is encoded
type Format string

const (
	FormatAuto   Format = "auto"
	FormatRaw    Format = "raw"
	FormatGzip   Format = "gzip"
	FormatZstd   Format = "zstd"
	FormatSnappy Format = "snappy"
	FormatLZ4    Format = "lz4"
)

var ErrUnknownFormat = errors.New("unknown source format")

var extensions = map[string]Format{
	".gz":     FormatGzip,
	".gzip":   FormatGzip,
	".zst":    FormatZstd,
	".zstd":   FormatZstd,
	".sz":     FormatSnappy,
	".snappy": FormatSnappy,
	".lz4":    FormatLZ4,
}

// Formats lists every format that Open accepts
func Formats() []Format {
	return []Format{FormatAuto, FormatRaw, FormatGzip, FormatZstd, FormatSnappy, FormatLZ4}
}

// Detect guesses the format from the file extension, falling back to raw
func Detect(path string) Format {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return FormatRaw
}

// Source is a buffered, decompressed view of a file.
// Close releases the decoder as well as the file.
type Source struct {
	*bufio.Reader
	closers []io.Closer
}

func (s *Source) Close() error {
	var first error

	// decoders before the file underneath them
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Open opens path and wraps it in a decoder for format.
// FormatAuto (or an empty format) uses Detect.
func Open(path string, format Format) (*Source, error) {
	if format == "" || format == FormatAuto {
		format = Detect(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening source")
	}

	s, err := Wrap(file, format)
	if err != nil {
		file.Close()
		return nil, errors.Wrapf(err, "opening %v", path)
	}

	s.closers = append([]io.Closer{file}, s.closers...)
	return s, nil
}

// Wrap decodes r according to format. Closing the Source does not close r.
func Wrap(r io.Reader, format Format) (*Source, error) {
	s := &Source{}

	switch format {
	case FormatRaw:
	case FormatGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading gzip header")
		}
		r = gz
		s.closers = append(s.closers, gz)
	case FormatZstd:
		decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, errors.Wrap(err, "creating zstd decoder")
		}
		r = decoder
		s.closers = append(s.closers, decoder.IOReadCloser())
	case FormatSnappy:
		r = snappy.NewReader(r)
	case FormatLZ4:
		r = lz4.NewReader(r)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	s.Reader = bufio.NewReader(r)
	return s, nil
}
