package sources

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Redundancy/go-rollsum/util/readers"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, format Format, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser

	switch format {
	case FormatRaw:
		return data
	case FormatGzip:
		w = gzip.NewWriter(&buf)
	case FormatZstd:
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = enc
	case FormatSnappy:
		w = snappy.NewBufferedWriter(&buf)
	case FormatLZ4:
		w = lz4.NewWriter(&buf)
	default:
		t.Fatalf("no writer for %v", format)
	}

	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func testData() []byte {
	data := make([]byte, 100000)
	readers.NewNonRepeatingSequence(0).Read(data)
	return data
}

func TestDetect(t *testing.T) {
	cases := map[string]Format{
		"a.gz":         FormatGzip,
		"a.tar.GZ":     FormatGzip,
		"b.zst":        FormatZstd,
		"c.snappy":     FormatSnappy,
		"c.sz":         FormatSnappy,
		"d.lz4":        FormatLZ4,
		"e.bin":        FormatRaw,
		"no-extension": FormatRaw,
	}

	for path, expected := range cases {
		assert.Equal(t, expected, Detect(path), path)
	}
}

func TestOpenEachFormat(t *testing.T) {
	data := testData()
	dir := t.TempDir()

	for _, format := range Formats() {
		if format == FormatAuto {
			continue
		}

		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "data."+string(format))
			require.NoError(t, os.WriteFile(path, compress(t, format, data), 0o600))

			s, err := Open(path, format)
			require.NoError(t, err)
			defer s.Close()

			read, err := io.ReadAll(s)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(data, read))
		})
	}
}

func TestOpenAutoUsesExtension(t *testing.T) {
	data := testData()
	path := filepath.Join(t.TempDir(), "data.zst")
	require.NoError(t, os.WriteFile(path, compress(t, FormatZstd, data), 0o600))

	s, err := Open(path, FormatAuto)
	require.NoError(t, err)
	defer s.Close()

	b, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, data[0], b)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"), FormatRaw)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrapUnknownFormat(t *testing.T) {
	_, err := Wrap(bytes.NewReader(nil), "rar")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestBrokenGzipHeader(t *testing.T) {
	_, err := Wrap(bytes.NewReader([]byte("not gzip")), FormatGzip)
	assert.Error(t, err)
}
