package readers

import (
	"bytes"
	"io"
	"testing"
)

func TestUniformBlockReads(t *testing.T) {
	r, err := io.ReadAll(UniformReader(0xff, 300))

	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(r, bytes.Repeat([]byte{0xff}, 300)) {
		t.Errorf("Unexpected content: %v bytes", len(r))
	}
}

func TestUniformShortReadEndsWithEOF(t *testing.T) {
	n, err := ZeroReader(10).Read(make([]byte, 64))

	if n != 10 {
		t.Errorf("Wrong read length: %v", n)
	}

	if err != io.EOF {
		t.Errorf("Expected EOF with the final bytes: %v", err)
	}
}

func TestUniformMixedReads(t *testing.T) {
	r := UniformReader(7, 5)
	block := make([]byte, 3)

	if n, _ := r.Read(block); n != 3 {
		t.Fatalf("Wrong read length: %v", n)
	}

	for i := 0; i < 2; i++ {
		b, err := r.ReadByte()

		if err != nil || b != 7 {
			t.Fatalf("Unexpected byte %v: %v %v", i, b, err)
		}
	}

	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("Expected EOF: %v", err)
	}

	if n, err := r.Read(block); n != 0 || err != io.EOF {
		t.Errorf("Expected an empty read: %v %v", n, err)
	}
}

func TestEmptyUniformReader(t *testing.T) {
	if _, err := ZeroReader(0).ReadByte(); err != io.EOF {
		t.Errorf("Expected EOF: %v", err)
	}
}
