package source_test

import (
	"encoding/binary"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psi46/datastream/source"
)

func writeSamples(t *testing.T, samples []uint16) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "datastream-*.raw")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], s)
	}
	if _, err := f.Write(buf); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}

func TestFileSourceReplay(t *testing.T) {
	want := []uint16{0x0001, 0xFFFF, 0x8000, 0x1234}
	path := writeSamples(t, want)

	src, err := source.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer src.Close()

	var got []uint16
	for {
		sym, err := src.Get()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		got = append(got, sym)
	}
	assert.Equal(t, want, got)
}

// TestFileSourceEmpty exercises S6: an empty file raises a terminal
// condition on the first Read, and Close afterwards is a no-op.
func TestFileSourceEmpty(t *testing.T) {
	path := writeSamples(t, nil)

	src, err := source.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	_, err = src.Get()
	if err != io.EOF {
		t.Fatalf("Get on empty file = %v, want io.EOF", err)
	}

	if err := src.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
