package pipe_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psi46/datastream/pipe"
	"github.com/psi46/datastream/record"
)

// sliceUint16Source replays a fixed slice of samples, then returns io.EOF.
type sliceUint16Source struct {
	syms []uint16
	pos  int
}

func (s *sliceUint16Source) Get() (uint16, error) {
	if s.pos >= len(s.syms) {
		return 0, io.EOF
	}
	sym := s.syms[s.pos]
	s.pos++
	return sym, nil
}

// sliceRecordSource replays a fixed slice of Records, then returns io.EOF.
type sliceRecordSource struct {
	recs []record.Record
	pos  int
}

func (s *sliceRecordSource) Read() (*record.Record, error) {
	if s.pos >= len(s.recs) {
		return nil, io.EOF
	}
	rec := s.recs[s.pos]
	s.pos++
	return &rec, nil
}

func TestStreamDumpPassesThroughAndWraps(t *testing.T) {
	src := &sliceUint16Source{syms: make([]uint16, 20)}
	for i := range src.syms {
		src.syms[i] = uint16(i)
	}
	var buf bytes.Buffer
	dump := pipe.NewStreamDump(src, &buf)

	for i := 0; i < 20; i++ {
		sym, err := dump.Get()
		if err != nil {
			t.Fatalf("Get %d: %v", i, err)
		}
		assert.Equal(t, uint16(i), sym)
	}
	if _, err := dump.Get(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}
