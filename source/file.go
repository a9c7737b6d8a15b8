package source

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileSource replays a raw capture: a sequence of little-endian uint16
// samples with no framing (spec §4.3, §6). It terminates with io.EOF when
// the file is exhausted — unlike DtbSource, replay has no distinct "empty"
// condition to raise.
type FileSource struct {
	f   *os.File
	buf []byte   // reused across FillBuffer calls to avoid per-block allocation
	out []uint16 // decoded samples from the most recent fill
	pos int

	closed bool
}

// OpenFile opens path for raw sample replay.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "source: OpenFile")
	}
	return &FileSource{
		f:   f,
		buf: make([]byte, blockSize*2),
		out: make([]uint16, 0, blockSize),
	}, nil
}

// Get returns the next raw sample, refilling from the file as needed.
func (s *FileSource) Get() (uint16, error) {
	if s.pos >= len(s.out) {
		if err := s.fillBuffer(); err != nil {
			return 0, err
		}
	}
	sym := s.out[s.pos]
	s.pos++
	return sym, nil
}

// fillBuffer reads one block of raw little-endian uint16 samples. It
// returns io.EOF once the file has no more complete samples to offer.
func (s *FileSource) fillBuffer() error {
	if s.closed {
		return ErrNoDtbAccess
	}

	n, err := io.ReadFull(s.f, s.buf)
	switch {
	case err == nil:
		// full block read.
	case errors.Is(err, io.ErrUnexpectedEOF):
		n -= n % 2 // drop a dangling odd trailing byte.
	case errors.Is(err, io.EOF):
		return io.EOF
	default:
		return errors.Wrap(err, "source: file read")
	}
	if n == 0 {
		return io.EOF
	}

	s.out = s.out[:0]
	for i := 0; i+1 < n; i += 2 {
		s.out = append(s.out, binary.LittleEndian.Uint16(s.buf[i:i+2]))
	}
	s.pos = 0
	return nil
}

// Close releases the underlying file. It is idempotent.
func (s *FileSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}
