// Package datastream decodes the raw sample stream produced by a pixel
// detector's readout chip (ROC) or module controller (TBM) into a typed
// hierarchy of Events. It wires three independently useful layers — a
// Source of raw uint16 samples, a Scanner (record.RocScanner or
// record.ModuleScanner) that frames them, and an
// event decoder that interprets the frames — behind a single pull-based
// Stream, in the shape of mewkiz/flac's Stream/NewStream convenience type.
package datastream

import (
	"github.com/psi46/datastream/event"
	"github.com/psi46/datastream/level"
	"github.com/psi46/datastream/record"
)

// Decoder translates a framed Record into a decoded Event. RocDigDecoder,
// RocAnaDecoder, and ModDigDecoder in package event all satisfy it.
type Decoder interface {
	Decode(rec *record.Record) *event.Event
}

// Scanner is the pull interface a record framer exposes to Stream.
// RocScanner and ModuleScanner in package record both satisfy it.
type Scanner interface {
	Read() (*record.Record, error)
}

// Source is the subset of source.Source a Stream needs: a frameable raw
// sample stream that can be shut down. source.DtbSource and
// source.FileSource both satisfy it.
type Source interface {
	record.Source
	Close() error
}

// Stream pulls raw samples through a Scanner and decodes each framed
// Record into an Event. It satisfies pipe.EventSource.
//
// A Stream returned by one of the New*Stream constructors owns the Source
// it was built with: closing the Stream closes the Source.
type Stream struct {
	src     Source
	scanner Scanner
	decoder Decoder
}

// NewStream wires an already-constructed scanner and decoder into a single
// pull-based Event source. Use this when the scanner's Source lifetime is
// managed elsewhere; Close is then a no-op. The New*Stream constructors
// below are the common case and also take care of Close.
func NewStream(scanner Scanner, decoder Decoder) *Stream {
	return &Stream{scanner: scanner, decoder: decoder}
}

// NewRocAnaStream builds a Stream over an analog ROC record stream: the
// scanner frames src with the ROC dialect, and the decoder translates
// base-6 ADC samples using levels.
func NewRocAnaStream(src Source, levels level.Decoder) *Stream {
	return &Stream{src: src, scanner: record.NewRocScanner(src), decoder: event.NewRocAnaDecoder(levels)}
}

// NewRocDigStream builds a Stream over a digital ROC record stream.
func NewRocDigStream(src Source) *Stream {
	return &Stream{src: src, scanner: record.NewRocScanner(src), decoder: event.NewRocDigDecoder()}
}

// NewModDigStream builds a Stream over a digital TBM module record stream.
func NewModDigStream(src Source) *Stream {
	return &Stream{src: src, scanner: record.NewModuleScanner(src), decoder: event.NewModDigDecoder()}
}

// Read pulls the next framed Record and decodes it into an Event. The
// returned Event is a scratch buffer owned by the decoder; it is
// invalidated by the next call to Read.
func (s *Stream) Read() (*event.Event, error) {
	rec, err := s.scanner.Read()
	if err != nil {
		return nil, err
	}
	return s.decoder.Decode(rec), nil
}

// Close releases the Stream's underlying Source, if one was provided.
func (s *Stream) Close() error {
	if s.src == nil {
		return nil
	}
	return s.src.Close()
}
