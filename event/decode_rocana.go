package event

import (
	"github.com/psi46/datastream/level"
	"github.com/psi46/datastream/record"
)

// RocAnaDecoder decodes Records from an analog ROC stream into single-ROC
// Events (spec §4.7).
type RocAnaDecoder struct {
	levels level.Decoder
	ev     Event
}

// NewRocAnaDecoder returns a decoder for the analog ROC dialect, using the
// given calibrated level decoder to translate ADC samples to base-6
// symbols.
func NewRocAnaDecoder(levels level.Decoder) *RocAnaDecoder {
	return &RocAnaDecoder{levels: levels}
}

// Decode translates rec into an Event. It returns an Event with an empty
// RocEvent list when rec has fewer than 3 samples, per spec §4.7. The
// returned Event is a scratch buffer owned by the decoder; it is
// invalidated by the next call to Decode.
func (d *RocAnaDecoder) Decode(rec *record.Record) *Event {
	d.ev.RecordNr = rec.RecordNr
	d.ev.Device = ROCA
	d.ev.Header = 0
	d.ev.Trailer = 0
	d.ev.Error = 0
	d.ev.Rocs = d.ev.Rocs[:0]

	payload := rec.Payload
	if len(payload) < 3 {
		return &d.ev
	}

	var roc RocEvent
	roc.Header = int32(d.levels.CorrectOffset(payload[2]))

	body := payload[3:]
	for i := 0; i+6 <= len(body); i += 6 {
		var v [6]uint16
		copy(v[:], body[i:i+6])
		roc.Pixels = append(roc.Pixels, DecodeAna(&d.levels, v))
	}
	// A trailing group of fewer than 6 samples is ignored.

	d.ev.Rocs = append(d.ev.Rocs, roc)
	return &d.ev
}
