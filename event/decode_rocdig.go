package event

import "github.com/psi46/datastream/record"

// RocDigDecoder decodes Records from a digital ROC stream into single-ROC
// Events (spec §4.6).
type RocDigDecoder struct {
	ev Event
}

// NewRocDigDecoder returns a decoder for the digital ROC dialect.
func NewRocDigDecoder() *RocDigDecoder {
	return &RocDigDecoder{}
}

// Decode translates rec into an Event. The returned Event is a scratch
// buffer owned by the decoder; it is invalidated by the next call to
// Decode.
func (d *RocDigDecoder) Decode(rec *record.Record) *Event {
	d.ev.RecordNr = rec.RecordNr
	d.ev.Device = ROCD
	d.ev.Header = 0
	d.ev.Trailer = 0
	d.ev.Error = 0
	d.ev.Rocs = d.ev.Rocs[:0]

	payload := rec.Payload
	var roc RocEvent
	if len(payload) == 0 {
		d.ev.Rocs = append(d.ev.Rocs, roc)
		return &d.ev
	}

	roc.Header = int32(payload[0])
	body := payload[1:]

	for i := 0; i+1 < len(body); i += 2 {
		raw := (uint32(body[i]) << 12) | uint32(body[i+1])
		px := DecodeRaw(raw)
		roc.Pixels = append(roc.Pixels, px)
	}
	// A trailing odd symbol (no matching partner) is ignored.

	d.ev.Rocs = append(d.ev.Rocs, roc)
	return &d.ev
}
