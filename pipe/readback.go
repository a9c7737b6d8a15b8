package pipe

import "github.com/psi46/datastream/record"

// readbackTagMask and readbackTag identify a header symbol that carries a
// readback bit: only symbols matching header&readbackTagMask==readbackTag
// are folded into the shift register (spec §4.9).
const (
	readbackTagMask uint16 = 0xFFC
	readbackTag     uint16 = 0x7F8

	readbackDataBit  uint16 = 0x001
	readbackFrameBit uint16 = 0x002
)

// ReadBack recovers a 16-bit shift register that ROCs report one bit at a
// time through the header symbol of matching records (spec §4.9), and
// passes every record through unchanged. Data accumulates in Data; Valid
// reports whether Data holds a complete 16-bit frame; Updated reports
// whether the most recently read record contributed a new bit.
type ReadBack struct {
	src RecordSource

	Data    uint16
	Valid   bool
	Updated bool

	bits int
}

// NewReadBack wraps src, accumulating the serial readback side-channel
// carried in matching record headers.
func NewReadBack(src RecordSource) *ReadBack {
	return &ReadBack{src: src}
}

// Read pulls the next record from src, folds its header symbol into the
// shift register if it carries a readback bit, and returns the record
// unchanged.
func (p *ReadBack) Read() (*record.Record, error) {
	rec, err := p.src.Read()
	if err != nil {
		return nil, err
	}

	p.Updated = false
	if len(rec.Payload) == 0 {
		return rec, nil
	}

	header := rec.Payload[0]
	if header&readbackTagMask != readbackTag {
		return rec, nil
	}

	if header&readbackFrameBit != 0 && p.bits > 0 {
		p.Valid = p.bits == 16
		p.bits = 0
	}

	bit := uint16(0)
	if header&readbackDataBit != 0 {
		bit = 1
	}
	p.Data = p.Data<<1 | bit
	p.bits++
	p.Updated = true
	if p.bits == 16 {
		p.Valid = true
	}

	return rec, nil
}
