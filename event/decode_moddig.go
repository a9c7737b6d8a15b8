package event

import (
	"github.com/mewkiz/pkg/dbg"

	"github.com/psi46/datastream/record"
)

func init() {
	dbg.Debug = false
}

// Module/TBM nibble tags (spec §4.8, §6): every 12-bit symbol carries a
// 5-bit tag in bits 4..8 and a 4-bit payload in bits 0..3.
const (
	modTagHeaderMask uint16 = 0x0080 // set on every header/trailer tag (0x8_-0xF_)
	modTagMask       uint16 = 0x01F0
	modTagRocStart   uint16 = 0x0070 // R7
	modTagPixelLo    uint16 = 0x0010 // R1
	modTagPixelHi    uint16 = 0x0060 // R6

	// missingSym is synthesized in place of a symbol the record ran out of;
	// its tag (0x100) fails every tag comparison below.
	missingSym uint16 = 0x100
)

var headerTags = [4]uint16{0x0080, 0x0090, 0x00A0, 0x00B0}
var headerErrBits = [4]uint16{0x0800, 0x0400, 0x0200, 0x0100}
var trailerTags = [4]uint16{0x00C0, 0x00D0, 0x00E0, 0x00F0}
var trailerErrBits = [4]uint16{0x0080, 0x0040, 0x0020, 0x0010}

// ModDigDecoder decodes Records from a digital TBM module stream into
// multi-ROC Events (spec §4.8).
type ModDigDecoder struct {
	ev Event
}

// NewModDigDecoder returns a decoder for the module (TBM) dialect.
func NewModDigDecoder() *ModDigDecoder {
	return &ModDigDecoder{}
}

// tokens pulls symbols from a Record payload, synthesizing missingSym once
// the payload is exhausted instead of raising an error, per spec §4.8.
type tokens struct {
	payload []uint16
	pos     int
}

func (t *tokens) next() uint16 {
	if t.pos >= len(t.payload) {
		return missingSym
	}
	sym := t.payload[t.pos]
	t.pos++
	return sym
}

// Decode translates rec into a multi-ROC Event. The returned Event is a
// scratch buffer owned by the decoder; it is invalidated by the next call
// to Decode.
func (d *ModDigDecoder) Decode(rec *record.Record) *Event {
	d.ev.RecordNr = rec.RecordNr
	d.ev.Device = MODD
	d.ev.Error = 0
	d.ev.Rocs = d.ev.Rocs[:0]

	ts := &tokens{payload: rec.Payload}

	// TBM header: 4 symbols, tags 0x80/0x90/0xA0/0xB0.
	var headerNibbles [4]uint16
	for i := 0; i < 4; i++ {
		sym := ts.next()
		if sym&modTagMask != headerTags[i] {
			d.ev.Error |= headerErrBits[i]
		}
		headerNibbles[i] = sym & 0x000F
	}
	d.ev.Header = uint32(headerNibbles[0])<<12 | uint32(headerNibbles[1])<<8 |
		uint32(headerNibbles[2])<<4 | uint32(headerNibbles[3])
	dbg.Println("TBM header:", d.ev.Header)

	// ROC blocks: while the next symbol's tag is R7 (0x70), decode a ROC.
	tok := ts.next()
	anyRocError := false
	for tok&modTagMask == modTagRocStart {
		roc := RocEvent{Header: int32(tok & 0x000F)}
		tok = d.decodeRocBody(ts, &roc)
		if roc.Error != 0 {
			anyRocError = true
		}
		d.ev.Rocs = append(d.ev.Rocs, roc)
	}

	// TBM trailer: 4 symbols, tags 0xC0/0xD0/0xE0/0xF0. tok already holds
	// the first trailer candidate — the symbol that ended ROC decoding is
	// reused here, never re-read from ts (spec §9 Open Question).
	var trailerNibbles [4]uint16
	for i := 0; i < 4; i++ {
		sym := tok
		if i > 0 {
			sym = ts.next()
		}
		if sym&modTagMask != trailerTags[i] {
			d.ev.Error |= trailerErrBits[i]
		}
		trailerNibbles[i] = sym & 0x000F
	}
	d.ev.Trailer = uint32(trailerNibbles[0])<<12 | uint32(trailerNibbles[1])<<8 |
		uint32(trailerNibbles[2])<<4 | uint32(trailerNibbles[3])
	dbg.Println("TBM trailer:", d.ev.Trailer)

	if anyRocError {
		d.ev.Error |= 0x0001
	}

	return &d.ev
}

// decodeRocBody consumes pixels for one ROC block, starting from the
// already-read lookahead symbol tok. It returns the symbol that ended the
// block: either the one whose tag fell outside R1..R6 — including a clean
// header/trailer tag at a pixel boundary (spec §4.8 "End-of-ROC-block") —
// or the symbol that triggered the abort path mid-pixel, i.e. at position
// 2..6 of an already-started pixel (spec §4.8 "Abort path").
func (d *ModDigDecoder) decodeRocBody(ts *tokens, roc *RocEvent) uint16 {
	tok := ts.next()
	for {
		tag := tok & modTagMask
		if tag < modTagPixelLo || tag > modTagPixelHi {
			// Not an R1..R6 tag — including a clean header/trailer tag at a
			// pixel boundary — ends the ROC block normally.
			return tok
		}

		raw, pxErr, aborted, abortSym := d.decodePixel(ts, tok)
		if aborted {
			roc.Pixels = append(roc.Pixels, Pixel{Error: 0x1FFF})
			roc.Error |= 0x0001
			return abortSym
		}
		px := DecodeRaw(raw)
		px.Error |= pxErr
		roc.Pixels = append(roc.Pixels, px)

		tok = ts.next()
	}
}

// decodePixel reads the five symbols following first (which decodeRocBody
// already confirmed is not header/trailer-tagged), checking each against
// its expected R1..R6 tag and assembling the 24-bit raw word from all six
// symbols' low nibbles. If any of the five has bit 0x080 set, decoding
// aborts mid-pixel and that symbol is returned as abortSym.
func (d *ModDigDecoder) decodePixel(ts *tokens, first uint16) (raw uint32, pxErr uint16, aborted bool, abortSym uint16) {
	var syms [6]uint16
	syms[0] = first
	pxErr = tagMismatchBit(1, first)

	for i := 2; i <= 6; i++ {
		sym := ts.next()
		if sym&modTagHeaderMask != 0 {
			return 0, 0, true, sym
		}
		syms[i-1] = sym
		pxErr |= tagMismatchBit(i, sym)
	}

	for _, s := range syms {
		raw = (raw << 4) | uint32(s&0x000F)
	}
	return raw, pxErr, false, 0
}

// tagMismatchBit sets bit i (1..6) when sym's tag index does not match the
// expected pixel position i, per spec §4.8.
func tagMismatchBit(i int, sym uint16) uint16 {
	idx := (sym & modTagMask) >> 4
	if idx != uint16(i) {
		return 1 << uint(i)
	}
	return 0
}
