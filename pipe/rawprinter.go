package pipe

import (
	"fmt"
	"io"

	"github.com/psi46/datastream/internal/bits"
	"github.com/psi46/datastream/record"
)

// RawDataPrinter writes a human-readable dump of every record pulled
// through it — record number, size, and either decoded analog levels or
// raw 12-bit hex payload — and passes the record through unchanged.
type RawDataPrinter struct {
	src RecordSource
	w   io.Writer
	// analog selects ExpandSign-decoded level output instead of hex.
	analog bool
}

// NewRawDataPrinter wraps src, writing record dumps to w. When analog is
// true, payload symbols are printed as sign-expanded ADC levels; otherwise
// as 12-bit hex.
func NewRawDataPrinter(src RecordSource, w io.Writer, analog bool) *RawDataPrinter {
	return &RawDataPrinter{src: src, w: w, analog: analog}
}

// Read pulls the next record from src, dumps it, and returns it unchanged.
func (p *RawDataPrinter) Read() (*record.Record, error) {
	rec, err := p.src.Read()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.w, "record %d: %d symbols, flags=%#x\n", rec.RecordNr, len(rec.Payload), rec.Flags)
	for i, sym := range rec.Payload {
		if p.analog {
			fmt.Fprintf(p.w, "%6d", bits.ExpandSign(sym))
		} else {
			fmt.Fprintf(p.w, " %03x", sym)
		}
		if (i+1)%16 == 0 {
			fmt.Fprintln(p.w)
		}
	}
	fmt.Fprintln(p.w)

	return rec, nil
}
