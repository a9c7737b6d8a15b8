package pipe

import (
	"github.com/psi46/datastream/internal/bits"
	"github.com/psi46/datastream/record"
)

// LevelHistogram accumulates ExpandSign-decoded analog levels from every
// record pulled through it, skipping every sixth payload position (the
// pulse-height slot of an analog pixel group, spec §4.9), and passes the
// record through unchanged.
type LevelHistogram struct {
	src  RecordSource
	hist Histogram
}

// NewLevelHistogram wraps src, accumulating decoded levels into hist.
func NewLevelHistogram(src RecordSource, hist Histogram) *LevelHistogram {
	return &LevelHistogram{src: src, hist: hist}
}

// Read pulls the next record from src, histograms it, and returns it
// unchanged.
func (p *LevelHistogram) Read() (*record.Record, error) {
	rec, err := p.src.Read()
	if err != nil {
		return nil, err
	}

	for i, sym := range rec.Payload {
		if (i+1)%6 == 0 {
			continue // pulse-height slot.
		}
		p.hist.Add(bits.ExpandSign(sym))
	}

	return rec, nil
}
