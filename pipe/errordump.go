package pipe

import "github.com/charmbracelet/log"

// badBitsMask flags a sample as part of a "bad" run (spec §4.9): a sample
// with bit 12 or bit 13 set (above the 12-bit payload, below the framing
// markers in bits 14/15) is treated as line noise on the wire.
const badBitsMask uint16 = 0x3000

// cleanRunToGood is the number of consecutive clean samples required before
// a bad run is considered to have ended.
const cleanRunToGood = 3

// StreamErrorDump tracks runs of "good" vs "bad" samples in the raw stream
// and logs each transition with the length of the run that just ended. It
// passes every sample through unchanged.
type StreamErrorDump struct {
	src    Uint16Source
	logger *log.Logger

	bad       bool
	badLen    int // samples seen since the current bad run started
	cleanTail int // consecutive clean samples seen since badLen was last bad
	goodLen   int // samples seen since the current good run started
}

// NewStreamErrorDump wraps src, logging good/bad run transitions to logger.
func NewStreamErrorDump(src Uint16Source, logger *log.Logger) *StreamErrorDump {
	return &StreamErrorDump{src: src, logger: logger}
}

// Get pulls the next sample from src, updates the run tracker, and returns
// the sample unchanged.
func (p *StreamErrorDump) Get() (uint16, error) {
	sym, err := p.src.Get()
	if err != nil {
		return 0, err
	}

	bad := sym&badBitsMask != 0

	if !p.bad {
		if bad {
			p.logger.Warn("entering bad run", "goodRunLength", p.goodLen)
			p.bad = true
			p.badLen = 0
			p.cleanTail = 0
		} else {
			p.goodLen++
		}
	}

	if p.bad {
		p.badLen++
		if bad {
			p.cleanTail = 0
		} else {
			p.cleanTail++
			if p.cleanTail >= cleanRunToGood {
				p.logger.Info("leaving bad run", "badRunLength", p.badLen-p.cleanTail)
				p.bad = false
				p.goodLen = p.cleanTail
			}
		}
	}

	return sym, nil
}
