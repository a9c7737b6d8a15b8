package pipe

import (
	"fmt"
	"io"
)

// StreamDump hex-dumps every sample pulled through it, sixteen per line, to
// an arbitrary text sink, and passes the sample through unchanged.
type StreamDump struct {
	src Uint16Source
	w   io.Writer

	col int
}

// NewStreamDump wraps src, writing a hex dump of every sample to w.
func NewStreamDump(src Uint16Source, w io.Writer) *StreamDump {
	return &StreamDump{src: src, w: w}
}

// Get pulls the next sample from src, dumps it, and returns it unchanged.
func (p *StreamDump) Get() (uint16, error) {
	sym, err := p.src.Get()
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(p.w, "%04x ", sym)
	p.col++
	if p.col == 16 {
		fmt.Fprintln(p.w)
		p.col = 0
	}

	return sym, nil
}
