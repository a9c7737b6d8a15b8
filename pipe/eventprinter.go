package pipe

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/psi46/datastream/event"
)

// EventPrinter pretty-prints every event pulled through it, with per-device
// formatting (spec §4.9, ROCA/ROCD/MODD each shown with the fields relevant
// to their decoder), and passes the event through unchanged. When
// ErrorsOnly is set, only events with Error != 0 are printed.
type EventPrinter struct {
	src        EventSource
	w          io.Writer
	logger     *log.Logger
	ErrorsOnly bool
}

// NewEventPrinter wraps src, writing formatted event dumps to w and logging
// a one-line error summary for every flagged event via logger.
func NewEventPrinter(src EventSource, w io.Writer, logger *log.Logger) *EventPrinter {
	return &EventPrinter{src: src, w: w, logger: logger}
}

// Read pulls the next event from src, prints it, and returns it unchanged.
func (p *EventPrinter) Read() (*event.Event, error) {
	ev, err := p.src.Read()
	if err != nil {
		return nil, err
	}

	if ev.Error != 0 {
		p.logger.Warn("event error", "record", ev.RecordNr, "device", ev.Device, "error", fmt.Sprintf("%#x", ev.Error))
	} else if p.ErrorsOnly {
		return ev, nil
	}

	switch ev.Device {
	case event.ROCA, event.ROCD:
		p.printRoc(ev)
	case event.MODD:
		p.printModule(ev)
	default:
		fmt.Fprintf(p.w, "record %d: unknown device, error=%#x\n", ev.RecordNr, ev.Error)
	}

	return ev, nil
}

func (p *EventPrinter) printRoc(ev *event.Event) {
	fmt.Fprintf(p.w, "record %d [%s] header=%#x error=%#x\n", ev.RecordNr, ev.Device, ev.Header, ev.Error)
	for _, roc := range ev.Rocs {
		p.printPixels(roc)
	}
}

func (p *EventPrinter) printModule(ev *event.Event) {
	fmt.Fprintf(p.w, "record %d [MODD] header=%#x trailer=%#x error=%#x, %d rocs\n",
		ev.RecordNr, ev.Header, ev.Trailer, ev.Error, len(ev.Rocs))
	for i, roc := range ev.Rocs {
		fmt.Fprintf(p.w, "  roc %d: header=%#x error=%#x\n", i, roc.Header, roc.Error)
		p.printPixels(roc)
	}
}

func (p *EventPrinter) printPixels(roc event.RocEvent) {
	for _, px := range roc.Pixels {
		fmt.Fprintf(p.w, "    pixel x=%d y=%d ph=%d error=%#x\n", px.X, px.Y, px.PH, px.Error)
	}
}
