package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psi46/datastream/dtb"
	"github.com/psi46/datastream/source"
)

// fakeHandle is an in-memory dtb.Handle for exercising DtbSource without
// real hardware. Each DaqRead call serves one entry from reads.
type fakeHandle struct {
	opened  bool
	reads   []fakeRead
	readPos int
	started bool
}

type fakeRead struct {
	data  []uint16
	state dtb.State
}

func (h *fakeHandle) DaqOpen(fifoBytes, channel int) bool { h.opened = true; return true }
func (h *fakeHandle) DaqClose(channel int)                { h.opened = false }
func (h *fakeHandle) DaqStart(channel int)                { h.started = true }
func (h *fakeHandle) DaqStop(channel int)                 { h.started = false }

func (h *fakeHandle) DaqRead(buf []uint16, channel int) (int, int, dtb.State, error) {
	if h.readPos >= len(h.reads) {
		return 0, 0, 0, nil
	}
	r := h.reads[h.readPos]
	h.readPos++
	n := copy(buf, r.data)
	return n, 0, r.state, nil
}

func (h *fakeHandle) SelectADC(channel int, timeout uint16, tin, tout uint8) error { return nil }
func (h *fakeHandle) SelectDeser160(channel int, phase uint8) error               { return nil }
func (h *fakeHandle) SelectDeser400(channel int) error                           { return nil }
func (h *fakeHandle) SelectDatagenerator(channel int) error                      { return nil }
func (h *fakeHandle) SignalProbeADC(channel int, gain int) error                 { return nil }
func (h *fakeHandle) UDelay(us int)                                              {}
func (h *fakeHandle) MDelay(ms int)                                              {}

func TestDtbSourceReadsThroughEmptyPolls(t *testing.T) {
	h := &fakeHandle{reads: []fakeRead{
		{data: nil},
		{data: nil},
		{data: []uint16{1, 2, 3}},
	}}
	src, err := source.OpenRocDig(h, 1<<20, 0, true, 4)
	if err != nil {
		t.Fatalf("OpenRocDig: %v", err)
	}
	defer src.Close()

	for _, want := range []uint16{1, 2, 3} {
		got, err := src.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		assert.Equal(t, want, got)
	}
}

func TestDtbSourceEmptyNonEndless(t *testing.T) {
	h := &fakeHandle{reads: []fakeRead{{data: nil}}}
	src, err := source.OpenModDig(h, 1<<20, 1, false)
	if err != nil {
		t.Fatalf("OpenModDig: %v", err)
	}
	defer src.Close()

	_, err = src.Get()
	if err != source.ErrEmpty {
		t.Fatalf("Get = %v, want ErrEmpty", err)
	}
}

func TestDtbSourceBufferOverflow(t *testing.T) {
	h := &fakeHandle{reads: []fakeRead{{data: nil, state: dtb.FifoOverflow}}}
	src, err := source.OpenModDig(h, 1<<20, 2, true)
	if err != nil {
		t.Fatalf("OpenModDig: %v", err)
	}
	defer src.Close()

	_, err = src.Get()
	if err != source.ErrBufferOverflow {
		t.Fatalf("Get = %v, want ErrBufferOverflow", err)
	}
}

func TestDtbSourceCloseIdempotent(t *testing.T) {
	h := &fakeHandle{}
	src, err := source.OpenSimulator(h, 1<<16, 3, false)
	if err != nil {
		t.Fatalf("OpenSimulator: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := src.Get(); err != source.ErrNoDtbAccess {
		t.Fatalf("Get after Close = %v, want ErrNoDtbAccess", err)
	}
}
