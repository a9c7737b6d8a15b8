package source

import (
	"github.com/pkg/errors"

	"github.com/psi46/datastream/dtb"
)

// DtbSource pulls raw samples from a DTB FIFO channel. It buffers one block
// at a time; Get drains the buffer and triggers FillBuffer when empty.
type DtbSource struct {
	handle  dtb.Handle
	channel int
	endless bool

	buf    []uint16
	pos    int
	closed bool
}

// openDtb opens the DAQ channel, reserving the FIFO, and constructs a
// DtbSource over it; acquisition is not yet enabled. It is
// wrapped by the device-specific openers below, which additionally
// configure the deserializer/ADC before returning.
func openDtb(h dtb.Handle, fifoBytes, channel int, endless bool) (*DtbSource, error) {
	if !h.DaqOpen(fifoBytes, channel) {
		return nil, errors.Wrapf(ErrNoDtbAccess, "source: DaqOpen(channel=%d) failed", channel)
	}
	return &DtbSource{
		handle:  h,
		channel: channel,
		endless: endless,
		buf:     make([]uint16, 0, blockSize),
	}, nil
}

// OpenRocAna opens a DTB channel for analog ROC acquisition: selects the
// ADC source with the given timeout and tin/tout delays, enables the probe
// at gain, and waits for the ADC to settle.
func OpenRocAna(h dtb.Handle, fifoBytes, channel int, endless bool, timeoutTicks uint16, tin, tout, gain uint8) (*DtbSource, error) {
	s, err := openDtb(h, fifoBytes, channel, endless)
	if err != nil {
		return nil, err
	}
	if err := h.SelectADC(channel, timeoutTicks, tin, tout); err != nil {
		return nil, errors.Wrap(err, "source: SelectADC")
	}
	if err := h.SignalProbeADC(channel, int(gain)); err != nil {
		return nil, errors.Wrap(err, "source: SignalProbeADC")
	}
	h.UDelay(800)
	return s, nil
}

// OpenRocDig opens a DTB channel for digital ROC acquisition via the
// 160 Mbit/s deserializer, with the given phase adjust (0..7).
func OpenRocDig(h dtb.Handle, fifoBytes, channel int, endless bool, phase uint8) (*DtbSource, error) {
	s, err := openDtb(h, fifoBytes, channel, endless)
	if err != nil {
		return nil, err
	}
	if err := h.SelectDeser160(channel, phase); err != nil {
		return nil, errors.Wrap(err, "source: SelectDeser160")
	}
	return s, nil
}

// OpenModDig opens a DTB channel for digital TBM module acquisition via the
// 400 Mbit/s deserializer.
func OpenModDig(h dtb.Handle, fifoBytes, channel int, endless bool) (*DtbSource, error) {
	s, err := openDtb(h, fifoBytes, channel, endless)
	if err != nil {
		return nil, err
	}
	if err := h.SelectDeser400(channel); err != nil {
		return nil, errors.Wrap(err, "source: SelectDeser400")
	}
	return s, nil
}

// OpenSimulator opens a DTB channel reading from the board's on-board
// pattern generator.
func OpenSimulator(h dtb.Handle, fifoBytes, channel int, endless bool) (*DtbSource, error) {
	s, err := openDtb(h, fifoBytes, channel, endless)
	if err != nil {
		return nil, err
	}
	if err := h.SelectDatagenerator(channel); err != nil {
		return nil, errors.Wrap(err, "source: SelectDatagenerator")
	}
	return s, nil
}

// Enable starts DAQ acquisition on the source's channel.
func (s *DtbSource) Enable() {
	s.handle.DaqStart(s.channel)
}

// Disable stops DAQ acquisition on the source's channel. It is the first
// step of the orchestration layer's cancellation sequence (spec §5): after
// calling Disable, the caller pulls Get until ErrEmpty is raised.
func (s *DtbSource) Disable() {
	s.handle.DaqStop(s.channel)
}

// Get returns the next raw sample, refilling from the DTB FIFO as needed.
func (s *DtbSource) Get() (uint16, error) {
	if s.pos >= len(s.buf) {
		if err := s.fillBuffer(); err != nil {
			return 0, err
		}
	}
	sym := s.buf[s.pos]
	s.pos++
	return sym, nil
}

// fillBuffer loops reading from the DTB until the buffer is non-empty or a
// terminal condition is raised (spec §4.3).
func (s *DtbSource) fillBuffer() error {
	if s.closed {
		return ErrNoDtbAccess
	}

	s.buf = s.buf[:cap(s.buf)]
	for {
		n, _, state, err := s.handle.DaqRead(s.buf, s.channel)
		if err != nil {
			return errors.Wrap(err, "source: DaqRead")
		}
		if n > 0 {
			s.buf = s.buf[:n]
			s.pos = 0
			return nil
		}
		if state&(dtb.FifoOverflow|dtb.MemOverflow) != 0 {
			return ErrBufferOverflow
		}
		if !s.endless {
			return ErrEmpty
		}
	}
}

// Close releases the DAQ channel. It is idempotent: calling Close again
// after a previous Close, or after an error, is a no-op (spec §5).
func (s *DtbSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.handle.DaqClose(s.channel)
	return nil
}
