// Package dtb models the Digital Test Board as an opaque capability the
// decoding pipeline drives but never implements (spec §1, §6): raw FIFO
// reads, ADC configuration, and deserializer selection. A real binding
// talks to the board over USB/serial; this package only describes the
// surface DtbSource needs.
package dtb

// State reports the DAQ channel status flags returned alongside a Read.
type State uint32

// DAQ state bits (spec §6).
const (
	FifoOverflow State = 1 << iota
	MemOverflow
)

// Handle is the capability surface a Source opens a DAQ channel against.
// Channel numbers range 0..8; a single Handle is shared across channels and
// access is serialized by the caller (spec §5 Sharing).
type Handle interface {
	// DaqOpen reserves fifoBytes of FIFO for channel and reports success.
	DaqOpen(fifoBytes int, channel int) bool
	// DaqClose releases channel. Safe to call on an already-closed channel.
	DaqClose(channel int)
	// DaqStart begins acquisition on channel.
	DaqStart(channel int)
	// DaqStop halts acquisition on channel.
	DaqStop(channel int)
	// DaqRead fills buf with up to len(buf) words, reporting how many
	// remain queued on the device and the channel's current State.
	DaqRead(buf []uint16, channel int) (n int, remaining int, state State, err error)

	// SelectADC configures the channel for analog ROC acquisition: an ADC
	// sample-clock timeout in device ticks (1..65535) and tin/tout delays
	// (0..63).
	SelectADC(channel int, timeoutTicks uint16, tin, tout uint8) error
	// SelectDeser160 configures the channel for the 160 Mbit/s digital ROC
	// deserializer, with a phase adjust in 0..7.
	SelectDeser160(channel int, phase uint8) error
	// SelectDeser400 configures the channel for the 400 Mbit/s digital
	// module (TBM) deserializer.
	SelectDeser400(channel int) error
	// SelectDatagenerator configures the channel to read from the board's
	// on-board pattern generator instead of ROC/TBM hardware.
	SelectDatagenerator(channel int) error

	// SignalProbeADC routes the analog probe to channel with the given
	// gain, for oscilloscope-style debugging of the ADC input.
	SignalProbeADC(channel int, gain int) error
	// UDelay busy-waits for approximately us microseconds.
	UDelay(us int)
	// MDelay busy-waits for approximately ms milliseconds.
	MDelay(ms int)
}
