// Package event decodes framed Records into a typed hierarchy of Events,
// RocEvents, and Pixels. Three decoders translate the three wire dialects
// described in spec §4: RocDigDecoder, RocAnaDecoder, and ModDigDecoder.
package event

// Pixel error bits (spec §3 Invariants, §4.2): each base-6 digit that
// decodes to a value ≥ 6 sets its own bit; out-of-range addresses set bits
// 5 and 6; bit 7 flags a reserved/bad marker seen in the digital wire word.
const (
	ErrR0       uint16 = 1 << 0
	ErrR1       uint16 = 1 << 1
	ErrR2       uint16 = 1 << 2
	ErrC0       uint16 = 1 << 3
	ErrC1       uint16 = 1 << 4
	ErrRowRange uint16 = 1 << 5
	ErrColRange uint16 = 1 << 6
	ErrPHFlag   uint16 = 1 << 7
)

// Pixel is one decoded hit: an address, a pulse height, and a diagnostic
// error mask. It is immutable once returned from a decoder.
type Pixel struct {
	Raw   uint32
	X, Y  int16
	PH    int16
	Error uint16
}

// RocEvent is the decoded content belonging to a single ROC: its header
// word, an error mask, and its ordered pixel hits.
type RocEvent struct {
	Header int32
	Error  uint16
	Pixels []Pixel
}

// DeviceType identifies which decoder produced an Event.
type DeviceType uint8

// Device types (spec §3).
const (
	ROCA DeviceType = iota // analog ROC
	ROCD                   // digital ROC
	MODD                   // digital TBM module
)

func (d DeviceType) String() string {
	switch d {
	case ROCA:
		return "ROCA"
	case ROCD:
		return "ROCD"
	case MODD:
		return "MODD"
	default:
		return "unknown"
	}
}

// Event is a decoded Record, expressed as typed ROC/pixel content. Like
// Record, it is a scratch buffer: the decoder that produces it reuses the
// backing storage on every call to Decode. Callers that must retain an
// Event past the next Decode call should copy it.
type Event struct {
	RecordNr uint32
	Device   DeviceType
	Header   uint32
	Trailer  uint32
	Error    uint16
	Rocs     []RocEvent
}
