// Package source implements the raw uint16 sample producers that feed a
// record scanner (record.RocScanner or record.ModuleScanner): a live
// DtbSource backed by the DTB's sample FIFO, and a
// FileSource that replays a raw capture from disk.
package source

import "github.com/pkg/errors"

// Sentinel terminal conditions a Source may raise from FillBuffer (spec §7).
var (
	// ErrNoDtbAccess means the source's DTB handle is closed.
	ErrNoDtbAccess = errors.New("source: no DTB access")
	// ErrEmpty means the device returned no data and the source is not
	// configured to run endless.
	ErrEmpty = errors.New("source: empty")
	// ErrBufferOverflow means the hardware FIFO or memory overran before
	// the buffer could be refilled.
	ErrBufferOverflow = errors.New("source: buffer overflow")
)

// BLOCK_SIZE-equivalent: the number of samples requested per FillBuffer
// call. Chosen to trade latency against syscall/IPC overhead, per spec
// §4.3.
const blockSize = 4096

// Source is the pull interface driven by a record.Scanner.
type Source interface {
	// Get returns the next raw sample, refilling from the underlying
	// device or file as needed. It returns one of the sentinel errors
	// above, or io.EOF for FileSource, when the stream ends.
	Get() (uint16, error)
	// Close releases any resources held by the source. It is idempotent.
	Close() error
}
