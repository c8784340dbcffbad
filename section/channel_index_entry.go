package section

import (
	"math"

	"github.com/arloliu/flowframe/endian"
	"github.com/arloliu/flowframe/errs"
)

// ChannelIndexEntry records information about a single channel (column) in
// the channel index section. It is a fixed size of 32 bytes.
//
// The channel name and optional marker label strings are stored in the name
// payload section, concatenated in entry order; NameLength and MarkerLength
// let the decoder slice them back out without per-string offsets.
type ChannelIndexEntry struct {
	// ChannelID is the xxHash64 hash of the channel name string.
	//
	// Offset: 0, Size: 8 bytes
	ChannelID uint64

	// RangeMin is the lower bound of the channel's instrument range.
	//
	// Offset: 8, Size: 8 bytes
	RangeMin float64

	// RangeMax is the upper bound of the channel's instrument range.
	//
	// Offset: 16, Size: 8 bytes
	RangeMax float64

	// NameLength is the byte length of the channel name in the name payload.
	//
	// Offset: 24, Size: 2 bytes
	NameLength uint16

	// MarkerLength is the byte length of the marker label in the name payload.
	// Zero when the channel has no marker.
	//
	// Offset: 26, Size: 2 bytes
	MarkerLength uint16

	// Reserved must be 0.
	//
	// Offset: 28, Size: 4 bytes
	Reserved uint32
}

// Bytes returns the index entry as a byte slice using the specified endian
// engine.
func (e *ChannelIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [ChannelIndexEntrySize]byte // stack allocation
	engine.PutUint64(b[0:8], e.ChannelID)
	engine.PutUint64(b[8:16], math.Float64bits(e.RangeMin))
	engine.PutUint64(b[16:24], math.Float64bits(e.RangeMax))
	engine.PutUint16(b[24:26], e.NameLength)
	engine.PutUint16(b[26:28], e.MarkerLength)
	engine.PutUint32(b[28:32], e.Reserved)

	return b[:]
}

// Parse parses the index entry from a byte slice of exactly
// ChannelIndexEntrySize bytes.
//
// Returns ErrInvalidIndexEntry if data has the wrong size or the reserved
// field is non-zero.
func (e *ChannelIndexEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != ChannelIndexEntrySize {
		return errs.ErrInvalidIndexEntry
	}

	e.ChannelID = engine.Uint64(data[0:8])
	e.RangeMin = math.Float64frombits(engine.Uint64(data[8:16]))
	e.RangeMax = math.Float64frombits(engine.Uint64(data[16:24]))
	e.NameLength = engine.Uint16(data[24:26])
	e.MarkerLength = engine.Uint16(data[26:28])
	e.Reserved = engine.Uint32(data[28:32])

	if e.Reserved != 0 {
		return errs.ErrInvalidIndexEntry
	}

	return nil
}
