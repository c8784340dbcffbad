package section

import (
	"github.com/arloliu/flowframe/errs"
)

// FrameHeader is the fixed-size header section at the start of a persisted
// frame. Section offsets are absolute byte offsets from the start of the
// container.
type FrameHeader struct {
	// Flag is the packed options/magic/compression field. byte offset 0-3
	Flag FrameFlag
	// EventCount is the number of rows (events) in the data payload. byte offset 4-7
	EventCount uint32
	// ChannelCount is the number of columns (channels). byte offset 8-11
	ChannelCount uint32
	// IndexOffset is the byte offset of the channel index section. byte offset 12-15
	IndexOffset uint32
	// NamesOffset is the byte offset of the channel name payload. byte offset 16-19
	NamesOffset uint32
	// KeywordsOffset is the byte offset of the keyword payload. byte offset 20-23
	KeywordsOffset uint32
	// DataOffset is the byte offset of the (possibly compressed) data payload. byte offset 24-27
	DataOffset uint32
	// DataLength is the stored byte length of the data payload. byte offset 28-31
	DataLength uint32
	// DataChecksum is the xxHash64 of the uncompressed data payload. byte offset 32-39
	DataChecksum uint64
}

// NewFrameHeader creates a FrameHeader with default flags. Counts and
// offsets are filled in by the encoder when it finishes.
func NewFrameHeader() *FrameHeader {
	return &FrameHeader{
		Flag:        NewFrameFlag(),
		IndexOffset: IndexOffsetOffset,
	}
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
//
// Returns ErrInvalidHeaderSize if data is not HeaderSize bytes, or flag
// validation errors.
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The options field is always little-endian so the decoder can determine
	// the byte order of everything else.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]
	h.Flag.Reserved = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.EventCount = engine.Uint32(data[4:8])
	h.ChannelCount = engine.Uint32(data[8:12])
	h.IndexOffset = engine.Uint32(data[12:16])
	h.NamesOffset = engine.Uint32(data[16:20])
	h.KeywordsOffset = engine.Uint32(data[20:24])
	h.DataOffset = engine.Uint32(data[24:28])
	h.DataLength = engine.Uint32(data[28:32])
	h.DataChecksum = engine.Uint64(data[32:40])

	return nil
}

// Bytes serializes the FrameHeader into a byte slice.
func (h *FrameHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = h.Flag.Reserved
	engine.PutUint32(b[4:8], h.EventCount)
	engine.PutUint32(b[8:12], h.ChannelCount)
	engine.PutUint32(b[12:16], h.IndexOffset)
	engine.PutUint32(b[16:20], h.NamesOffset)
	engine.PutUint32(b[20:24], h.KeywordsOffset)
	engine.PutUint32(b[24:28], h.DataOffset)
	engine.PutUint32(b[28:32], h.DataLength)
	engine.PutUint64(b[32:40], h.DataChecksum)

	return b
}

// ParseFrameHeader parses a FrameHeader from the start of a byte slice.
//
// Returns ErrInvalidHeaderSize if data holds fewer than HeaderSize bytes,
// or flag validation errors.
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < HeaderSize {
		return FrameHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FrameHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}
