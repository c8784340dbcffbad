package section

const (
	// Bit masks for the flag options field.
	EndiannessMask   = 0x0001 // endianness bit (bit 0): 0=little, 1=big
	ReservedBitsMask = 0x000E // reserved bits (bits 1-3), must be 0
	MagicNumberMask  = 0xFFF0 // magic number (bits 4-15)

	// MagicFrameV1Opt is the version 1 magic number of the frame container format.
	MagicFrameV1Opt = 0xFC10
)

// Section sizes and offsets in the frame container.
const (
	HeaderSize            = 40         // fixed header size in bytes
	ChannelIndexEntrySize = 32         // fixed channel index entry size in bytes
	IndexOffsetOffset     = HeaderSize // byte offset where the channel index section starts
)
