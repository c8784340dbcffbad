package section

import (
	"github.com/arloliu/flowframe/endian"
	"github.com/arloliu/flowframe/errs"
	"github.com/arloliu/flowframe/format"
)

// FrameFlag is the packed flag field at the start of the frame header.
type FrameFlag struct {
	// Options is a packed field for format options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved and must be 0.
	// Bits 4-15 are the magic number identifying the frame container format:
	//   - 0xFC10 (0b1111_1100_0001_0000): frame container format v1
	Options uint16

	// CompressionType is an enum indicating the compression applied to the
	// data payload section.
	CompressionType uint8

	// Reserved must be 0.
	Reserved uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFrameFlag creates a FrameFlag with default settings: little-endian
// byte order and Zstd data compression.
func NewFrameFlag() FrameFlag {
	flag := FrameFlag{
		Options:         MagicFrameV1Opt,
		CompressionType: uint8(format.CompressionZstd),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the payload sections are little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload sections are big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number identifies the frame format.
func (f FrameFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1Opt
}

// Compression returns the data payload compression type.
func (f FrameFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the data payload compression type.
func (f *FrameFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks if the flag contains valid values.
func (f FrameFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options&ReservedBitsMask) != 0 || f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the endian engine declared by the flag.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
