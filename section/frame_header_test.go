package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowframe/errs"
	"github.com/arloliu/flowframe/format"
)

func testHeader() *FrameHeader {
	h := NewFrameHeader()
	h.EventCount = 10000
	h.ChannelCount = 12
	h.NamesOffset = HeaderSize + 12*ChannelIndexEntrySize
	h.KeywordsOffset = h.NamesOffset + 96
	h.DataOffset = h.KeywordsOffset + 256
	h.DataLength = 480000
	h.DataChecksum = 0xDEADBEEFCAFEF00D

	return h
}

func TestFrameHeader_RoundTrip(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		h := testHeader()

		parsed, err := ParseFrameHeader(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, *h, parsed)
	})

	t.Run("big endian", func(t *testing.T) {
		h := testHeader()
		h.Flag.WithBigEndian()

		parsed, err := ParseFrameHeader(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, *h, parsed)
		require.True(t, parsed.Flag.IsBigEndian())
	})

	t.Run("non-default compression", func(t *testing.T) {
		h := testHeader()
		h.Flag.SetCompression(format.CompressionLZ4)

		parsed, err := ParseFrameHeader(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, format.CompressionLZ4, parsed.Flag.Compression())
	})
}

func TestFrameHeader_Parse(t *testing.T) {
	t.Run("short input", func(t *testing.T) {
		_, err := ParseFrameHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("exact size required by Parse", func(t *testing.T) {
		h := FrameHeader{}
		err := h.Parse(make([]byte, HeaderSize+1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("zeroed input has no magic", func(t *testing.T) {
		_, err := ParseFrameHeader(make([]byte, HeaderSize))
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("trailing bytes ignored by ParseFrameHeader", func(t *testing.T) {
		h := testHeader()
		data := append(h.Bytes(), 1, 2, 3)

		parsed, err := ParseFrameHeader(data)
		require.NoError(t, err)
		require.Equal(t, *h, parsed)
	})
}

func TestFrameFlag_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		flag := NewFrameFlag()
		require.NoError(t, flag.Validate())
		require.True(t, flag.IsLittleEndian())
		require.Equal(t, format.CompressionZstd, flag.Compression())
		require.True(t, flag.IsValidMagicNumber())
	})

	t.Run("reserved options bits", func(t *testing.T) {
		flag := NewFrameFlag()
		flag.Options |= 0x0004
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("reserved byte", func(t *testing.T) {
		flag := NewFrameFlag()
		flag.Reserved = 7
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("invalid compression", func(t *testing.T) {
		flag := NewFrameFlag()
		flag.CompressionType = 0x0F
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("endianness toggle", func(t *testing.T) {
		flag := NewFrameFlag()
		flag.WithBigEndian()
		require.True(t, flag.IsBigEndian())
		require.NoError(t, flag.Validate())

		flag.WithLittleEndian()
		require.True(t, flag.IsLittleEndian())
	})
}
