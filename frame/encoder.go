package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/flowframe/compress"
	"github.com/arloliu/flowframe/format"
	"github.com/arloliu/flowframe/internal/hash"
	"github.com/arloliu/flowframe/internal/options"
	"github.com/arloliu/flowframe/internal/pool"
	"github.com/arloliu/flowframe/section"
)

// maxNameLength is the longest channel name or marker label that fits the
// uint16 length fields of a channel index entry.
const maxNameLength = math.MaxUint16

// encoderConfig holds the frame encoder configuration assembled from
// functional options.
type encoderConfig struct {
	header *section.FrameHeader
}

// EncoderOption represents a functional option for configuring Encode.
type EncoderOption = options.Option[*encoderConfig]

// WithLittleEndian sets little-endian byte order for the encoded container.
// It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian byte order for the encoded container.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.header.Flag.WithBigEndian()
	})
}

// WithCompression sets the data payload compression codec.
// The default is Zstd.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.header.Flag.SetCompression(comp)
			return nil
		default:
			return fmt.Errorf("invalid data compression: %v", comp)
		}
	})
}

// Encode serializes the values, channel descriptors and keywords visible
// through f's current view into the frame container format. Encoding a view
// therefore behaves like persisting its deep copy; decoding the result yields
// an independent frame.
func Encode(f *Frame, opts ...EncoderOption) ([]byte, error) {
	cfg := &encoderConfig{header: section.NewFrameHeader()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header := cfg.header
	engine := header.Flag.GetEndianEngine()

	chans := f.Channels()

	// Channel index entries and the concatenated name payload.
	entries := make([]section.ChannelIndexEntry, len(chans))
	var names []byte
	for i, ch := range chans {
		if len(ch.Name) > maxNameLength || len(ch.Marker) > maxNameLength {
			return nil, fmt.Errorf("channel %q: name or marker exceeds %d bytes", ch.Name, maxNameLength)
		}
		entries[i] = section.ChannelIndexEntry{
			ChannelID:    hash.ID(ch.Name),
			RangeMin:     ch.RangeMin,
			RangeMax:     ch.RangeMax,
			NameLength:   uint16(len(ch.Name)),
			MarkerLength: uint16(len(ch.Marker)),
		}
		names = append(names, ch.Name...)
		names = append(names, ch.Marker...)
	}

	keywords := section.EncodeKeywords(f.store.keywords, engine)

	// Assemble the uncompressed data payload in a pooled scratch buffer;
	// the compressed result is appended into the output, so the buffer never
	// escapes.
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	for _, ci := range f.colIdx {
		col := f.store.cols[ci]
		for _, ri := range f.rowIdx {
			buf.B = engine.AppendUint64(buf.B, math.Float64bits(col[ri]))
		}
	}

	header.DataChecksum = hash.Sum64(buf.Bytes())

	codec, err := compress.CreateCodec(header.Flag.Compression(), "data")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress data payload: %w", err)
	}

	header.EventCount = uint32(len(f.rowIdx))
	header.ChannelCount = uint32(len(f.colIdx))
	header.IndexOffset = section.IndexOffsetOffset
	header.NamesOffset = header.IndexOffset + uint32(len(entries)*section.ChannelIndexEntrySize)
	header.KeywordsOffset = header.NamesOffset + uint32(len(names))
	header.DataOffset = header.KeywordsOffset + uint32(len(keywords))
	header.DataLength = uint32(len(payload))

	out := make([]byte, 0, int(header.DataOffset)+len(payload))
	out = append(out, header.Bytes()...)
	for i := range entries {
		out = append(out, entries[i].Bytes(engine)...)
	}
	out = append(out, names...)
	out = append(out, keywords...)
	out = append(out, payload...)

	return out, nil
}
