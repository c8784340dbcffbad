package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/flowframe/compress"
	"github.com/arloliu/flowframe/errs"
	"github.com/arloliu/flowframe/internal/hash"
	"github.com/arloliu/flowframe/section"
)

// Decode parses a persisted frame container and returns a frame backed by a
// fresh store. The decoded frame never aliases the input bytes or any live
// frame.
//
// The decoder validates the header magic and flags, every channel index
// entry (including its xxHash64 name binding), the section bounds, and the
// data payload checksum. All failures map to the errs format sentinels.
func Decode(data []byte) (*Frame, error) {
	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return nil, err
	}

	engine := header.Flag.GetEndianEngine()

	rows := int(header.EventCount)
	numChans := int(header.ChannelCount)

	indexEnd := int(header.IndexOffset) + numChans*section.ChannelIndexEntrySize
	if int(header.IndexOffset) != section.HeaderSize ||
		indexEnd > len(data) ||
		int(header.NamesOffset) != indexEnd ||
		int(header.KeywordsOffset) < int(header.NamesOffset) ||
		int(header.DataOffset) < int(header.KeywordsOffset) ||
		int(header.DataOffset)+int(header.DataLength) > len(data) {
		return nil, fmt.Errorf("%w: section offsets out of bounds", errs.ErrInvalidPayload)
	}

	entries := make([]section.ChannelIndexEntry, numChans)
	for i := range entries {
		start := int(header.IndexOffset) + i*section.ChannelIndexEntrySize
		if err := entries[i].Parse(data[start:start+section.ChannelIndexEntrySize], engine); err != nil {
			return nil, err
		}
	}

	chans, err := parseChannelNames(entries, data[header.NamesOffset:header.KeywordsOffset])
	if err != nil {
		return nil, err
	}

	keywords, err := section.ParseKeywords(data[header.KeywordsOffset:header.DataOffset], engine)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidHeaderFlags, err)
	}

	payload, err := codec.Decompress(data[header.DataOffset : int(header.DataOffset)+int(header.DataLength)])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPayload, err)
	}

	if len(payload) != rows*numChans*8 {
		return nil, fmt.Errorf("%w: data payload is %d bytes, want %d",
			errs.ErrInvalidPayload, len(payload), rows*numChans*8)
	}

	if hash.Sum64(payload) != header.DataChecksum {
		return nil, errs.ErrChecksumMismatch
	}

	cols := make([][]float64, numChans)
	for c := range cols {
		col := make([]float64, rows)
		base := c * rows * 8
		for r := range col {
			col[r] = math.Float64frombits(engine.Uint64(payload[base+r*8 : base+r*8+8]))
		}
		cols[c] = col
	}

	return fullView(&store{
		rows:     rows,
		cols:     cols,
		chans:    chans,
		keywords: keywords,
	}), nil
}

// parseChannelNames slices the concatenated name payload back into channel
// descriptors using the per-entry name and marker lengths, and verifies each
// entry's channel ID against the hash of its name.
func parseChannelNames(entries []section.ChannelIndexEntry, names []byte) ([]Channel, error) {
	chans := make([]Channel, len(entries))
	seen := make(map[string]struct{}, len(entries))
	pos := 0

	for i, e := range entries {
		end := pos + int(e.NameLength) + int(e.MarkerLength)
		if end > len(names) {
			return nil, fmt.Errorf("%w: channel name payload truncated", errs.ErrInvalidPayload)
		}

		name := string(names[pos : pos+int(e.NameLength)])
		marker := string(names[pos+int(e.NameLength) : end])
		pos = end

		if name == "" || hash.ID(name) != e.ChannelID {
			return nil, fmt.Errorf("%w: channel ID does not match name %q", errs.ErrInvalidIndexEntry, name)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChannel, name)
		}
		seen[name] = struct{}{}

		chans[i] = Channel{
			Name:     name,
			Marker:   marker,
			RangeMin: e.RangeMin,
			RangeMax: e.RangeMax,
		}
	}

	if pos != len(names) {
		return nil, fmt.Errorf("%w: %d trailing bytes in channel name payload",
			errs.ErrInvalidPayload, len(names)-pos)
	}

	return chans, nil
}
