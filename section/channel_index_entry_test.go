package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowframe/endian"
	"github.com/arloliu/flowframe/errs"
)

func TestChannelIndexEntry_RoundTrip(t *testing.T) {
	entry := ChannelIndexEntry{
		ChannelID:    0x1122334455667788,
		RangeMin:     -111.5,
		RangeMax:     262144,
		NameLength:   5,
		MarkerLength: 3,
	}

	engines := map[string]endian.EndianEngine{
		"little endian": endian.GetLittleEndianEngine(),
		"big endian":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			data := entry.Bytes(engine)
			require.Len(t, data, ChannelIndexEntrySize)

			var parsed ChannelIndexEntry
			require.NoError(t, parsed.Parse(data, engine))
			require.Equal(t, entry, parsed)
		})
	}
}

func TestChannelIndexEntry_Parse(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("wrong size", func(t *testing.T) {
		var e ChannelIndexEntry
		err := e.Parse(make([]byte, ChannelIndexEntrySize-1), engine)
		require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
	})

	t.Run("non-zero reserved field", func(t *testing.T) {
		entry := ChannelIndexEntry{ChannelID: 1, Reserved: 9}
		var parsed ChannelIndexEntry
		err := parsed.Parse(entry.Bytes(engine), engine)
		require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
	})
}
