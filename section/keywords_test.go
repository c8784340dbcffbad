package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flowframe/endian"
	"github.com/arloliu/flowframe/errs"
)

func TestKeywords_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("typical keywords", func(t *testing.T) {
		keywords := map[string]string{
			"$CYT":  "Attune NxT",
			"$TOT":  "250000",
			"$DATE": "2024-03-18",
			"empty": "",
		}

		parsed, err := ParseKeywords(EncodeKeywords(keywords, engine), engine)
		require.NoError(t, err)
		require.Equal(t, keywords, parsed)
	})

	t.Run("empty map", func(t *testing.T) {
		parsed, err := ParseKeywords(EncodeKeywords(nil, engine), engine)
		require.NoError(t, err)
		require.Empty(t, parsed)
	})

	t.Run("deterministic encoding", func(t *testing.T) {
		keywords := map[string]string{"b": "2", "a": "1", "c": "3"}
		require.Equal(t,
			EncodeKeywords(keywords, engine),
			EncodeKeywords(keywords, engine))
	})

	t.Run("big endian count", func(t *testing.T) {
		be := endian.GetBigEndianEngine()
		keywords := map[string]string{"$SRC": "donor01"}

		parsed, err := ParseKeywords(EncodeKeywords(keywords, be), be)
		require.NoError(t, err)
		require.Equal(t, keywords, parsed)
	})
}

func TestKeywords_Malformed(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	t.Run("shorter than count", func(t *testing.T) {
		_, err := ParseKeywords([]byte{1, 2}, engine)
		require.ErrorIs(t, err, errs.ErrInvalidKeywordsPayload)
	})

	t.Run("truncated string", func(t *testing.T) {
		data := EncodeKeywords(map[string]string{"$CYT": "Attune"}, engine)
		_, err := ParseKeywords(data[:len(data)-3], engine)
		require.ErrorIs(t, err, errs.ErrInvalidKeywordsPayload)
	})

	t.Run("missing length prefix", func(t *testing.T) {
		// A count of one pair with no string data at all.
		data := engine.AppendUint32(nil, 1)
		_, err := ParseKeywords(data, engine)
		require.ErrorIs(t, err, errs.ErrInvalidKeywordsPayload)
	})
}
