package section

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/arloliu/flowframe/endian"
	"github.com/arloliu/flowframe/errs"
)

// EncodeKeywords serializes header keywords into the keyword payload section.
//
// Layout: pair count as uint32 in the engine's byte order, followed by each
// key and value as a uvarint length prefix plus raw bytes. Pairs are written
// in sorted key order so the encoding is deterministic.
func EncodeKeywords(keywords map[string]string, engine endian.EndianEngine) []byte {
	keys := make([]string, 0, len(keywords))
	for k := range keywords {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := engine.AppendUint32(nil, uint32(len(keys)))
	for _, k := range keys {
		buf = binary.AppendUvarint(buf, uint64(len(k)))
		buf = append(buf, k...)
		v := keywords[k]
		buf = binary.AppendUvarint(buf, uint64(len(v)))
		buf = append(buf, v...)
	}

	return buf
}

// ParseKeywords decodes the keyword payload section.
//
// Returns ErrInvalidKeywordsPayload if the payload is truncated or a length
// prefix is malformed.
func ParseKeywords(data []byte, engine endian.EndianEngine) (map[string]string, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: payload shorter than pair count", errs.ErrInvalidKeywordsPayload)
	}

	count := engine.Uint32(data[0:4])
	rest := data[4:]

	keywords := make(map[string]string, count)
	for i := uint32(0); i < count; i++ {
		var key, val string
		var err error

		key, rest, err = readVarString(rest)
		if err != nil {
			return nil, err
		}

		val, rest, err = readVarString(rest)
		if err != nil {
			return nil, err
		}

		keywords[key] = val
	}

	return keywords, nil
}

// readVarString reads a uvarint length-prefixed string from data and returns
// the string together with the remaining bytes.
func readVarString(data []byte) (string, []byte, error) {
	strLen, n := binary.Uvarint(data)
	if n <= 0 {
		return "", nil, fmt.Errorf("%w: malformed string length", errs.ErrInvalidKeywordsPayload)
	}

	data = data[n:]
	if uint64(len(data)) < strLen {
		return "", nil, fmt.Errorf("%w: truncated string payload", errs.ErrInvalidKeywordsPayload)
	}

	return string(data[:strLen]), data[strLen:], nil
}
