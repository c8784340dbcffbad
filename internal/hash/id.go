package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
// Used for fixed-size channel identifiers in the frame index section.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum64 computes the xxHash64 of the given bytes.
// Used for the data payload integrity checksum in the frame header.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
