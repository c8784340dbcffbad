// Package section defines the binary sections of the frame container format.
//
// A persisted frame is laid out as:
//
//	+----------------+ offset 0
//	| FrameHeader    | 40 bytes, fixed
//	+----------------+ IndexOffset (= 40)
//	| channel index  | ChannelCount × 32-byte ChannelIndexEntry
//	+----------------+ NamesOffset
//	| name payload   | concatenated channel name + marker strings
//	+----------------+ KeywordsOffset
//	| keyword payload| length-prefixed key/value pairs
//	+----------------+ DataOffset
//	| data payload   | column-major float64 matrix, optionally compressed
//	+----------------+ DataOffset + DataLength
//
// The header records the byte order, compression codec, section offsets and
// an xxHash64 checksum of the uncompressed data payload. All multi-byte
// fields except the flag options use the byte order declared by the flag;
// the flag options field itself is always little-endian so the decoder can
// bootstrap.
package section
