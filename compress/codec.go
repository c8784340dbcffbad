// Package compress provides the payload codecs used by the frame container
// format.
//
// A frame's event data payload is a raw column-major float64 matrix, which
// compresses well with general-purpose codecs: Zstd for the best ratio, S2 and
// LZ4 for speed, and a no-op codec when the payload should be stored as-is.
package compress

import (
	"fmt"

	"github.com/arloliu/flowframe/format"
)

// Compressor compresses a complete payload section.
//
// The returned slice is newly allocated and owned by the caller (except for
// the no-op codec, which passes the input through). The input slice is never
// modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload section compressed by the matching
// Compressor. It validates the compressed format and returns an error on
// corrupted or incompatible input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
// The target string names the payload being processed and is only used in
// error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
