package compress

// ZstdCompressor provides Zstandard compression for frame payloads.
//
// Zstd gives the best compression ratio of the built-in codecs and is the
// default for persisted frames. Two implementations exist: a cgo-backed one
// (valyala/gozstd) selected when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
