// Package errs defines the sentinel errors shared across flowframe packages.
//
// All errors are surfaced synchronously at the call that detects the
// violation and are never retried internally. Callers match them with
// errors.Is; detail is attached at the call site via fmt.Errorf("%w: ...").
package errs

import "errors"

// Frame container format errors, returned while decoding a persisted frame.
var (
	// ErrInvalidHeaderSize indicates the input is too short to contain a frame header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates the header magic number does not match the frame format.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates the header flag field contains invalid or reserved bits.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidIndexEntry indicates a channel index entry is truncated or inconsistent.
	ErrInvalidIndexEntry = errors.New("invalid channel index entry")

	// ErrInvalidPayload indicates a payload section is truncated or has an unexpected length.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidKeywordsPayload indicates the keyword section cannot be parsed.
	ErrInvalidKeywordsPayload = errors.New("invalid keywords payload")

	// ErrChecksumMismatch indicates the data payload checksum does not match the header.
	ErrChecksumMismatch = errors.New("data checksum mismatch")

	// ErrDuplicateChannel indicates two channels in the same frame share a name.
	ErrDuplicateChannel = errors.New("duplicate channel name")
)

// Frame view and mutation errors.
var (
	// ErrIndexOutOfRange indicates a row or column selector does not resolve
	// to valid indices in the current view.
	ErrIndexOutOfRange = errors.New("selector index out of range")

	// ErrUnknownChannel indicates a channel name is not present in the current view.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrAmbiguousMarker indicates a marker label matches more than one channel
	// in the current view.
	ErrAmbiguousMarker = errors.New("ambiguous marker label")

	// ErrMarkerNotFound indicates no channel in the current view carries the
	// requested marker label.
	ErrMarkerNotFound = errors.New("marker label not found")

	// ErrValueLengthMismatch indicates written values do not match the shape
	// of the current view.
	ErrValueLengthMismatch = errors.New("value length mismatch")
)

// FrameSet errors.
var (
	// ErrDuplicateSample indicates a sample name is already present in the set.
	ErrDuplicateSample = errors.New("duplicate sample name")

	// ErrUnknownSample indicates a sample name is not present in the set.
	ErrUnknownSample = errors.New("unknown sample")

	// ErrPhenoMismatch indicates the phenotype table row labels do not exactly
	// match the sample names of the set.
	ErrPhenoMismatch = errors.New("phenotype row labels do not match sample names")
)
