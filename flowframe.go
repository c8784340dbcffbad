// Package flowframe provides aliased data handles for flow-cytometry event
// data: Frame, a tabular event matrix (rows = events, columns = channels)
// with per-channel metadata, and FrameSet, an ordered sample collection.
//
// Frames follow view semantics: subsetting shares the underlying store, and
// mutations through one view are observable through every other view of the
// same store until an explicit DeepCopy. See the frame package documentation
// for the full aliasing model.
//
// # Basic Usage
//
// Decoding a persisted frame and working with views:
//
//	import "github.com/arloliu/flowframe"
//
//	f, err := flowframe.Decode(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// A view of the first 1000 events; no data is copied.
//	v, _ := f.SubsetRows(rangeIdx(0, 1000))
//
//	// Sanctioned mutation: rewrites values and keeps ranges consistent.
//	_ = v.ApplyTransform([]string{"FL1-A"}, transform.Arcsinh(150))
//
// Collecting samples into a set:
//
//	set := flowframe.NewFrameSet()
//	_ = set.AddFrame("donor01", f)
//
// This package is a thin facade over the frame package; use frame directly
// for fine-grained control.
package flowframe

import (
	"github.com/arloliu/flowframe/frame"
	"github.com/arloliu/flowframe/internal/hash"
)

// Decode parses a persisted frame container into a fresh, independent frame.
// See frame.Decode.
func Decode(data []byte) (*frame.Frame, error) {
	return frame.Decode(data)
}

// Encode serializes the frame's current view into the frame container
// format. See frame.Encode for the available options.
func Encode(f *frame.Frame, opts ...frame.EncoderOption) ([]byte, error) {
	return frame.Encode(f, opts...)
}

// NewFrame creates a frame from channel descriptors and column-major event
// data. See frame.New.
func NewFrame(channels []frame.Channel, columns [][]float64, keywords map[string]string) (*frame.Frame, error) {
	return frame.New(channels, columns, keywords)
}

// NewFrameSet creates an empty, ordered sample collection.
func NewFrameSet() *frame.FrameSet {
	return frame.NewFrameSet()
}

// ChannelID converts a channel name to its 64-bit xxHash64 identifier, as
// stored in the channel index section of the container format.
func ChannelID(name string) uint64 {
	return hash.ID(name)
}
