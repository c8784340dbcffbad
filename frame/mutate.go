package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/flowframe/errs"
)

// WriteColumn overwrites the values visible through this view for the named
// channel. The write goes to the shared backing store in place, so it is
// observable through every view sharing the store.
//
// WriteColumn deliberately does NOT update the channel's recorded instrument
// range: it is the raw, "unsafe" overwrite. Use ApplyTransform when the
// range metadata must stay consistent with the data.
//
// Returns ErrUnknownChannel if the channel is not in the current view and
// ErrValueLengthMismatch if len(values) != NumEvents().
func (f *Frame) WriteColumn(name string, values []float64) error {
	ci, ok := f.physicalColumn(name)
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownChannel, name)
	}

	if len(values) != len(f.rowIdx) {
		return fmt.Errorf("%w: %d values for %d events",
			errs.ErrValueLengthMismatch, len(values), len(f.rowIdx))
	}

	dst := f.store.cols[ci]
	for i, ri := range f.rowIdx {
		dst[ri] = values[i]
	}

	return nil
}

// WriteValues overwrites multiple channels at once; columns[i] holds the new
// values of channels[i]. Same aliasing and metadata-staleness rules as
// WriteColumn. The operation validates all selectors and shapes before
// writing, so it either fully applies or leaves the frame unchanged.
func (f *Frame) WriteValues(channels []string, columns [][]float64) error {
	if len(columns) != len(channels) {
		return fmt.Errorf("%w: %d columns for %d channels",
			errs.ErrValueLengthMismatch, len(columns), len(channels))
	}

	cis := make([]int, len(channels))
	for i, name := range channels {
		ci, ok := f.physicalColumn(name)
		if !ok {
			return fmt.Errorf("%w: %q", errs.ErrUnknownChannel, name)
		}
		if len(columns[i]) != len(f.rowIdx) {
			return fmt.Errorf("%w: column %q has %d values for %d events",
				errs.ErrValueLengthMismatch, name, len(columns[i]), len(f.rowIdx))
		}
		cis[i] = ci
	}

	for i, ci := range cis {
		dst := f.store.cols[ci]
		for j, ri := range f.rowIdx {
			dst[ri] = columns[i][j]
		}
	}

	return nil
}

// ApplyTransform applies fn element-wise to the selected channels, writing
// the results to the shared backing store in place, and recomputes the
// instrument range of each affected channel from the newly written values.
// This is the sanctioned mutation: it keeps range metadata consistent.
//
// A nil channels slice selects all channels visible through the view.
//
// Non-finite results (NaN, ±Inf) are written to the store as produced but
// ignored when recomputing the range; if a channel ends up with no finite
// value visible through the view, its previous range is kept.
//
// Returns ErrUnknownChannel if a named channel is not in the current view.
func (f *Frame) ApplyTransform(channels []string, fn func(float64) float64) error {
	cis, err := f.resolveChannels(channels)
	if err != nil {
		return err
	}

	for _, ci := range cis {
		col := f.store.cols[ci]

		minVal := math.Inf(1)
		maxVal := math.Inf(-1)
		finite := false
		for _, ri := range f.rowIdx {
			v := fn(col[ri])
			col[ri] = v
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				finite = true
				if v < minVal {
					minVal = v
				}
				if v > maxVal {
					maxVal = v
				}
			}
		}

		if finite {
			f.store.chans[ci].RangeMin = minVal
			f.store.chans[ci].RangeMax = maxVal
		}
	}

	return nil
}

// SetMarkers updates the marker labels of the named channels on the shared
// store. The whole mapping is validated first, so the operation either fully
// applies or leaves every marker unchanged.
//
// Returns ErrUnknownChannel if a channel name is not in the current view.
func (f *Frame) SetMarkers(markers map[string]string) error {
	cis := make(map[int]string, len(markers))
	for name, marker := range markers {
		ci, ok := f.physicalColumn(name)
		if !ok {
			return fmt.Errorf("%w: %q", errs.ErrUnknownChannel, name)
		}
		cis[ci] = marker
	}

	for ci, marker := range cis {
		f.store.chans[ci].Marker = marker
	}

	return nil
}

// ResolveChannel returns the channel name carrying the given marker label in
// the current view.
//
// Returns ErrAmbiguousMarker if more than one visible channel carries the
// label and ErrMarkerNotFound if none does.
func (f *Frame) ResolveChannel(marker string) (string, error) {
	found := ""
	count := 0
	for _, ci := range f.colIdx {
		if f.store.chans[ci].Marker == marker {
			found = f.store.chans[ci].Name
			count++
		}
	}

	switch count {
	case 0:
		return "", fmt.Errorf("%w: %q", errs.ErrMarkerNotFound, marker)
	case 1:
		return found, nil
	default:
		return "", fmt.Errorf("%w: %q matches %d channels", errs.ErrAmbiguousMarker, marker, count)
	}
}
