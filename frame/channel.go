package frame

// Channel describes a single column of the event matrix: the
// instrument-assigned channel name, an optional user-assigned marker label,
// and the numeric range recorded by the instrument.
//
// Channel names are unique within a frame; marker labels are not required to
// be unique.
type Channel struct {
	// Name is the instrument-assigned channel name, e.g. "FL1-A".
	Name string
	// Marker is the optional biological marker label, e.g. "CD4". Empty when
	// no marker is assigned.
	Marker string
	// RangeMin is the lower bound of the channel's instrument range.
	RangeMin float64
	// RangeMax is the upper bound of the channel's instrument range.
	RangeMax float64
}
