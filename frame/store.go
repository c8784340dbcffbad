package frame

import (
	"fmt"

	"github.com/arloliu/flowframe/errs"
)

// store is the shared backing buffer behind one or more Frame views.
//
// Event data is kept column-major: one physical []float64 per channel, all of
// equal length. Channel descriptors and header keywords are store-level so
// metadata mutations through one view are observable through all views. A
// store is owned collectively by every view referencing it and is reclaimed
// by the garbage collector when the last view is dropped.
type store struct {
	rows     int
	cols     [][]float64
	chans    []Channel
	keywords map[string]string
}

// newStore builds a store from caller-provided columns, cloning everything so
// the store owns its memory. Column count must match the channel descriptors
// and all columns must have equal length.
func newStore(channels []Channel, columns [][]float64, keywords map[string]string) (*store, error) {
	if len(columns) != len(channels) {
		return nil, fmt.Errorf("%w: %d columns for %d channels",
			errs.ErrValueLengthMismatch, len(columns), len(channels))
	}

	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}

	seen := make(map[string]struct{}, len(channels))
	for _, ch := range channels {
		if _, ok := seen[ch.Name]; ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChannel, ch.Name)
		}
		seen[ch.Name] = struct{}{}
	}

	cols := make([][]float64, len(columns))
	for i, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d",
				errs.ErrValueLengthMismatch, i, len(col), rows)
		}
		cols[i] = make([]float64, rows)
		copy(cols[i], col)
	}

	chans := make([]Channel, len(channels))
	copy(chans, channels)

	kw := make(map[string]string, len(keywords))
	for k, v := range keywords {
		kw[k] = v
	}

	return &store{
		rows:     rows,
		cols:     cols,
		chans:    chans,
		keywords: kw,
	}, nil
}
