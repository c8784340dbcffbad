package frame

import (
	"fmt"

	"github.com/arloliu/flowframe/errs"
)

// Frame is a view over a shared backing store of flow-cytometry event data:
// rows are events, columns are channels. See the package documentation for
// the view-vs-copy semantics.
//
// The zero value is not usable; obtain frames from New, Decode, Subset or
// DeepCopy.
type Frame struct {
	store  *store
	rowIdx []int // physical row indices visible through this view
	colIdx []int // physical column indices visible through this view
}

// New creates a frame from channel descriptors and column-major event data.
// columns[i] holds the values of channels[i]; all columns must have equal
// length. The input slices and keyword map are cloned, so the frame owns a
// fresh backing store.
//
// Returns ErrValueLengthMismatch on ragged or mis-counted columns and
// ErrDuplicateChannel on duplicate channel names.
func New(channels []Channel, columns [][]float64, keywords map[string]string) (*Frame, error) {
	st, err := newStore(channels, columns, keywords)
	if err != nil {
		return nil, err
	}

	return fullView(st), nil
}

// fullView creates a view exposing every row and column of st.
func fullView(st *store) *Frame {
	rowIdx := make([]int, st.rows)
	for i := range rowIdx {
		rowIdx[i] = i
	}
	colIdx := make([]int, len(st.cols))
	for i := range colIdx {
		colIdx[i] = i
	}

	return &Frame{store: st, rowIdx: rowIdx, colIdx: colIdx}
}

// NumEvents returns the number of rows visible through this view.
func (f *Frame) NumEvents() int {
	return len(f.rowIdx)
}

// NumChannels returns the number of columns visible through this view.
func (f *Frame) NumChannels() int {
	return len(f.colIdx)
}

// Channels returns the channel descriptors visible through this view, in
// column order. The returned slice is a copy.
func (f *Frame) Channels() []Channel {
	chans := make([]Channel, len(f.colIdx))
	for i, ci := range f.colIdx {
		chans[i] = f.store.chans[ci]
	}

	return chans
}

// ChannelNames returns the channel names visible through this view, in
// column order.
func (f *Frame) ChannelNames() []string {
	names := make([]string, len(f.colIdx))
	for i, ci := range f.colIdx {
		names[i] = f.store.chans[ci].Name
	}

	return names
}

// HasChannel reports whether the view contains a channel with the given name.
func (f *Frame) HasChannel(name string) bool {
	_, ok := f.physicalColumn(name)
	return ok
}

// Keyword returns the value of a header keyword.
func (f *Frame) Keyword(key string) (string, bool) {
	v, ok := f.store.keywords[key]
	return v, ok
}

// Keywords returns a copy of the header keywords.
func (f *Frame) Keywords() map[string]string {
	kw := make(map[string]string, len(f.store.keywords))
	for k, v := range f.store.keywords {
		kw[k] = v
	}

	return kw
}

// SetKeyword sets a single header keyword on the shared store.
func (f *Frame) SetKeyword(key, value string) {
	f.store.keywords[key] = value
}

// ReplaceKeywords replaces the header keywords of the shared store with a
// clone of the given map. This is the explicit full-replace operation;
// keywords are otherwise immutable after load.
func (f *Frame) ReplaceKeywords(keywords map[string]string) {
	kw := make(map[string]string, len(keywords))
	for k, v := range keywords {
		kw[k] = v
	}
	f.store.keywords = kw
}

// Subset returns a new view sharing this frame's backing store, restricted to
// the given rows and channels. Row indices are relative to the current view,
// so selectors compose. A nil rows slice keeps all visible rows; a nil
// channels slice keeps all visible channels. No event data is copied.
//
// Returns ErrIndexOutOfRange if a row index does not resolve inside the
// current view, and ErrUnknownChannel for an unknown channel name.
func (f *Frame) Subset(rows []int, channels []string) (*Frame, error) {
	rowIdx, err := f.resolveRows(rows)
	if err != nil {
		return nil, err
	}

	colIdx, err := f.resolveChannels(channels)
	if err != nil {
		return nil, err
	}

	return &Frame{store: f.store, rowIdx: rowIdx, colIdx: colIdx}, nil
}

// SubsetRows returns a new view restricted to the given rows, keeping all
// visible channels. Equivalent to Subset(rows, nil).
func (f *Frame) SubsetRows(rows []int) (*Frame, error) {
	return f.Subset(rows, nil)
}

// SubsetChannels returns a new view restricted to the given channels, keeping
// all visible rows. Equivalent to Subset(nil, channels).
func (f *Frame) SubsetChannels(channels []string) (*Frame, error) {
	return f.Subset(nil, channels)
}

// DeepCopy returns an independent frame holding exactly the values visible
// through this view, with channel descriptors and header keywords cloned.
// The result shares nothing with the source.
func (f *Frame) DeepCopy() *Frame {
	rows := len(f.rowIdx)

	cols := make([][]float64, len(f.colIdx))
	chans := make([]Channel, len(f.colIdx))
	for i, ci := range f.colIdx {
		src := f.store.cols[ci]
		col := make([]float64, rows)
		for j, ri := range f.rowIdx {
			col[j] = src[ri]
		}
		cols[i] = col
		chans[i] = f.store.chans[ci]
	}

	kw := make(map[string]string, len(f.store.keywords))
	for k, v := range f.store.keywords {
		kw[k] = v
	}

	return fullView(&store{
		rows:     rows,
		cols:     cols,
		chans:    chans,
		keywords: kw,
	})
}

// Values returns the logical event matrix visible through this view as a
// freshly assembled row-major matrix (events × channels). Reading never
// mutates; the returned matrix is a snapshot and does not alias the backing
// store.
func (f *Frame) Values() [][]float64 {
	matrix := make([][]float64, len(f.rowIdx))
	for i, ri := range f.rowIdx {
		row := make([]float64, len(f.colIdx))
		for j, ci := range f.colIdx {
			row[j] = f.store.cols[ci][ri]
		}
		matrix[i] = row
	}

	return matrix
}

// Column returns a copy of the values visible through this view for the
// named channel.
//
// Returns ErrUnknownChannel if the channel is not in the current view.
func (f *Frame) Column(name string) ([]float64, error) {
	ci, ok := f.physicalColumn(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownChannel, name)
	}

	src := f.store.cols[ci]
	col := make([]float64, len(f.rowIdx))
	for i, ri := range f.rowIdx {
		col[i] = src[ri]
	}

	return col, nil
}

// At returns the value at the given row and column of the view.
//
// Returns ErrIndexOutOfRange if either index is outside the view.
func (f *Frame) At(row, col int) (float64, error) {
	if row < 0 || row >= len(f.rowIdx) {
		return 0, fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, row, len(f.rowIdx))
	}
	if col < 0 || col >= len(f.colIdx) {
		return 0, fmt.Errorf("%w: column %d of %d", errs.ErrIndexOutOfRange, col, len(f.colIdx))
	}

	return f.store.cols[f.colIdx[col]][f.rowIdx[row]], nil
}

// SharesStore reports whether two frames are views over the same backing
// store, i.e. whether mutations through one are observable through the other.
func (f *Frame) SharesStore(other *Frame) bool {
	return f.store == other.store
}

// resolveRows maps view-relative row indices to physical row indices.
// nil selects all visible rows.
func (f *Frame) resolveRows(rows []int) ([]int, error) {
	if rows == nil {
		rowIdx := make([]int, len(f.rowIdx))
		copy(rowIdx, f.rowIdx)

		return rowIdx, nil
	}

	rowIdx := make([]int, len(rows))
	for i, r := range rows {
		if r < 0 || r >= len(f.rowIdx) {
			return nil, fmt.Errorf("%w: row %d of %d", errs.ErrIndexOutOfRange, r, len(f.rowIdx))
		}
		rowIdx[i] = f.rowIdx[r]
	}

	return rowIdx, nil
}

// resolveChannels maps channel names to physical column indices.
// nil selects all visible channels.
func (f *Frame) resolveChannels(channels []string) ([]int, error) {
	if channels == nil {
		colIdx := make([]int, len(f.colIdx))
		copy(colIdx, f.colIdx)

		return colIdx, nil
	}

	colIdx := make([]int, len(channels))
	for i, name := range channels {
		ci, ok := f.physicalColumn(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownChannel, name)
		}
		colIdx[i] = ci
	}

	return colIdx, nil
}

// physicalColumn returns the physical column index of the named channel
// within the current view.
func (f *Frame) physicalColumn(name string) (int, bool) {
	for _, ci := range f.colIdx {
		if f.store.chans[ci].Name == name {
			return ci, true
		}
	}

	return 0, false
}
