package frame

import (
	"fmt"

	"github.com/arloliu/flowframe/errs"
)

// PhenoTable is a per-sample metadata table: one row per sample, string
// columns such as treatment group or acquisition day. Row labels correspond
// to sample names and must exactly match the member keys of the FrameSet the
// table is assigned to.
type PhenoTable struct {
	columns []string
	labels  []string
	rows    map[string]map[string]string
}

// NewPhenoTable creates an empty phenotype table with the given column names.
func NewPhenoTable(columns []string) *PhenoTable {
	cols := make([]string, len(columns))
	copy(cols, columns)

	return &PhenoTable{
		columns: cols,
		rows:    make(map[string]map[string]string),
	}
}

// Columns returns the column names. The returned slice is a copy.
func (p *PhenoTable) Columns() []string {
	cols := make([]string, len(p.columns))
	copy(cols, p.columns)

	return cols
}

// Labels returns the row labels in insertion order. The returned slice is a
// copy.
func (p *PhenoTable) Labels() []string {
	labels := make([]string, len(p.labels))
	copy(labels, p.labels)

	return labels
}

// Len returns the number of rows.
func (p *PhenoTable) Len() int {
	return len(p.labels)
}

// HasRow reports whether a row with the given label exists.
func (p *PhenoTable) HasRow(label string) bool {
	_, ok := p.rows[label]
	return ok
}

// AddRow appends a row under the given label. Values are keyed by column
// name; missing columns read back as empty strings. The values map is cloned.
//
// Returns ErrDuplicateSample if the label is already present.
func (p *PhenoTable) AddRow(label string, values map[string]string) error {
	if _, ok := p.rows[label]; ok {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateSample, label)
	}

	row := make(map[string]string, len(values))
	for k, v := range values {
		row[k] = v
	}

	p.labels = append(p.labels, label)
	p.rows[label] = row

	return nil
}

// Value returns the cell at the given row label and column. The second
// return value is false when the row does not exist; a missing cell in an
// existing row reads as the empty string.
func (p *PhenoTable) Value(label, column string) (string, bool) {
	row, ok := p.rows[label]
	if !ok {
		return "", false
	}

	return row[column], true
}

// Clone returns an independent copy of the table.
func (p *PhenoTable) Clone() *PhenoTable {
	cp := NewPhenoTable(p.columns)
	for _, label := range p.labels {
		// AddRow clones the row map and cannot fail on fresh labels.
		_ = cp.AddRow(label, p.rows[label])
	}

	return cp
}

// subset returns a clone restricted to the given row labels, in the given
// order. Unknown labels are skipped; callers validate membership beforehand.
func (p *PhenoTable) subset(labels []string) *PhenoTable {
	sub := NewPhenoTable(p.columns)
	for _, label := range labels {
		if row, ok := p.rows[label]; ok {
			_ = sub.AddRow(label, row)
		}
	}

	return sub
}
