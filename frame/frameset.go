package frame

import (
	"fmt"
	"iter"

	"github.com/arloliu/flowframe/errs"
)

// FrameSet is an ordered mapping from sample name to Frame, with optional
// per-sample phenotype metadata. Members are held by reference: adding a
// frame shares its backing store, and subsetting a set yields views, not
// copies. Iteration order is always insertion order.
type FrameSet struct {
	names  []string
	frames map[string]*Frame
	pheno  *PhenoTable // nil until assigned via SetPheno
}

// NewFrameSet creates an empty frame set.
func NewFrameSet() *FrameSet {
	return &FrameSet{
		frames: make(map[string]*Frame),
	}
}

// Len returns the number of member frames.
func (s *FrameSet) Len() int {
	return len(s.names)
}

// Names returns the sample names in insertion order. The returned slice is
// a copy.
func (s *FrameSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)

	return names
}

// AddFrame inserts f under the given sample name. The frame is held by
// reference, sharing its backing store with the caller.
//
// Returns ErrDuplicateSample if the name is already present.
func (s *FrameSet) AddFrame(name string, f *Frame) error {
	if _, ok := s.frames[name]; ok {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateSample, name)
	}

	s.names = append(s.names, name)
	s.frames[name] = f

	return nil
}

// Frame returns the member frame stored under the given sample name.
//
// Returns ErrUnknownSample if the name is not present.
func (s *FrameSet) Frame(name string) (*Frame, error) {
	f, ok := s.frames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSample, name)
	}

	return f, nil
}

// HasFrame reports whether the set contains the given sample name.
func (s *FrameSet) HasFrame(name string) bool {
	_, ok := s.frames[name]
	return ok
}

// Frames returns an iterator over (sample name, frame) pairs in insertion
// order.
//
// Example:
//
//	for name, f := range set.Frames() {
//	    fmt.Printf("%s: %d events\n", name, f.NumEvents())
//	}
func (s *FrameSet) Frames() iter.Seq2[string, *Frame] {
	return func(yield func(string, *Frame) bool) {
		for _, name := range s.names {
			if !yield(name, s.frames[name]) {
				return
			}
		}
	}
}

// Subset returns a new set containing the members for which pred returns
// true, in the original insertion order. The member frames are the same view
// objects, not copies, so they keep sharing their backing stores with the
// original set. The phenotype table, if assigned, is filtered to the kept
// samples.
func (s *FrameSet) Subset(pred func(name string, f *Frame) bool) *FrameSet {
	sub := NewFrameSet()
	for _, name := range s.names {
		f := s.frames[name]
		if pred(name, f) {
			sub.names = append(sub.names, name)
			sub.frames[name] = f
		}
	}

	if s.pheno != nil {
		sub.pheno = s.pheno.subset(sub.names)
	}

	return sub
}

// SubsetNames returns a new set restricted to the given sample names, in the
// given order, with the same view-sharing semantics as Subset.
//
// Returns ErrUnknownSample if a name is not present; the set is unchanged.
func (s *FrameSet) SubsetNames(names []string) (*FrameSet, error) {
	sub := NewFrameSet()
	for _, name := range names {
		f, ok := s.frames[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSample, name)
		}
		if err := sub.AddFrame(name, f); err != nil {
			return nil, err
		}
	}

	if s.pheno != nil {
		sub.pheno = s.pheno.subset(sub.names)
	}

	return sub, nil
}

// SetPheno replaces the per-sample phenotype table. The table's row labels
// must exactly equal the member sample names as an unordered set; otherwise
// the assignment fails and the previous table (or absence of one) is kept.
// The table is cloned, so later changes to p do not affect the set.
//
// Returns ErrPhenoMismatch on any label-set difference.
func (s *FrameSet) SetPheno(p *PhenoTable) error {
	if p.Len() != len(s.names) {
		return fmt.Errorf("%w: %d rows for %d samples", errs.ErrPhenoMismatch, p.Len(), len(s.names))
	}

	for _, name := range s.names {
		if !p.HasRow(name) {
			return fmt.Errorf("%w: missing row for sample %q", errs.ErrPhenoMismatch, name)
		}
	}

	s.pheno = p.Clone()

	return nil
}

// Pheno returns the phenotype table assigned to the set, or nil if none has
// been assigned. The returned table is the set's own; callers should treat
// it as read-only.
func (s *FrameSet) Pheno() *PhenoTable {
	return s.pheno
}

// DeepCopy returns an independent set: every member frame is deep-copied and
// the phenotype table is cloned. The result shares nothing with the source.
func (s *FrameSet) DeepCopy() *FrameSet {
	cp := NewFrameSet()
	for _, name := range s.names {
		cp.names = append(cp.names, name)
		cp.frames[name] = s.frames[name].DeepCopy()
	}

	if s.pheno != nil {
		cp.pheno = s.pheno.Clone()
	}

	return cp
}
