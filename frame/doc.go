// Package frame implements the core flowframe data handles: Frame, a tabular
// event matrix with per-channel metadata, and FrameSet, an ordered collection
// of frames with per-sample phenotype metadata.
//
// # View vs. copy semantics
//
// A Frame is a lightweight view over a shared backing store. Subsetting a
// frame by rows or channels creates a new view on the same store: no event
// data is copied, and mutations through any view are observable through every
// other view of the same store. DeepCopy is the only way to obtain an
// independent frame; it allocates a fresh store holding exactly the values
// visible through the source view.
//
//	f, _ := frame.Decode(data)
//	v, _ := f.SubsetRows([]int{0, 1, 2})
//	v.WriteColumn("FSC-A", vals) // visible through f as well
//	u := v.DeepCopy()            // u shares nothing with f or v
//
// Channel descriptors and header keywords live on the shared store too:
// marker updates and transform-driven range updates through one view are
// visible to all views of the same store.
//
// # Sanctioned vs. raw mutation
//
// ApplyTransform is the sanctioned way to mutate event data: it rewrites the
// selected columns in place and recomputes their instrument range from the
// new values. WriteColumn and WriteValues are raw overwrites that leave the
// recorded range untouched; downstream consumers relying on range metadata
// must use ApplyTransform.
//
// Frames are not safe for concurrent use. All operations are synchronous and
// complete or fail immediately.
package frame
