package frame

// Map applies fn to each member frame in insertion order and returns the
// results keyed by sample name. The first error aborts the traversal and is
// returned to the caller.
func Map[T any](s *FrameSet, fn func(name string, f *Frame) (T, error)) (map[string]T, error) {
	results := make(map[string]T, len(s.names))
	for _, name := range s.names {
		r, err := fn(name, s.frames[name])
		if err != nil {
			return nil, err
		}
		results[name] = r
	}

	return results, nil
}

// MapSlice is the simplified form of Map: results are returned as a slice in
// insertion order, aligned with s.Names(). Use it when every member produces
// a uniform scalar or shape and the per-sample keying is not needed.
func MapSlice[T any](s *FrameSet, fn func(name string, f *Frame) (T, error)) ([]T, error) {
	results := make([]T, 0, len(s.names))
	for _, name := range s.names {
		r, err := fn(name, s.frames[name])
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}
