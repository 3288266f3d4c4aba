package containers

// ForEach walks an iterator until it is exhausted or fn returns false.
//
// A failing step of the iterator stops the walk and the error is returned to
// the caller.
func ForEach[T any](it Iterator[T], fn func(T) bool) error {
	if it == nil || fn == nil {
		return nil
	}
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if !fn(v) {
			return nil
		}
	}
	return nil
}

// Collect drains an iterator into a slice.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	err := ForEach(it, func(v T) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
