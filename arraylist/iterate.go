package arraylist

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// All returns an iterator over index/element pairs in order.
//
// Changing the list structurally from inside the loop body makes All panic
// with an error wrapping containers.ErrConcurrentStructuralChange; use
// ForEach or a Cursor to get the error returned instead.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		stamp := l.stamp
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
			if l.stamp != stamp {
				panic(errors.Wrapf(containers.ErrConcurrentStructuralChange,
					"arraylist: range at %d", i))
			}
		}
	}
}

// Values returns an iterator over the elements in order. See All for the
// behaviour under concurrent structural change.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach visits all elements in order until fn returns false.
//
// If fn changes the list structurally, the walk stops and ForEach returns an
// error wrapping containers.ErrConcurrentStructuralChange.
func (l *List[T]) ForEach(fn func(index int, value T) bool) error {
	if fn == nil {
		return nil
	}
	stamp := l.stamp
	for i := 0; i < l.size; i++ {
		more := fn(i, l.data[i])
		if l.stamp != stamp {
			return errors.Wrapf(containers.ErrConcurrentStructuralChange,
				"arraylist: for-each at %d", i)
		}
		if !more {
			return nil
		}
	}
	return nil
}
