package hashmap

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// Iterator is a fail-fast iterator over the entries of a map, yielding a
// projection of type T of each entry (its key, its value or the entry
// itself). Entries are visited in bucket order, then in bin order.
type Iterator[K comparable, V any, T any] struct {
	m        *Map[K, V]
	project  func(*Entry[K, V]) T
	next     *Entry[K, V] // entry to be returned by Next
	bucket   int          // bucket of next
	current  *Entry[K, V] // entry returned last, nil if none
	expected uint64       // change stamp of m known to the iterator
}

var _ containers.Iterator[int] = (*Iterator[string, int, int])(nil)

func newIterator[K comparable, V any, T any](m *Map[K, V], project func(*Entry[K, V]) T) *Iterator[K, V, T] {
	it := &Iterator[K, V, T]{
		m:        m,
		project:  project,
		bucket:   -1,
		expected: m.stamp,
	}
	it.advanceBucket()
	return it
}

// advanceBucket positions next at the head of the next non-empty bucket.
func (it *Iterator[K, V, T]) advanceBucket() {
	it.next = nil
	if it.m.size == 0 {
		return
	}
	for it.bucket++; it.bucket < len(it.m.buckets); it.bucket++ {
		if h := it.m.buckets[it.bucket].head; h != nil {
			it.next = h
			return
		}
	}
}

// HasNext reports whether there are entries left. After a foreign structural
// change HasNext reports true, so that the following call to Next returns the
// error.
func (it *Iterator[K, V, T]) HasNext() bool {
	return it.next != nil || it.m.stamp != it.expected
}

// Next returns the next entry's projection.
func (it *Iterator[K, V, T]) Next() (T, error) {
	var zero T
	if err := it.check(); err != nil {
		return zero, err
	}
	e := it.next
	if e == nil {
		return zero, errors.Wrap(containers.ErrNoSuchElement, "hashmap: iterator exhausted")
	}
	it.current = e
	if e.next != nil {
		it.next = e.next
	} else {
		it.advanceBucket()
	}
	return it.project(e), nil
}

// Remove deletes the entry returned last by Next from the map. The iterator
// stays valid.
func (it *Iterator[K, V, T]) Remove() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.current == nil {
		return errors.Wrap(containers.ErrIllegalState, "hashmap: remove without next")
	}
	it.m.removeEntry(it.current)
	it.current = nil
	it.expected = it.m.stamp
	return nil
}

func (it *Iterator[K, V, T]) check() error {
	if it.m.stamp != it.expected {
		return errors.Wrap(containers.ErrConcurrentStructuralChange, "hashmap: iterator")
	}
	return nil
}

// All returns an iterator over the key/value pairs of the map.
//
// Changing the map structurally from inside the loop body makes All panic
// with an error wrapping containers.ErrConcurrentStructuralChange; use
// ForEach or an Iterator to get the error returned instead. Replacing the
// value of the current key is allowed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stamp := m.stamp
		for i := range m.buckets {
			for e := m.buckets[i].head; e != nil; {
				next := e.next
				if !yield(e.key, e.value) {
					return
				}
				if m.stamp != stamp {
					panic(errors.Wrap(containers.ErrConcurrentStructuralChange, "hashmap: range"))
				}
				e = next
			}
		}
	}
}

// ForEach visits all entries until fn returns false.
//
// If fn changes the map structurally, the walk stops and ForEach returns an
// error wrapping containers.ErrConcurrentStructuralChange.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) error {
	if fn == nil {
		return nil
	}
	stamp := m.stamp
	for i := range m.buckets {
		for e := m.buckets[i].head; e != nil; e = e.next {
			more := fn(e.key, e.value)
			if m.stamp != stamp {
				return errors.Wrap(containers.ErrConcurrentStructuralChange, "hashmap: for-each")
			}
			if !more {
				return nil
			}
		}
	}
	return nil
}
