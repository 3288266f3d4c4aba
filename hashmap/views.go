package hashmap

import (
	"iter"

	"github.com/npillmayer/containers"
)

// view is a live, projected view of the entries of a map.
type view[K comparable, V any, T any] struct {
	m        *Map[K, V]
	project  func(*Entry[K, V]) T
	contains func(T) bool
}

func (v view[K, V, T]) Size() int {
	return v.m.size
}

func (v view[K, V, T]) Contains(x T) bool {
	return v.contains(x)
}

func (v view[K, V, T]) Iterator() containers.Iterator[T] {
	return newIterator(v.m, v.project)
}

func (v view[K, V, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIterator(v.m, v.project)
		for it.HasNext() {
			x, err := it.Next()
			if err != nil {
				panic(err)
			}
			if !yield(x) {
				return
			}
		}
	}
}

// Keys returns a live view of the keys of the map. Removing through the
// view's iterators removes entries from the map.
func (m *Map[K, V]) Keys() containers.View[K] {
	return view[K, V, K]{
		m:        m,
		project:  func(e *Entry[K, V]) K { return e.key },
		contains: m.ContainsKey,
	}
}

// Values returns a live view of the values of the map.
func (m *Map[K, V]) Values() containers.View[V] {
	return view[K, V, V]{
		m:        m,
		project:  func(e *Entry[K, V]) V { return e.value },
		contains: m.ContainsValue,
	}
}

// Entries returns a live view of the entries of the map. The elements are of
// type *Entry, whose SetValue changes the map.
func (m *Map[K, V]) Entries() containers.View[containers.Entry[K, V]] {
	return view[K, V, containers.Entry[K, V]]{
		m:       m,
		project: func(e *Entry[K, V]) containers.Entry[K, V] { return e },
		contains: func(x containers.Entry[K, V]) bool {
			if x == nil {
				return false
			}
			e := m.entry(x.Key())
			return e != nil && m.cfg.ValueEqual(e.value, x.Value())
		},
	}
}
