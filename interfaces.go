package containers

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Iterator is a forward, fail-fast traversal over a container.
//
// Next and Remove fail with ErrConcurrentStructuralChange if the underlying
// container has been structurally changed by anyone but the iterator itself.
// HasNext never fails.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	// Remove deletes the element returned by the most recent call to Next.
	// Without such a call it fails with ErrIllegalState.
	Remove() error
}

// Cursor is a bidirectional iterator positioned between two elements of a
// sequence.
//
// Index is the index of the element a subsequent call to Next would return
// (the cursor's position index). Set replaces the element returned most
// recently by Next or Previous; Add inserts in front of the cursor position.
type Cursor[T any] interface {
	Iterator[T]
	HasPrevious() bool
	Previous() (T, error)
	Set(value T) error
	Add(value T) error
	Index() int
}

// Iterable is implemented by containers which hand out fail-fast iterators.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// Sequence is an indexed container.
//
// Positional operations fail with ErrIndexOutOfRange for bad indices.
// Variants which cannot change their size fail with ErrUnsupportedOperation
// for InsertAt, RemoveAt, Append and Trim.
type Sequence[T any] interface {
	Size() int
	Get(index int) (T, error)
	// Set replaces the element at index and returns the element previously stored.
	Set(index int, value T) (T, error)
	InsertAt(index int, value T) error
	RemoveAt(index int) (T, error)
	Append(value T) error
	Trim() error
	// Cursor creates a cursor positioned in front of the element at index.
	// index may be equal to Size.
	Cursor(index int) (Cursor[T], error)
}

// View is a read-mostly window onto the contents of a container, e.g. the
// key set of a map. Removal is possible through the view's iterators.
type View[T any] interface {
	Iterable[T]
	Size() int
	Contains(value T) bool
	// All ranges over the view. It panics with ErrConcurrentStructuralChange if
	// the loop body changes the underlying container structurally.
	All() iter.Seq[T]
}

// Entry is a key/value pair handed out by an associative container.
type Entry[K, V any] interface {
	Key() K
	Value() V
}

// AssociativeView is the capability interface of maps.
//
// Get and Remove report with a boolean whether the key has been present;
// Put returns the value previously associated with the key (if any).
type AssociativeView[K, V any] interface {
	Size() int
	Get(key K) (V, bool)
	Put(key K, value V) (V, bool, error)
	Remove(key K) (V, bool)
	ContainsKey(key K) bool
	ContainsValue(value V) bool
	Keys() View[K]
	Values() View[V]
	Entries() View[Entry[K, V]]
}
