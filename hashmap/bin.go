package hashmap

import (
	"github.com/google/btree"
	"github.com/npillmayer/containers"
)

// Entry is a key/value pair stored in a map. Entries are handed out by the
// Entries view and stay owned by the map.
type Entry[K comparable, V any] struct {
	key        K
	value      V
	hash       uint64 // spread hash
	seq        uint64 // insertion sequence, tie-break in tree bins
	prev, next *Entry[K, V]
	m          *Map[K, V]
}

var _ containers.Entry[string, int] = (*Entry[string, int])(nil)

// Key returns the key of the entry.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Value returns the value of the entry.
func (e *Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the value of the entry and returns the previous one.
// Replacing a value is not a structural change.
func (e *Entry[K, V]) SetValue(value V) (V, error) {
	if err := e.m.admitValue(value); err != nil {
		var zero V
		return zero, err
	}
	old := e.value
	e.value = value
	return old, nil
}

// bin is the content of a bucket: a chain of entries and, in tree form, an
// ordered index over the same entries.
type bin[K comparable, V any] struct {
	head, tail *Entry[K, V]
	count      int
	tree       *btree.BTree // nil for plain chains
}

func (b *bin[K, V]) isTree() bool {
	return b.tree != nil
}

// push appends e at the tail of the chain.
func (b *bin[K, V]) push(e *Entry[K, V]) {
	b.pushChain(e)
	if b.tree != nil {
		b.tree.ReplaceOrInsert(e)
	}
}

// pushChain appends e to the chain of b, ignoring any tree index.
func (b *bin[K, V]) pushChain(e *Entry[K, V]) {
	e.prev, e.next = b.tail, nil
	if b.tail == nil {
		b.head = e
	} else {
		b.tail.next = e
	}
	b.tail = e
	b.count++
}

// unlink removes e from the chain (and the tree index).
func (b *bin[K, V]) unlink(e *Entry[K, V]) {
	if e.prev == nil {
		b.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		b.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
	b.count--
	if b.tree != nil {
		removed := b.tree.Delete(e)
		assert(removed != nil, "hashmap: entry missing from tree bin")
	}
}

// find returns the entry for key with spread hash h, or nil.
func (b *bin[K, V]) find(m *Map[K, V], h uint64, key K) *Entry[K, V] {
	if b.tree != nil {
		return b.lookup(m, h, key)
	}
	for e := b.head; e != nil; e = e.next {
		if e.hash == h && m.hasher.Equal(e.key, key) {
			return e
		}
	}
	return nil
}
