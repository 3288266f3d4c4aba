package hashmap

import (
	"github.com/google/btree"
)

// treeDegree is the degree of tree-bin B-trees: nodes hold 1 to 3 entries,
// making them 2-3-4 trees.
const treeDegree = 2

// Less orders entries by spread hash, then by the map's Compare function if
// present, then by insertion sequence. Lookup probes carry sequence 0 and
// therefore sort in front of all entries with equal hash and key order.
func (e *Entry[K, V]) Less(than btree.Item) bool {
	o := than.(*Entry[K, V])
	if e.hash != o.hash {
		return e.hash < o.hash
	}
	if compare := e.m.compare; compare != nil {
		if c := compare(e.key, o.key); c != 0 {
			return c < 0
		}
	}
	return e.seq < o.seq
}

// treeify builds the tree index for the chain of b.
func (b *bin[K, V]) treeify() {
	b.tree = btree.New(treeDegree)
	for e := b.head; e != nil; e = e.next {
		b.tree.ReplaceOrInsert(e)
	}
}

// untreeify drops the tree index. The chain is always kept in order, so
// nothing else has to be done.
func (b *bin[K, V]) untreeify() {
	b.tree = nil
}

// lookup searches the tree index of b. Entries with hash h are visited in
// ascending order, starting at the position of key; without a Compare
// function all of them are candidates.
func (b *bin[K, V]) lookup(m *Map[K, V], h uint64, key K) *Entry[K, V] {
	probe := &Entry[K, V]{key: key, hash: h, m: m}
	var found *Entry[K, V]
	b.tree.AscendGreaterOrEqual(probe, func(item btree.Item) bool {
		e := item.(*Entry[K, V])
		if e.hash != h {
			return false
		}
		if m.compare != nil && m.compare(e.key, key) != 0 {
			return false
		}
		if m.hasher.Equal(e.key, key) {
			found = e
			return false
		}
		return true
	})
	return found
}
