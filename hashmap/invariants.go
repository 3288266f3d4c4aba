package hashmap

import (
	"github.com/cockroachdb/errors"
	"github.com/google/btree"
	"github.com/npillmayer/containers"
)

// Check validates the structural invariants of the map:
//
//   - the number of buckets is 0 or a power of two
//   - every entry lives in bucket spread(hash) & (N-1) and its cached hash is
//     current
//   - chains are consistently linked and their counts match
//   - tree bins exist only in tables of at least MinTreeifyCapacity buckets,
//     hold more than UntreeifyThreshold entries, and index exactly the
//     entries of their chain in ascending order
//   - no key is stored twice
//   - the sum of all bin counts equals Size()
//
// Check reports the first violation found, wrapping
// containers.ErrBrokenInvariant. It is meant for tests.
func (m *Map[K, V]) Check() error {
	n := len(m.buckets)
	if n&(n-1) != 0 {
		return broken("bucket count %d is not a power of two", n)
	}
	total := 0
	for j := range m.buckets {
		b := &m.buckets[j]
		if err := m.checkBin(j, b); err != nil {
			return err
		}
		total += b.count
	}
	if total != m.size {
		return broken("bins hold %d entries, size is %d", total, m.size)
	}
	if n > 0 && m.size > m.threshold {
		return broken("size %d exceeds threshold %d", m.size, m.threshold)
	}
	return nil
}

func (m *Map[K, V]) checkBin(j int, b *bin[K, V]) error {
	mask := uint64(len(m.buckets) - 1)
	count := 0
	var prev *Entry[K, V]
	for e := b.head; e != nil; e = e.next {
		count++
		if e.prev != prev {
			return broken("bucket %d: broken back link at entry %d", j, count)
		}
		if e.hash&mask != uint64(j) {
			return broken("bucket %d: entry with hash %#x misplaced", j, e.hash)
		}
		if e.hash != m.hash(e.key) {
			return broken("bucket %d: stale hash %#x", j, e.hash)
		}
		for o := b.head; o != e; o = o.next {
			if o.hash == e.hash && m.hasher.Equal(o.key, e.key) {
				return broken("bucket %d: duplicate key %v", j, e.key)
			}
		}
		prev = e
	}
	if prev != b.tail {
		return broken("bucket %d: tail does not terminate the chain", j)
	}
	if count != b.count {
		return broken("bucket %d: chain of %d entries, count is %d", j, count, b.count)
	}
	if !b.isTree() {
		return nil
	}
	if len(m.buckets) < m.cfg.MinTreeifyCapacity {
		return broken("bucket %d: tree bin in table of %d buckets", j, len(m.buckets))
	}
	if b.count <= m.cfg.UntreeifyThreshold {
		return broken("bucket %d: tree bin of only %d entries", j, b.count)
	}
	if b.tree.Len() != b.count {
		return broken("bucket %d: tree indexes %d of %d entries", j, b.tree.Len(), b.count)
	}
	var err error
	var last *Entry[K, V]
	b.tree.Ascend(func(item btree.Item) bool {
		e := item.(*Entry[K, V])
		if last != nil && !last.Less(e) {
			err = broken("bucket %d: tree out of order", j)
			return false
		}
		if e.hash&mask != uint64(j) {
			err = broken("bucket %d: tree indexes foreign entry", j)
			return false
		}
		last = e
		return true
	})
	if err != nil {
		return err
	}
	for e := b.head; e != nil; e = e.next {
		if b.tree.Get(e) != e {
			return broken("bucket %d: entry missing from tree", j)
		}
	}
	return nil
}

func broken(format string, args ...any) error {
	return errors.Wrapf(containers.ErrBrokenInvariant, format, args...)
}
