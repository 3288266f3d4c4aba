package hashmap

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// Map is a hash table mapping keys of type K to values of type V.
//
// A map created by
//
//	Map[K,V]{}
//
// is a valid, empty map with default configuration.
//
// Maps are not safe for concurrent mutation. Readers may share a map only as
// long as the owner does not change it.
type Map[K comparable, V any] struct {
	buckets   []bin[K, V] // nil until first insertion
	size      int
	threshold int    // resize when size exceeds it
	stamp     uint64 // structural change counter
	seq       uint64 // entry sequence counter
	resizes   int
	initCap   int // number of buckets to allocate on first insertion
	cfg       Config[K, V]
	hasher    Hasher[K]
	compare   func(a, b K) int
	ready     bool
}

var _ containers.AssociativeView[string, int] = (*Map[string, int])(nil)

// New creates an empty map with default configuration.
func New[K comparable, V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.init(Config[K, V]{})
	return m
}

// NewWithConfig creates an empty map with validated configuration.
func NewWithConfig[K comparable, V any](cfg Config[K, V]) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	m := &Map[K, V]{}
	m.init(cfg)
	return m, nil
}

// NewOrdered creates an empty map for ordered keys. Keys with colliding hashes
// are ordered by cmp.Compare inside tree bins, which speeds up lookups in
// crowded bins.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.init(Config[K, V]{Compare: cmp.Compare[K]})
	return m
}

func (m *Map[K, V]) init(cfg Config[K, V]) {
	m.cfg = cfg.normalized()
	m.hasher = m.cfg.Hasher
	m.compare = m.cfg.Compare
	m.initCap = m.cfg.InitialCapacity
	m.ready = true
}

func (m *Map[K, V]) lazyInit() {
	if !m.ready {
		m.init(Config[K, V]{})
	}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the number of buckets, 0 before the first insertion.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// hash computes the spread hash of key.
func (m *Map[K, V]) hash(key K) uint64 {
	return spread(m.hasher.Hash(key))
}

func (m *Map[K, V]) bucketFor(h uint64) *bin[K, V] {
	return &m.buckets[h&uint64(len(m.buckets)-1)]
}

// entry returns the entry for key, or nil.
func (m *Map[K, V]) entry(key K) *Entry[K, V] {
	if m.size == 0 {
		return nil
	}
	h := m.hash(key)
	return m.bucketFor(h).find(m, h, key)
}

// Get returns the value associated with key and whether key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.entry(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// GetOrDefault returns the value associated with key, or dflt if key is not
// present.
func (m *Map[K, V]) GetOrDefault(key K, dflt V) V {
	if e := m.entry(key); e != nil {
		return e.value
	}
	return dflt
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.entry(key) != nil
}

// ContainsValue reports whether at least one key is associated with value.
// It has to visit every entry.
func (m *Map[K, V]) ContainsValue(value V) bool {
	if m.size == 0 {
		return false
	}
	for i := range m.buckets {
		for e := m.buckets[i].head; e != nil; e = e.next {
			if m.cfg.ValueEqual(e.value, value) {
				return true
			}
		}
	}
	return false
}

// Put associates value with key. If key has been present, Put returns the
// value previously associated with it and true.
//
// Put fails if key or value are rejected by the configuration, or if a new
// key would exceed the configured maximum size. A failing Put leaves the map
// unchanged.
func (m *Map[K, V]) Put(key K, value V) (V, bool, error) {
	var zero V
	m.lazyInit()
	if err := m.admit(key, value); err != nil {
		return zero, false, err
	}
	h := m.hash(key)
	if m.buckets != nil {
		if e := m.bucketFor(h).find(m, h, key); e != nil {
			old := e.value
			e.value = value
			return old, true, nil
		}
	}
	if err := m.insert(h, key, value); err != nil {
		return zero, false, err
	}
	return zero, false, nil
}

// PutIfAbsent associates value with key only if key is not present. It
// returns the value associated with key after the call and whether key has
// been present before.
func (m *Map[K, V]) PutIfAbsent(key K, value V) (V, bool, error) {
	m.lazyInit()
	if err := m.admit(key, value); err != nil {
		var zero V
		return zero, false, err
	}
	h := m.hash(key)
	if m.buckets != nil {
		if e := m.bucketFor(h).find(m, h, key); e != nil {
			return e.value, true, nil
		}
	}
	if err := m.insert(h, key, value); err != nil {
		var zero V
		return zero, false, err
	}
	return value, false, nil
}

// PutAll copies all entries of src into m. The table is sized for the
// combined number of entries before copying. Either all entries are copied or,
// if one of them is rejected, none.
func (m *Map[K, V]) PutAll(src containers.AssociativeView[K, V]) error {
	if src == nil || src.Size() == 0 {
		return nil
	}
	m.lazyInit()
	added := 0
	for e := range src.Entries().All() {
		if err := m.admit(e.Key(), e.Value()); err != nil {
			return err
		}
		if !m.ContainsKey(e.Key()) {
			added++
		}
	}
	if added > m.cfg.MaxSize-m.size {
		return errors.Wrapf(containers.ErrCapacityExceeded,
			"cannot add %d entries to map of size %d", added, m.size)
	}
	m.presize(m.size + added)
	for e := range src.Entries().All() {
		_, _, err := m.Put(e.Key(), e.Value())
		assert(err == nil, "hashmap: admitted entry rejected")
	}
	return nil
}

// Remove deletes key and returns the value it has been associated with.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	e := m.entry(key)
	if e == nil {
		var zero V
		return zero, false
	}
	m.removeEntry(e)
	return e.value, true
}

// Clear removes all entries. The bucket array is retained.
func (m *Map[K, V]) Clear() {
	if m.size > 0 {
		clear(m.buckets)
	}
	m.size = 0
	m.stamp++
}

// insert adds a new entry for key with spread hash h.
func (m *Map[K, V]) insert(h uint64, key K, value V) error {
	if m.size >= m.cfg.MaxSize {
		return errors.Wrapf(containers.ErrCapacityExceeded,
			"map has reached its maximum size %d", m.cfg.MaxSize)
	}
	if m.buckets == nil {
		m.resize()
	}
	m.seq++
	e := &Entry[K, V]{key: key, value: value, hash: h, seq: m.seq, m: m}
	idx := int(h & uint64(len(m.buckets)-1))
	b := &m.buckets[idx]
	chainLen := b.count
	b.push(e)
	m.size++
	m.stamp++
	if !b.isTree() && chainLen >= m.cfg.TreeifyThreshold {
		m.treeifyBin(idx)
	}
	for m.size > m.threshold && len(m.buckets) < MaximumCapacity {
		m.resize()
	}
	return nil
}

// removeEntry unlinks e, which must be stored in m.
func (m *Map[K, V]) removeEntry(e *Entry[K, V]) {
	b := m.bucketFor(e.hash)
	b.unlink(e)
	if b.isTree() && b.count <= m.cfg.UntreeifyThreshold {
		T().Debugf("hashmap: untreeify bin of %d entries", b.count)
		b.untreeify()
	}
	m.size--
	m.stamp++
}

// treeifyBin converts the chain at bucket idx into a tree bin, or doubles
// the table if it is still too small for tree bins.
func (m *Map[K, V]) treeifyBin(idx int) {
	if len(m.buckets) < m.cfg.MinTreeifyCapacity {
		m.resize()
		return
	}
	b := &m.buckets[idx]
	T().Debugf("hashmap: treeify bin %d of %d entries", idx, b.count)
	b.treeify()
}

func (m *Map[K, V]) admit(key K, value V) error {
	if m.cfg.RejectNilKeys && containers.IsNil(key) {
		return errors.Wrap(containers.ErrKeyNotAllowed, "hashmap: nil key")
	}
	return m.admitValue(value)
}

func (m *Map[K, V]) admitValue(value V) error {
	if m.cfg.RejectNilValues && containers.IsNil(value) {
		return errors.Wrap(containers.ErrValueNotAllowed, "hashmap: nil value")
	}
	return nil
}
