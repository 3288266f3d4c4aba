package hashmap

// resize allocates the bucket array or doubles it.
//
// Doubling splits every bin j in two, on bit oldCap of the cached hash: the
// "lo" half stays at j, the "hi" half moves to j+oldCap. Both halves keep the
// relative order of their entries. Halves of tree bins keep tree form unless
// they hold no more than UntreeifyThreshold entries.
func (m *Map[K, V]) resize() {
	oldCap := len(m.buckets)
	if oldCap >= MaximumCapacity {
		m.threshold = thresholdFor(MaximumCapacity, m.cfg.LoadFactor)
		return
	}
	newCap := m.initCap
	if oldCap > 0 {
		newCap = oldCap << 1
	}
	old := m.buckets
	m.buckets = make([]bin[K, V], newCap)
	m.threshold = thresholdFor(newCap, m.cfg.LoadFactor)
	if oldCap == 0 {
		return
	}
	bit := uint64(oldCap)
	for j := range old {
		b := &old[j]
		if b.count == 0 {
			continue
		}
		lo, hi := &m.buckets[j], &m.buckets[j+oldCap]
		for e := b.head; e != nil; {
			next := e.next
			if e.hash&bit == 0 {
				lo.pushChain(e)
			} else {
				hi.pushChain(e)
			}
			e = next
		}
		if b.isTree() {
			m.splitTree(b, lo, hi)
		}
	}
	m.stamp++
	m.resizes++
	T().Debugf("hashmap: resized table from %d to %d buckets, size is %d", oldCap, newCap, m.size)
}

// splitTree decides the form of the halves lo and hi of tree bin b.
func (m *Map[K, V]) splitTree(b, lo, hi *bin[K, V]) {
	for _, half := range []*bin[K, V]{lo, hi} {
		switch {
		case half.count == 0 || half.count <= m.cfg.UntreeifyThreshold:
			// chain form
		case half.count == b.count:
			half.tree = b.tree // bin did not split
		default:
			half.treeify()
		}
	}
}

// presize grows the table to hold n entries without exceeding the load
// factor. Before the first insertion only the initial capacity is adjusted.
func (m *Map[K, V]) presize(n int) {
	if m.buckets == nil {
		want := tableSizeFor(int(float64(n)/m.cfg.LoadFactor) + 1)
		if want > m.initCap {
			m.initCap = want
		}
		return
	}
	for n > m.threshold && len(m.buckets) < MaximumCapacity {
		m.resize()
	}
}
