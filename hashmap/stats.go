package hashmap

import "fmt"

// Stats describes the shape of a map's table.
type Stats struct {
	Buckets     int // number of buckets
	Size        int // number of entries
	UsedBuckets int // buckets holding at least one entry
	TreeBins    int // bins in tree form
	LongestBin  int // entries in the largest bin
	Resizes     int // doublings performed so far
}

// Stats returns statistics about the table of m.
func (m *Map[K, V]) Stats() Stats {
	st := Stats{
		Buckets: len(m.buckets),
		Size:    m.size,
		Resizes: m.resizes,
	}
	for i := range m.buckets {
		b := &m.buckets[i]
		if b.count > 0 {
			st.UsedBuckets++
		}
		if b.isTree() {
			st.TreeBins++
		}
		st.LongestBin = max(st.LongestBin, b.count)
	}
	return st
}

// LoadFactor returns the ratio of entries to buckets.
func (st Stats) LoadFactor() float64 {
	if st.Buckets == 0 {
		return 0
	}
	return float64(st.Size) / float64(st.Buckets)
}

func (st Stats) String() string {
	return fmt.Sprintf("%d entries in %d buckets (%d used, load %.2f), %d tree bins, longest bin %d, %d resizes",
		st.Size, st.Buckets, st.UsedBuckets, st.LoadFactor(), st.TreeBins, st.LongestBin, st.Resizes)
}
