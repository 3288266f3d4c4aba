package hashmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func bucketKeys(m *Map[int, int], j int) []int {
	keys := []int{}
	for e := m.buckets[j].head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

func TestResizeKeepsAllEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	m := New[int, int]()
	want := map[int]int{}
	for i := range 1000 {
		mustPut(t, m, i, i)
		want[i] = i
	}
	for i := 0; i < 1000; i += 3 {
		mustPut(t, m, i, -i)
		want[i] = -i
	}
	checked(t, m)
	st := m.Stats()
	if st.Resizes < 2 {
		t.Fatalf("expected at least 2 resizes, stats are %v", st)
	}
	if st.Buckets != 2048 {
		t.Errorf("expected 2048 buckets for 1000 entries, got %d", st.Buckets)
	}
	got := map[int]int{}
	for k, v := range m.All() {
		if _, dup := got[k]; dup {
			t.Fatalf("key %d visited twice", k)
		}
		got[k] = v
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("map content differs after resizing (-want +got):\n%s", diff)
	}
	for k, v := range want {
		if x, ok := m.Get(k); !ok || x != v {
			t.Fatalf("get(%d) = %d, %v; want %d", k, x, ok, v)
		}
	}
}

func TestResizeSplitsOnHashBit(t *testing.T) {
	m, err := NewWithConfig(Config[int, int]{InitialCapacity: 4, Hasher: identityHasher{}})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []int{1, 5, 9} {
		mustPut(t, m, k, k)
	}
	if m.Capacity() != 4 {
		t.Fatalf("expected 4 buckets before resize, got %d", m.Capacity())
	}
	if diff := cmp.Diff([]int{1, 5, 9}, bucketKeys(m, 1)); diff != "" {
		t.Fatalf("unexpected chain in bucket 1 (-want +got):\n%s", diff)
	}
	mustPut(t, m, 13, 13) // size 4 exceeds threshold 3
	if m.Capacity() != 8 {
		t.Fatalf("expected 8 buckets after resize, got %d", m.Capacity())
	}
	if diff := cmp.Diff([]int{1, 9}, bucketKeys(m, 1)); diff != "" {
		t.Errorf("unexpected lo half (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 13}, bucketKeys(m, 5)); diff != "" {
		t.Errorf("unexpected hi half (-want +got):\n%s", diff)
	}
	checked(t, m)
}

func TestTreeBinSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	type tc struct {
		name       string
		colliding  []int // keys landing in bucket 7 of 64
		treeBins   int   // tree bins after doubling to 128
		lo, hiSize int
	}
	keys := func(n, stride int) []int {
		ks := make([]int, n)
		for i := range ks {
			ks[i] = 7 + i*stride
		}
		return ks
	}
	cases := []tc{
		{"both halves trees", keys(16, 64), 2, 8, 8},
		{"both halves chains", keys(10, 64), 0, 5, 5},
		{"unsplit tree", keys(9, 128), 1, 9, 0},
	}
	for _, c := range cases {
		m, err := NewWithConfig(Config[int, int]{InitialCapacity: 64, Hasher: identityHasher{}})
		if err != nil {
			t.Fatal(err)
		}
		for _, k := range c.colliding {
			mustPut(t, m, k, k)
		}
		if !m.buckets[7].isTree() {
			t.Fatalf("%s: expected bucket 7 to be a tree bin", c.name)
		}
		// fill to 49 entries, exceeding threshold 48, with keys in buckets 8…56
		for j := 0; m.Size() < 49; j++ {
			mustPut(t, m, 8+j, 0)
		}
		checked(t, m)
		st := m.Stats()
		if st.Buckets != 128 || st.Resizes != 1 {
			t.Fatalf("%s: expected one resize to 128 buckets, stats are %v", c.name, st)
		}
		if st.TreeBins != c.treeBins {
			t.Errorf("%s: expected %d tree bins, have %d", c.name, c.treeBins, st.TreeBins)
		}
		if m.buckets[7].count != c.lo || m.buckets[71].count != c.hiSize {
			t.Errorf("%s: expected split %d/%d, got %d/%d", c.name, c.lo, c.hiSize,
				m.buckets[7].count, m.buckets[71].count)
		}
		for _, k := range c.colliding {
			if v, ok := m.Get(k); !ok || v != k {
				t.Errorf("%s: lost key %d after split", c.name, k)
			}
		}
	}
}
