package arraylist

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func contents[T any](t *testing.T, l *List[T]) []T {
	t.Helper()
	if err := l.Check(); err != nil {
		t.Fatalf("list invariants broken: %v", err)
	}
	return l.ToSlice()
}

func TestAppendInsertRemoveScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	seq := New[int]()
	if err := seq.Append(1); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := seq.Append(2); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := seq.InsertAt(1, 9); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := contents(t, seq); !slices.Equal(got, []int{1, 9, 2}) {
		t.Fatalf("expected [1 9 2], got %v", got)
	}
	x, err := seq.RemoveAt(0)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if x != 1 {
		t.Errorf("expected removed element to be 1, is %d", x)
	}
	if got := contents(t, seq); !slices.Equal(got, []int{9, 2}) {
		t.Fatalf("expected [9 2], got %v", got)
	}
}

func TestZeroValueList(t *testing.T) {
	var l List[string]
	if l.Size() != 0 || l.Capacity() != 0 {
		t.Fatalf("unexpected zero list state size=%d cap=%d", l.Size(), l.Capacity())
	}
	if err := l.Append("a"); err != nil {
		t.Fatalf("append to zero list failed: %v", err)
	}
	if l.Capacity() != DefaultCapacity {
		t.Errorf("expected lazily allocated capacity %d, got %d", DefaultCapacity, l.Capacity())
	}
}

func TestIndexBounds(t *testing.T) {
	l := From(1, 2, 3)
	type tc struct {
		name string
		op   func() error
	}
	cases := []tc{
		{"get -1", func() error { _, err := l.Get(-1); return err }},
		{"get size", func() error { _, err := l.Get(3); return err }},
		{"set size", func() error { _, err := l.Set(3, 0); return err }},
		{"insert size+1", func() error { return l.InsertAt(4, 0) }},
		{"insert -1", func() error { return l.InsertAt(-1, 0) }},
		{"remove size", func() error { _, err := l.RemoveAt(3); return err }},
		{"remove range", func() error { return l.RemoveRange(2, 4) }},
		{"cursor size+1", func() error { _, err := l.Cursor(4); return err }},
	}
	for _, c := range cases {
		stamp := l.stamp
		err := c.op()
		if !errors.Is(err, containers.ErrIndexOutOfRange) {
			t.Errorf("%s: expected ErrIndexOutOfRange, got %v", c.name, err)
		}
		if l.stamp != stamp || l.Size() != 3 {
			t.Errorf("%s: failing operation changed the list", c.name)
		}
	}
	if err := l.InsertAt(3, 4); err != nil {
		t.Fatalf("insert at size should be allowed, got %v", err)
	}
}

func TestSetIsNotStructural(t *testing.T) {
	l := From("a", "b")
	stamp := l.stamp
	old, err := l.Set(1, "x")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if old != "b" {
		t.Errorf("expected old value 'b', got %q", old)
	}
	if l.stamp != stamp {
		t.Errorf("set must not bump the change stamp")
	}
}

func TestGrowthPolicy(t *testing.T) {
	l, err := NewWithCapacity[int](4)
	if err != nil {
		t.Fatal(err)
	}
	caps := []int{}
	for i := range 20 {
		if err := l.Append(i); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
		if len(caps) == 0 || caps[len(caps)-1] != l.Capacity() {
			caps = append(caps, l.Capacity())
		}
	}
	// 4 → 6 → 9 → 13 → 19 → 28
	if want := []int{4, 6, 9, 13, 19, 28}; !slices.Equal(caps, want) {
		t.Fatalf("expected capacity sequence %v, got %v", want, caps)
	}
}

func TestGrowthAmortization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	l := New[int]()
	const n = 100000
	for i := range n {
		if err := l.Append(i); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}
	// ⌈log₁.₅(n/10)⌉ + 1 reallocations are expected
	if l.grows > 2*bitsLen(n) {
		t.Errorf("too many reallocations for %d appends: %d", n, l.grows)
	}
	t.Logf("%d appends performed %d reallocations, capacity is %d", n, l.grows, l.Capacity())
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
}

func bitsLen(n int) int {
	b := 0
	for ; n > 0; n >>= 1 {
		b++
	}
	return b
}

func TestCapacityExceeded(t *testing.T) {
	l, err := NewWithConfig[int](Config{MaxCapacity: 5})
	if err != nil {
		t.Fatal(err)
	}
	for i := range 5 {
		if err := l.Append(i); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}
	if l.Capacity() != 5 {
		t.Errorf("expected capacity to be capped at 5, got %d", l.Capacity())
	}
	if err := l.Append(5); !errors.Is(err, containers.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if err := l.InsertAllAt(0, 7, 8); !errors.Is(err, containers.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded for bulk insert, got %v", err)
	}
	if got := contents(t, l); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("failed insert changed the list: %v", got)
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := NewWithConfig[int](Config{Capacity: -1}); !errors.Is(err, containers.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative capacity, got %v", err)
	}
	if _, err := NewWithConfig[int](Config{Capacity: 10, MaxCapacity: 5}); !errors.Is(err, containers.ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded for capacity beyond maximum, got %v", err)
	}
}

func TestTrim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	l := From(1, 2, 3)
	if err := l.AppendAll(4); err != nil { // capacity 3 → 4
		t.Fatal(err)
	}
	if err := l.Append(5); err != nil { // capacity 4 → 6
		t.Fatal(err)
	}
	if l.Capacity() != 6 {
		t.Fatalf("expected capacity 6 after growth, got %d", l.Capacity())
	}
	stamp := l.stamp
	if err := l.Trim(); err != nil {
		t.Fatal(err)
	}
	if l.Capacity() != 5 {
		t.Errorf("expected capacity 5 after trim, got %d", l.Capacity())
	}
	if l.stamp != stamp {
		t.Errorf("trim must not invalidate cursors")
	}
	if got := contents(t, l); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("trim changed contents: %v", got)
	}
	l.Clear()
	if err := l.Trim(); err != nil {
		t.Fatal(err)
	}
	if l.Capacity() != 0 || l.data != nil {
		t.Errorf("expected empty backing store after trimming an empty list")
	}
	if err := l.Append(1); err != nil {
		t.Fatal(err)
	}
	if l.Capacity() != 1 {
		t.Errorf("expected trimmed list to grow to capacity 1, got %d", l.Capacity())
	}
}

func TestRemovedSlotsAreCleared(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	l := From(a, b, c)
	if _, err := l.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if l.data[2] != nil {
		t.Errorf("vacated slot still references removed element")
	}
	l.RemoveIf(func(p *int) bool { return p == b })
	if l.data[1] != nil {
		t.Errorf("slot vacated by RemoveIf still holds a reference")
	}
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestRejectNil(t *testing.T) {
	l, err := NewWithConfig[*int](Config{RejectNil: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Append(nil); !errors.Is(err, containers.ErrValueNotAllowed) {
		t.Fatalf("expected ErrValueNotAllowed, got %v", err)
	}
	x := 1
	if err := l.AppendAll(&x, nil); !errors.Is(err, containers.ErrValueNotAllowed) {
		t.Fatalf("expected ErrValueNotAllowed for bulk append, got %v", err)
	}
	if l.Size() != 0 {
		t.Errorf("rejected bulk append must not add elements")
	}
}

func TestBulkOperations(t *testing.T) {
	l := New[int]()
	if err := l.AppendAll(1, 2, 3, 4, 5); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertAllAt(2, 10, 11); err != nil {
		t.Fatal(err)
	}
	if got := contents(t, l); !slices.Equal(got, []int{1, 2, 10, 11, 3, 4, 5}) {
		t.Fatalf("unexpected contents after InsertAllAt: %v", got)
	}
	if err := l.RemoveRange(1, 4); err != nil {
		t.Fatal(err)
	}
	if got := contents(t, l); !slices.Equal(got, []int{1, 3, 4, 5}) {
		t.Fatalf("unexpected contents after RemoveRange: %v", got)
	}
	n := l.RemoveIf(func(x int) bool { return x%2 == 1 })
	if n != 3 {
		t.Errorf("expected 3 removed elements, got %d", n)
	}
	if got := contents(t, l); !slices.Equal(got, []int{4}) {
		t.Fatalf("unexpected contents after RemoveIf: %v", got)
	}
}

func TestSearchAndClone(t *testing.T) {
	l := From("a", "b", "a", "c")
	if i := IndexOf(l, "a"); i != 0 {
		t.Errorf("IndexOf(a) = %d, want 0", i)
	}
	if i := LastIndexOf(l, "a"); i != 2 {
		t.Errorf("LastIndexOf(a) = %d, want 2", i)
	}
	if Contains(l, "x") {
		t.Errorf("list should not contain 'x'")
	}
	c := l.Clone()
	if _, err := c.Set(0, "z"); err != nil {
		t.Fatal(err)
	}
	if v, _ := l.Get(0); v != "a" {
		t.Errorf("clone shares storage with original")
	}
	if c.Capacity() != 4 {
		t.Errorf("expected clone capacity 4, got %d", c.Capacity())
	}
}

func TestSortFunc(t *testing.T) {
	l := From(3, 1, 2)
	it := l.Iterator()
	l.SortFunc(func(a, b int) int { return a - b })
	if got := contents(t, l); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected order after sort: %v", got)
	}
	if _, err := it.Next(); !errors.Is(err, containers.ErrConcurrentStructuralChange) {
		t.Errorf("expected sorting to invalidate iterators, got %v", err)
	}
}

func TestForEachDetectsChange(t *testing.T) {
	l := From(1, 2, 3)
	err := l.ForEach(func(i, v int) bool {
		if i == 1 {
			_ = l.Append(4)
		}
		return true
	})
	if !errors.Is(err, containers.ErrConcurrentStructuralChange) {
		t.Fatalf("expected ErrConcurrentStructuralChange, got %v", err)
	}
}

func TestRangePanicsOnChange(t *testing.T) {
	l := From(1, 2, 3)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, containers.ErrConcurrentStructuralChange) {
			t.Fatalf("expected panic with ErrConcurrentStructuralChange, got %v", r)
		}
	}()
	for i := range l.Values() {
		if i == 2 {
			_, _ = l.RemoveAt(0)
		}
	}
}
