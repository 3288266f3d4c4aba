package arraylist

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// AppendAll appends values at the end of the list, in order. The backing
// store grows at most once.
func (l *List[T]) AppendAll(values ...T) error {
	return l.InsertAllAt(l.size, values...)
}

// InsertAllAt inserts values at index, in order, shifting the elements at
// [index,Size()) to the right.
//
// Either all values are inserted or, if one of them is rejected or capacity
// is exhausted, none.
func (l *List[T]) InsertAllAt(index int, values ...T) error {
	if index < 0 || index > l.size {
		return containers.OutOfRange(index, l.size)
	}
	n := len(values)
	if n == 0 {
		return nil
	}
	for _, v := range values {
		if err := l.admit(v); err != nil {
			return err
		}
	}
	if n > l.maxCapacity()-l.size {
		return errors.Wrapf(containers.ErrCapacityExceeded,
			"cannot add %d elements to list of size %d", n, l.size)
	}
	if err := l.ensureCapacity(l.size + n); err != nil {
		return err
	}
	copy(l.data[index+n:l.size+n], l.data[index:l.size])
	copy(l.data[index:index+n], values)
	l.size += n
	l.stamp++
	return nil
}

// RemoveRange removes the elements [from,to).
func (l *List[T]) RemoveRange(from, to int) error {
	if err := checkSubRange(from, to, l.size); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	copy(l.data[from:], l.data[to:l.size])
	newSize := l.size - (to - from)
	clear(l.data[newSize:l.size])
	l.size = newSize
	l.stamp++
	return nil
}

// RemoveIf removes all elements for which pred returns true and returns their
// number. The relative order of the remaining elements is kept.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	if pred == nil {
		return 0
	}
	w := 0
	for r := 0; r < l.size; r++ {
		if !pred(l.data[r]) {
			l.data[w] = l.data[r]
			w++
		}
	}
	removed := l.size - w
	if removed > 0 {
		clear(l.data[w:l.size])
		l.size = w
		l.stamp++
	}
	return removed
}

// Clear removes all elements. The capacity is retained.
func (l *List[T]) Clear() {
	clear(l.data[:l.size])
	l.size = 0
	l.stamp++
}

// SortFunc sorts the list with cmp, keeping the order of equal elements.
// Sorting counts as a structural change.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(l.data[:l.size], cmp)
	l.stamp++
}

// Clone returns a copy of the list with capacity equal to its size. Elements
// are copied shallowly.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		maxCap:    l.maxCap,
		sized:     true,
		rejectNil: l.rejectNil,
		size:      l.size,
	}
	if l.size > 0 {
		c.data = make([]T, l.size)
		copy(c.data, l.data[:l.size])
	}
	return c
}

// ToSlice returns a copy of the elements of the list.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.size)
	copy(out, l.data[:l.size])
	return out
}

// FixedSize returns a view of the list which supports reading and replacing
// elements but refuses every change of size with
// containers.ErrUnsupportedOperation.
func (l *List[T]) FixedSize() *FixedView[T] {
	return &FixedView[T]{list: l}
}

// --- Searching -------------------------------------------------------------

// IndexOf returns the index of the first occurrence of value in l, or -1.
func IndexOf[T comparable](l *List[T], value T) int {
	return slices.Index(l.data[:l.size], value)
}

// LastIndexOf returns the index of the last occurrence of value in l, or -1.
func LastIndexOf[T comparable](l *List[T], value T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.data[i] == value {
			return i
		}
	}
	return -1
}

// Contains reports whether value is an element of l.
func Contains[T comparable](l *List[T], value T) bool {
	return IndexOf(l, value) >= 0
}
