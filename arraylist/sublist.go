package arraylist

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// SubList is a view of the range [from,to) of a list.
//
// Reads and writes go through to the list, shifted by the view's offset.
// Structural changes made through the view (or through views nested inside
// it) keep the view valid; any other structural change of the list, including
// one made through an overlapping view, invalidates the view and its next
// operation fails with containers.ErrConcurrentStructuralChange.
//
// A view borrows the storage of its list and must not outlive it.
type SubList[T any] struct {
	root   *List[T]
	parent *SubList[T] // enclosing view, nil for views created from the list
	offset int        // absolute offset into root
	size   int
	stamp  uint64 // change stamp of root known to the view
}

var _ containers.Sequence[int] = (*SubList[int])(nil)

// SubList returns a view of the elements [from,to) of the list.
func (l *List[T]) SubList(from, to int) (*SubList[T], error) {
	if err := checkSubRange(from, to, l.size); err != nil {
		return nil, err
	}
	return &SubList[T]{
		root:   l,
		offset: from,
		size:   to - from,
		stamp:  l.stamp,
	}, nil
}

// SubList returns a view of the elements [from,to) of this view.
func (s *SubList[T]) SubList(from, to int) (*SubList[T], error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if err := checkSubRange(from, to, s.size); err != nil {
		return nil, err
	}
	return &SubList[T]{
		root:   s.root,
		parent: s,
		offset: s.offset + from,
		size:   to - from,
		stamp:  s.root.stamp,
	}, nil
}

func checkSubRange(from, to, size int) error {
	if from < 0 {
		return containers.OutOfRange(from, size)
	}
	if to > size {
		return containers.OutOfRange(to, size)
	}
	if from > to {
		return errors.Wrapf(containers.ErrIndexOutOfRange, "from %d > to %d", from, to)
	}
	return nil
}

// Size returns the number of elements in the view. It does not check the
// view for validity: after a structural change of the list not made through
// the view, Size reports the size the view had before, while all other
// operations fail with containers.ErrConcurrentStructuralChange.
func (s *SubList[T]) Size() int {
	return s.size
}

// Get returns the element at index of the view.
func (s *SubList[T]) Get(index int) (T, error) {
	var zero T
	if err := s.check(); err != nil {
		return zero, err
	}
	if index < 0 || index >= s.size {
		return zero, containers.OutOfRange(index, s.size)
	}
	return s.root.data[s.offset+index], nil
}

// Set replaces the element at index of the view.
func (s *SubList[T]) Set(index int, value T) (T, error) {
	var zero T
	if err := s.check(); err != nil {
		return zero, err
	}
	if index < 0 || index >= s.size {
		return zero, containers.OutOfRange(index, s.size)
	}
	return s.root.Set(s.offset+index, value)
}

// InsertAt inserts value at index of the view, growing the view and the list.
func (s *SubList[T]) InsertAt(index int, value T) error {
	if err := s.check(); err != nil {
		return err
	}
	if index < 0 || index > s.size {
		return containers.OutOfRange(index, s.size)
	}
	if err := s.root.InsertAt(s.offset+index, value); err != nil {
		return err
	}
	s.updateSizeAndStamp(1)
	return nil
}

// RemoveAt removes the element at index of the view from the list.
func (s *SubList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := s.check(); err != nil {
		return zero, err
	}
	if index < 0 || index >= s.size {
		return zero, containers.OutOfRange(index, s.size)
	}
	old, err := s.root.RemoveAt(s.offset + index)
	if err != nil {
		return zero, err
	}
	s.updateSizeAndStamp(-1)
	return old, nil
}

// Append inserts value at the end of the view, i.e. in front of the list
// element following the view.
func (s *SubList[T]) Append(value T) error {
	return s.InsertAt(s.size, value)
}

// RemoveRange removes the elements [from,to) of the view from the list.
func (s *SubList[T]) RemoveRange(from, to int) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := checkSubRange(from, to, s.size); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if err := s.root.RemoveRange(s.offset+from, s.offset+to); err != nil {
		return err
	}
	s.updateSizeAndStamp(from - to)
	return nil
}

// Clear removes all elements of the view from the list.
func (s *SubList[T]) Clear() error {
	return s.RemoveRange(0, s.size)
}

// Trim is not supported by views, which do not own storage.
func (s *SubList[T]) Trim() error {
	return errors.Wrap(containers.ErrUnsupportedOperation, "arraylist: trim of a sub-list")
}

// ToSlice returns a copy of the elements of the view.
func (s *SubList[T]) ToSlice() ([]T, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	out := make([]T, s.size)
	copy(out, s.root.data[s.offset:s.offset+s.size])
	return out, nil
}

// Cursor creates a cursor over the view, positioned in front of index.
func (s *SubList[T]) Cursor(index int) (containers.Cursor[T], error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	c, err := newCursor[T](s, index)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Iterator returns a forward iterator over the view. If the view has been
// invalidated, the iterator's first step fails.
func (s *SubList[T]) Iterator() containers.Iterator[T] {
	return &Cursor[T]{target: s, lastRet: -1, expected: s.stamp}
}

func (s *SubList[T]) check() error {
	if s.root.stamp != s.stamp {
		return errors.Wrapf(containers.ErrConcurrentStructuralChange,
			"sub-list [%d,%d)", s.offset, s.offset+s.size)
	}
	return nil
}

// updateSizeAndStamp propagates a structural change made through s to s and
// all enclosing views.
func (s *SubList[T]) updateSizeAndStamp(delta int) {
	for v := s; v != nil; v = v.parent {
		v.size += delta
		v.stamp = s.root.stamp
	}
}

// --- Cursor target ---------------------------------------------------------

func (s *SubList[T]) length() int {
	return s.size
}

func (s *SubList[T]) changeStamp() uint64 {
	return s.root.stamp
}

func (s *SubList[T]) at(index int) T {
	return s.root.data[s.offset+index]
}

func (s *SubList[T]) replace(index int, value T) error {
	_, err := s.Set(index, value)
	return err
}

func (s *SubList[T]) insert(index int, value T) error {
	return s.InsertAt(index, value)
}

func (s *SubList[T]) remove(index int) error {
	_, err := s.RemoveAt(index)
	return err
}
