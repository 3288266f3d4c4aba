package arraylist

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// List is a sequence backed by a contiguous, growable array.
//
// A list created by
//
//	List[T]{}
//
// is a valid, empty list and behaves like one created by New.
//
// Lists are not safe for concurrent mutation. Readers may share a list only
// as long as the owner does not change it.
type List[T any] struct {
	data      []T // backing store; len(data) is the capacity
	size      int
	stamp     uint64 // structural change counter
	maxCap    int    // 0 means MaxArraySize
	sized     bool   // false: first growth allocates DefaultCapacity
	rejectNil bool
	grows     int // number of reallocations
}

var _ containers.Sequence[int] = (*List[int])(nil)

// New creates an empty list. Storage for DefaultCapacity elements is
// allocated on first insertion.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithCapacity creates an empty list with a backing store of exactly
// capacity slots.
func NewWithCapacity[T any](capacity int) (*List[T], error) {
	if capacity == 0 {
		return &List[T]{sized: true}, nil
	}
	return NewWithConfig[T](Config{Capacity: capacity})
}

// NewWithConfig creates an empty list with validated configuration.
func NewWithConfig[T any](cfg Config) (*List[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	l := &List[T]{
		maxCap:    cfg.MaxCapacity,
		rejectNil: cfg.RejectNil,
	}
	if cfg.Capacity > 0 {
		l.data = make([]T, cfg.Capacity)
		l.sized = true
	}
	return l, nil
}

// From creates a list holding the given values, with capacity equal to their
// number.
func From[T any](values ...T) *List[T] {
	l := &List[T]{sized: true}
	if len(values) > 0 {
		l.data = make([]T, len(values))
		copy(l.data, values)
		l.size = len(values)
	}
	return l
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Capacity returns the number of slots of the backing store.
func (l *List[T]) Capacity() int {
	return len(l.data)
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, containers.OutOfRange(index, l.size)
	}
	return l.data[index], nil
}

// Set replaces the element at index and returns the element previously stored
// there. Set is not a structural change: cursors and views stay valid.
func (l *List[T]) Set(index int, value T) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, containers.OutOfRange(index, l.size)
	}
	if err := l.admit(value); err != nil {
		return zero, err
	}
	old := l.data[index]
	l.data[index] = value
	return old, nil
}

// Append adds value at the end of the list.
func (l *List[T]) Append(value T) error {
	if err := l.admit(value); err != nil {
		return err
	}
	if err := l.ensureCapacity(l.size + 1); err != nil {
		return err
	}
	l.data[l.size] = value
	l.size++
	l.stamp++
	return nil
}

// InsertAt inserts value at index, shifting the elements at [index,Size())
// one slot to the right. index may be equal to Size().
func (l *List[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.size {
		return containers.OutOfRange(index, l.size)
	}
	if err := l.admit(value); err != nil {
		return err
	}
	if err := l.ensureCapacity(l.size + 1); err != nil {
		return err
	}
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = value
	l.size++
	l.stamp++
	return nil
}

// RemoveAt removes the element at index, shifting the elements after it one
// slot to the left, and returns the removed element.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, containers.OutOfRange(index, l.size)
	}
	old := l.data[index]
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	l.size--
	l.data[l.size] = zero // drop the reference held by the vacated slot
	l.stamp++
	return old, nil
}

// EnsureCapacity grows the backing store, if necessary, to hold at least
// minCapacity elements without further reallocation.
func (l *List[T]) EnsureCapacity(minCapacity int) error {
	return l.ensureCapacity(minCapacity)
}

// Trim reallocates the backing store to exactly Size() slots. An empty list
// drops its backing store altogether.
func (l *List[T]) Trim() error {
	if l.size == len(l.data) {
		return nil
	}
	tracer().Debugf("arraylist: trim capacity %d to %d", len(l.data), l.size)
	if l.size == 0 {
		l.data = nil
	} else {
		data := make([]T, l.size)
		copy(data, l.data[:l.size])
		l.data = data
	}
	l.sized = true
	return nil
}

// --- Growth ----------------------------------------------------------------

func (l *List[T]) maxCapacity() int {
	if l.maxCap == 0 {
		return MaxArraySize
	}
	return l.maxCap
}

func (l *List[T]) ensureCapacity(minCapacity int) error {
	if minCapacity <= len(l.data) {
		return nil
	}
	return l.grow(minCapacity)
}

// grow reallocates the backing store to
//
//	max(minCapacity, C + C/2)
//
// capped at the maximum capacity. Default-constructed lists start with
// DefaultCapacity slots.
func (l *List[T]) grow(minCapacity int) error {
	limit := l.maxCapacity()
	if minCapacity < 0 || minCapacity > limit {
		return errors.Wrapf(containers.ErrCapacityExceeded,
			"required capacity %d exceeds maximum %d", minCapacity, limit)
	}
	oldCap := len(l.data)
	newCap := oldCap + oldCap>>1
	if newCap < minCapacity {
		newCap = minCapacity
	}
	if !l.sized && l.data == nil && newCap < DefaultCapacity {
		newCap = DefaultCapacity
	}
	if newCap > limit || newCap < 0 {
		newCap = limit
	}
	data := make([]T, newCap)
	copy(data, l.data[:l.size])
	l.data = data
	l.sized = true
	l.grows++
	return nil
}

func (l *List[T]) admit(value T) error {
	if l.rejectNil && containers.IsNil(value) {
		return errors.Wrap(containers.ErrValueNotAllowed, "arraylist: nil element")
	}
	return nil
}

// --- Cursor target ---------------------------------------------------------

func (l *List[T]) changeStamp() uint64 {
	return l.stamp
}

func (l *List[T]) at(index int) T {
	return l.data[index]
}

func (l *List[T]) replace(index int, value T) error {
	_, err := l.Set(index, value)
	return err
}

func (l *List[T]) insert(index int, value T) error {
	return l.InsertAt(index, value)
}

func (l *List[T]) remove(index int) error {
	_, err := l.RemoveAt(index)
	return err
}

func (l *List[T]) length() int {
	return l.size
}
