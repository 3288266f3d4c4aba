package arraylist

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// FixedView is a fixed-size view of a list. Elements may be read and
// replaced; InsertAt, RemoveAt, Append and Trim, as well as a cursor's Add
// and Remove, fail with containers.ErrUnsupportedOperation.
type FixedView[T any] struct {
	list *List[T]
}

var _ containers.Sequence[int] = (*FixedView[int])(nil)

func unsupported(op string) error {
	return errors.Wrapf(containers.ErrUnsupportedOperation, "arraylist: %s on fixed-size view", op)
}

// Size returns the size of the underlying list.
func (v *FixedView[T]) Size() int {
	return v.list.size
}

// Get returns the element at index.
func (v *FixedView[T]) Get(index int) (T, error) {
	return v.list.Get(index)
}

// Set replaces the element at index.
func (v *FixedView[T]) Set(index int, value T) (T, error) {
	return v.list.Set(index, value)
}

// InsertAt is not supported.
func (v *FixedView[T]) InsertAt(int, T) error {
	return unsupported("insert")
}

// RemoveAt is not supported.
func (v *FixedView[T]) RemoveAt(int) (T, error) {
	var zero T
	return zero, unsupported("remove")
}

// Append is not supported.
func (v *FixedView[T]) Append(T) error {
	return unsupported("append")
}

// Trim is not supported.
func (v *FixedView[T]) Trim() error {
	return unsupported("trim")
}

// Cursor creates a cursor which may replace elements but not add or remove
// them.
func (v *FixedView[T]) Cursor(index int) (containers.Cursor[T], error) {
	c, err := newCursor[T](v, index)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Iterator returns a forward iterator. Its Remove is not supported.
func (v *FixedView[T]) Iterator() containers.Iterator[T] {
	c, err := newCursor[T](v, 0)
	assert(err == nil, "arraylist: cannot create fixed-size iterator")
	return c
}

func (v *FixedView[T]) length() int                  { return v.list.size }
func (v *FixedView[T]) changeStamp() uint64          { return v.list.stamp }
func (v *FixedView[T]) at(index int) T               { return v.list.data[index] }
func (v *FixedView[T]) replace(index int, x T) error { return v.list.replace(index, x) }
func (v *FixedView[T]) insert(int, T) error          { return unsupported("insert") }
func (v *FixedView[T]) remove(int) error             { return unsupported("remove") }
