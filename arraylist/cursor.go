package arraylist

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// cursorTarget is implemented by everything a cursor can walk: lists,
// sub-lists and fixed-size views. Indices are relative to the target.
type cursorTarget[T any] interface {
	length() int
	changeStamp() uint64
	at(index int) T
	replace(index int, value T) error
	insert(index int, value T) error
	remove(index int) error
}

// Cursor is a fail-fast, bidirectional cursor over a list or a view of a
// list. It implements containers.Cursor.
//
// A cursor sits between two elements. Next returns the element right of the
// cursor and moves the cursor over it, Previous does the same to the left.
// Remove and Set act on the element returned last by Next or Previous.
type Cursor[T any] struct {
	target   cursorTarget[T]
	pos      int    // index of the element Next would return
	lastRet  int    // index of the element returned last, -1 if none
	expected uint64 // change stamp of target known to the cursor
}

var _ containers.Cursor[int] = (*Cursor[int])(nil)

func newCursor[T any](target cursorTarget[T], index int) (*Cursor[T], error) {
	if index < 0 || index > target.length() {
		return nil, containers.OutOfRange(index, target.length())
	}
	return &Cursor[T]{
		target:   target,
		pos:      index,
		lastRet:  -1,
		expected: target.changeStamp(),
	}, nil
}

// Cursor creates a cursor positioned in front of the element at index.
// index may be equal to Size(), placing the cursor after the last element.
func (l *List[T]) Cursor(index int) (containers.Cursor[T], error) {
	c, err := newCursor[T](l, index)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Iterator returns a forward iterator starting at the first element.
func (l *List[T]) Iterator() containers.Iterator[T] {
	c, err := newCursor[T](l, 0)
	assert(err == nil, "arraylist: cannot create iterator at index 0")
	return c
}

// HasNext reports whether there is an element right of the cursor.
// After a foreign structural change HasNext reports true, so that the
// following call to Next returns the error.
func (c *Cursor[T]) HasNext() bool {
	return c.stale() || c.pos < c.target.length()
}

// HasPrevious reports whether there is an element left of the cursor.
// Like HasNext, it reports true after a foreign structural change.
func (c *Cursor[T]) HasPrevious() bool {
	return c.stale() || c.pos > 0
}

func (c *Cursor[T]) stale() bool {
	return c.target != nil && c.target.changeStamp() != c.expected
}

// Index returns the index of the element a subsequent call to Next would return.
func (c *Cursor[T]) Index() int {
	return c.pos
}

// Next returns the element right of the cursor and advances the cursor.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if err := c.check(); err != nil {
		return zero, err
	}
	i := c.pos
	if i >= c.target.length() {
		return zero, errors.Wrapf(containers.ErrNoSuchElement, "cursor at %d", i)
	}
	c.pos = i + 1
	c.lastRet = i
	return c.target.at(i), nil
}

// Previous returns the element left of the cursor and moves the cursor back.
func (c *Cursor[T]) Previous() (T, error) {
	var zero T
	if err := c.check(); err != nil {
		return zero, err
	}
	i := c.pos - 1
	if i < 0 {
		return zero, errors.Wrap(containers.ErrNoSuchElement, "cursor at start")
	}
	c.pos = i
	c.lastRet = i
	return c.target.at(i), nil
}

// Remove deletes the element returned last by Next or Previous. The cursor
// stays valid and does not skip the element that moved into the gap.
func (c *Cursor[T]) Remove() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.lastRet < 0 {
		return errors.Wrap(containers.ErrIllegalState, "remove without next or previous")
	}
	if err := c.target.remove(c.lastRet); err != nil {
		return err
	}
	c.pos = c.lastRet
	c.lastRet = -1
	c.expected = c.target.changeStamp()
	return nil
}

// Set replaces the element returned last by Next or Previous.
func (c *Cursor[T]) Set(value T) error {
	if err := c.check(); err != nil {
		return err
	}
	if c.lastRet < 0 {
		return errors.Wrap(containers.ErrIllegalState, "set without next or previous")
	}
	return c.target.replace(c.lastRet, value)
}

// Add inserts value in front of the cursor. A subsequent call to Next is not
// affected, a subsequent call to Previous returns the new element.
func (c *Cursor[T]) Add(value T) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := c.target.insert(c.pos, value); err != nil {
		return err
	}
	c.pos++
	c.lastRet = -1
	c.expected = c.target.changeStamp()
	return nil
}

func (c *Cursor[T]) check() error {
	if c == nil || c.target == nil {
		return errors.Wrap(containers.ErrIllegalState, "cursor not initialized")
	}
	if c.target.changeStamp() != c.expected {
		return errors.Wrapf(containers.ErrConcurrentStructuralChange,
			"cursor at %d", c.pos)
	}
	return nil
}
