package arraylist

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
)

// Check validates the structural invariants of the list:
//
//	0 ≤ Size() ≤ Capacity() ≤ maximum capacity
//
// and all slots beyond Size() hold zero values, i.e. no stale references.
//
// This checker is meant for tests.
func (l *List[T]) Check() error {
	if l == nil {
		return errors.Wrap(containers.ErrBrokenInvariant, "nil list")
	}
	if l.size < 0 || l.size > len(l.data) {
		return errors.Wrapf(containers.ErrBrokenInvariant,
			"size %d outside [0,%d]", l.size, len(l.data))
	}
	if len(l.data) > l.maxCapacity() {
		return errors.Wrapf(containers.ErrBrokenInvariant,
			"capacity %d exceeds maximum %d", len(l.data), l.maxCapacity())
	}
	for i := l.size; i < len(l.data); i++ {
		if !reflect.ValueOf(&l.data[i]).Elem().IsZero() {
			return errors.Wrapf(containers.ErrBrokenInvariant,
				"stale element in unused slot %d", i)
		}
	}
	return nil
}
