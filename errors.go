package containers

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/cockroachdb/errors"

var (
	// ErrIndexOutOfRange is flagged whenever a positional index lies outside
	// the valid range of a sequence.
	ErrIndexOutOfRange = errors.New("containers: index out of range")
	// ErrKeyNotAllowed signals a key rejected by a container's configuration,
	// e.g. a nil key for a map configured to reject nil keys.
	ErrKeyNotAllowed = errors.New("containers: key not allowed")
	// ErrValueNotAllowed signals a value or element rejected by a container's
	// configuration.
	ErrValueNotAllowed = errors.New("containers: value not allowed")
	// ErrConcurrentStructuralChange signals that a cursor, iterator or view has
	// been invalidated by a structural change it did not make itself.
	// Iteration has to be restarted.
	ErrConcurrentStructuralChange = errors.New("containers: concurrent structural change")
	// ErrCapacityExceeded signals a requested size beyond the maximum
	// representable capacity of a container.
	ErrCapacityExceeded = errors.New("containers: capacity exceeded")
	// ErrUnsupportedOperation signals a capability a container variant does not
	// implement, e.g. inserting into a fixed-size view.
	ErrUnsupportedOperation = errors.New("containers: unsupported operation")
	// ErrNoSuchElement is returned by cursors stepping beyond either end.
	ErrNoSuchElement = errors.New("containers: no such element")
	// ErrIllegalState is returned by cursor operations which need a preceding
	// call to Next or Previous.
	ErrIllegalState = errors.New("containers: illegal cursor state")
	// ErrInvalidConfig signals an invalid container configuration.
	ErrInvalidConfig = errors.New("containers: invalid configuration")
	// ErrBrokenInvariant is reported by the Check methods of containers whose
	// internal structure has been found inconsistent.
	ErrBrokenInvariant = errors.New("containers: broken invariant")
)

// OutOfRange wraps ErrIndexOutOfRange with the offending index and the size
// it has been checked against.
func OutOfRange(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, size)
}
