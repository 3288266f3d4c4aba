/*
Package arraylist implements a sequence container backed by a single
contiguous array.

Capacity and growth

A list owns one backing store of capacity C ≥ Size(). Appending to a full list
reallocates the store to max(required, C + C/2), which keeps appends at
amortized O(1) and performs only O(log n) reallocations for n appends. A list
created by New (or the zero value) allocates DefaultCapacity slots on first
use. Lists never shrink by themselves; Trim reallocates the store to exactly
Size() elements.

	Operation     |   List
	--------------+-----------
	Get, Set      |   O(1)
	Append        |   O(1) amortized
	InsertAt      |   O(n)
	RemoveAt      |   O(n)
	Trim          |   O(n)

Fail-fast cursors and views

Every operation which changes the number of elements increments the list's
change stamp; Set does not. Cursors (see Cursor) and sub-range views (see
SubList) remember the stamp and refuse to continue with
containers.ErrConcurrentStructuralChange once the list has been changed
behind their back. A cursor's own Remove and Add keep the cursor valid.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arraylist

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
