/*
Package hashmap implements an associative container backed by a hash table
with separate chaining.

Buckets and bins

The table is an array of N buckets, N a power of two. A key's 64-bit hash is
spread by folding its upper half into its lower half,

	spread(h) = h ^ (h >> 32)

and the entry lives in bucket spread(h) & (N-1). The spread hash is cached per
entry, so resizing never has to hash a key again. The bucket array is
allocated on first insertion and doubled whenever the number of entries
exceeds N × LoadFactor. Doubling splits every bin in two, on bit N of the
cached hash: entries with the bit clear stay in bucket j, the others move to
bucket j+N.

A bucket holds a bin of entries, kept as a doubly linked chain. Chains which
grow beyond TreeifyThreshold entries in a table of at least
MinTreeifyCapacity buckets are escalated to tree form: the bin additionally
carries a balanced B-tree index over its entries, ordered by spread hash and
then by the map's Compare function or, lacking one, by insertion sequence.
This bounds lookups to O(log n) even for pathological hash distributions.
Bins shrinking to UntreeifyThreshold entries drop the index again. In small
tables an overlong chain triggers a resize instead.

	Operation         |  expected   |  worst case
	------------------+-------------+-------------
	Get, Put, Remove  |  O(1)       |  O(log n)
	Resize            |  O(n)       |  O(n)

Fail-fast views

Keys, Values and Entries return live views of the map. Their iterators
remember the map's change stamp, which is incremented whenever a key is
added or removed, the table is resized, or the map is cleared. Replacing the
value of an existing key does not count as a structural change. An iterator
whose map has been changed by anyone but itself fails with
containers.ErrConcurrentStructuralChange.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hashmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
