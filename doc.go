/*
Package containers offers general-purpose in-memory containers and the small
capability interfaces they share.

Containers

Two engines carry the weight of this module:

  - package arraylist implements an ordered sequence on top of a single
    contiguous backing store with geometric (≈1.5×) growth, explicit trimming,
    fail-fast bidirectional cursors and sub-range views;
  - package hashmap implements an associative map on top of a power-of-two
    bucket array with incremental capacity doubling, lo/hi bucket splitting and
    tree-shaped bins for heavily colliding buckets.

This package holds what both engines agree on: the capability interfaces
Sequence, Cursor, Iterator, View and AssociativeView, and the error values
clients test against with errors.Is.

Fail-fast iteration

Every container carries a structural change stamp. Cursors, iterators and
views snapshot the stamp when they are created and compare it on every step.
A structural change made by anyone other than the cursor itself surfaces as
ErrConcurrentStructuralChange on the cursor's next step; the iteration has to
be restarted by the caller. Containers are meant for a single owner: no
operation locks, blocks or suspends.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
