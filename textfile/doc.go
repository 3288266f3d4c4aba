/*
Package textfile provides helpers to read UTF-8 text and HTML files as
streams of words.

Words are found by breaking the input at line-wrap opportunities (UAX #14)
and splitting the resulting fragments at non-letter runes. They are
case-folded, so that "Straße", "STRASSE" and "strasse" count as one word.

A Loader reads any number of files concurrently and broadcasts their words
in batches to all of its subscribers. This decouples reading, which may be
parallel, from consumers owning single-threaded containers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
