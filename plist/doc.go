/*
Package plist implements an immutable persistent list.

A persistent list has copy-on-write behaviour: Each “modification” of the
list (appending, prepending, removal) creates a copy, leaving the original
unmodified. Under the hood, copies share almost all of their structure,
transparently to clients.

Lists are first-in-first-out: elements append at the back and leave at the
front. Internally a list is a scheduled functional queue in the manner of
Okasaki, “Purely Functional Data Structures”: an eager rear stack collects
appended elements in reverse, a partially suspended front stream holds the
remainder in order, and a schedule forces a bounded number of suspended
cells per operation. Rotating the rear into the front is thereby paid for in
constant instalments, and operations on the front run in O(1), amortized
over any access pattern and memoized across all copies of a list.

Persistent lists are inherently concurrency-safe.

Status

Experimental.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package plist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pure.plist'.
func tracer() tracing.Trace {
	return tracing.Select("pure.plist")
}
