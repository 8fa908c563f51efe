/*
Package pmap implements an immutable persistent map.

A persistent map has copy-on-write behaviour: Each “modification” of the map
(insertion, replacement or deletion) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write re-creates only the nodes along the
path that changed. Most of the structure/memory is shared between original
and copy, transparently to clients.

Keys are located by a 32 bit hash code (see package hash). Internally a map
is a binary Patricia trie over the hash bits, branching at the lowest bit
position in which hashes diverge, in the manner of Okasaki/Gill, “Fast
Mergeable Integer Maps”. Keys with fully equal hash codes live in a small
collision chain.

Persistent maps are inherently concurrency-safe.

Status

Experimental.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pure.pmap'.
func tracer() tracing.Trace {
	return tracing.Select("pure.pmap")
}
