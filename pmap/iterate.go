package pmap

import (
	"github.com/npillmayer/pure/lazy"
)

// Entry is a single key/value pair of a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Entries returns m's entries as a lazily produced stream. The order is
// unspecified, but deterministic for a given map: the trie's left-to-right
// order. The first entry costs a descent along the leftmost path; every
// further entry is produced on demand.
func (m Map[K, V]) Entries() *lazy.Stream[Entry[K, V]] {
	return stream(m.root, func() *lazy.Stream[Entry[K, V]] { return nil })
}

// Keys returns m's keys, lazily, in the order of Entries.
func (m Map[K, V]) Keys() *lazy.Stream[K] {
	return lazy.Map(m.Entries(), func(e Entry[K, V]) K { return e.Key })
}

// Values returns m's values, lazily, in the order of Entries.
func (m Map[K, V]) Values() *lazy.Stream[V] {
	return lazy.Map(m.Entries(), func(e Entry[K, V]) V { return e.Value })
}

// ForEach calls f for every entry of m, in the order of Entries.
func (m Map[K, V]) ForEach(f func(key K, value V)) {
	for s := m.Entries(); s != nil; s = s.Tail() {
		e := s.Head()
		f(e.Key, e.Value)
	}
}

// stream walks the trie in continuation-passing style, suspending the walk
// at every entry. cont produces the stream that follows n's entries.
func stream[K, V any](n node[K, V], cont func() *lazy.Stream[Entry[K, V]]) *lazy.Stream[Entry[K, V]] {
	switch t := n.(type) {
	case nil:
		return cont()
	case *leaf[K, V]:
		return chainStream(t, cont)
	case *split[K, V]:
		return stream(t.left, func() *lazy.Stream[Entry[K, V]] {
			return stream(t.right, cont)
		})
	}
	panic("pmap: unknown trie node type")
}

func chainStream[K, V any](c *leaf[K, V], cont func() *lazy.Stream[Entry[K, V]]) *lazy.Stream[Entry[K, V]] {
	if c == nil {
		return cont()
	}
	return lazy.Defer(Entry[K, V]{Key: c.key, Value: c.value}, func() *lazy.Stream[Entry[K, V]] {
		return chainStream(c.next, cont)
	})
}

// Iterator iterates a map's entries, following the protocol
//
//	for it := m.Iterator(); it.HasElem(); it.Next() {
//	    k, v := it.Elem()
//	    …
//	}
//
// The zero Iterator is exhausted.
type Iterator[K, V any] struct {
	rest *lazy.Stream[Entry[K, V]]
}

// Iterator returns an iterator over m's entries, positioned at the first.
func (m Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{rest: m.Entries()}
}

// HasElem tells if the iterator has an element to deliver.
func (it *Iterator[K, V]) HasElem() bool {
	return it.rest != nil
}

// Elem returns the entry at the iterator's position.
func (it *Iterator[K, V]) Elem() (K, V) {
	e := it.rest.Head()
	return e.Key, e.Value
}

// Next moves the iterator to the next entry.
func (it *Iterator[K, V]) Next() {
	it.rest = it.rest.Tail()
}
