package pmap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/pure/hash"
)

// Map is an immutable persistent map from keys of type K to values of type V.
//
// Maps are values: operations that “change” a map return a new one and leave
// the receiver untouched, sharing unchanged parts of the structure between
// the two. Every key is identified by the hash.Hasher the map was created
// with.
//
// The zero Map has no hasher and cannot be used; create maps with Immutable.
type Map[K, V any] struct {
	hasher hash.Hasher[K]
	root   node[K, V]
}

// Immutable creates a persistent map, holding the given entries. Keys are
// hashed and compared by hasher.
//
// The order of type parameters is swapped, as K can be inferred from the
// hasher argument:
//
//	m := pmap.Immutable[int](hash.Strings())
//
func Immutable[V, K any](hasher hash.Hasher[K], entries ...Entry[K, V]) Map[K, V] {
	assertThat(hasher != nil, "hasher must not be nil")
	m := Map[K, V]{hasher: hasher}
	return m.WithAll(entries...)
}

// With returns a map holding value under key, plus all of m's other entries.
// A value already stored under an equal key is replaced. The result shares
// every node with m except those on the changed path.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	h := m.keyhash(key)
	m.root = insert(m.root, h, key, value, m.hasher)
	return m
}

// WithDeleted returns a map without an entry for key. Deleting a key that is
// not present returns a map structurally equal to m.
func (m Map[K, V]) WithDeleted(key K) Map[K, V] {
	h := m.keyhash(key)
	m.root = remove[K, V](m.root, h, key, m.hasher)
	return m
}

// WithAll returns a map holding all of m's entries plus the given ones,
// folded in from left to right. Of duplicate keys, the rightmost wins.
func (m Map[K, V]) WithAll(entries ...Entry[K, V]) Map[K, V] {
	for _, e := range entries {
		m = m.With(e.Key, e.Value)
	}
	return m
}

// Find returns the value stored under key, if any.
func (m Map[K, V]) Find(key K) (V, bool) {
	h := m.keyhash(key)
	return lookup[K, V](m.root, h, key, m.hasher)
}

// Get is Find with an optional-value result.
func (m Map[K, V]) Get(key K) maybe.Maybe[V] {
	if v, ok := m.Find(key); ok {
		return maybe.Just(v)
	}
	return maybe.Nothing[V]()
}

// Has tells if an entry for key is present in m.
func (m Map[K, V]) Has(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Len returns the number of entries in m. It recounts on every call: O(n).
func (m Map[K, V]) Len() int {
	return count[K, V](m.root)
}

// IsEmpty tells if m holds no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Equal compares two maps structurally: they are equal if they hold equal
// keys with values equal under eq, regardless of the order entries were
// added in. Both maps must use the same hashing.
func (m Map[K, V]) Equal(other Map[K, V], eq func(a, b V) bool) bool {
	return equalNodes(m.root, other.root, m.hasher, eq)
}

// String renders m in the format "{k1: v1, k2: v2}", in iteration order.
func (m Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	for s := m.Entries(); s != nil; s = s.Tail() {
		e := s.Head()
		fmt.Fprintf(&b, "%s%v: %v", sep, e.Key, e.Value)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}

func (m Map[K, V]) keyhash(key K) uint32 {
	assertThat(m.hasher != nil, "use of zero-value Map, create maps with Immutable")
	return m.hasher.Hash(key)
}
