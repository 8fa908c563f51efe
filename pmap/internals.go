package pmap

import (
	"fmt"

	"github.com/npillmayer/pure/hash"
)

// The trie is a little-endian binary Patricia trie over key hash bits.
// A node is one of
//
//   - nil:    the empty trie
//   - *leaf:  a single entry, chaining up further entries whose keys hash
//             to the exact same code
//   - *split: an inner node branching on a single hash bit
//
// and the functions below dispatch with exhaustive type switches. Being a
// Patricia trie makes shapes canonical: a given set of hashes always builds
// the same splits, no matter the insertion order.
type node[K, V any] interface {
	trienode()
}

// leaf holds one entry of the map. Entries whose keys hash identically hang
// off next; a chain never holds two keys equal to each other, and every cell
// of a chain carries the same hash.
type leaf[K, V any] struct {
	hash  uint32
	key   K
	value V
	next  *leaf[K, V]
}

// split branches on the single bit set in mask: the lowest bit position in
// which the hashes below this node diverge. prefix holds the hash bits below
// mask, which all entries underneath share. left holds the entries with a
// zero at mask, right those with a one; neither child is ever empty.
type split[K, V any] struct {
	mask   uint32
	prefix uint32
	left   node[K, V]
	right  node[K, V]
}

func (*leaf[K, V]) trienode()  {}
func (*split[K, V]) trienode() {}

func lookup[K, V any](n node[K, V], h uint32, key K, hasher hash.Hasher[K]) (V, bool) {
	for {
		switch t := n.(type) {
		case nil:
			var none V
			return none, false
		case *leaf[K, V]:
			return chainFind(t, key, hasher)
		case *split[K, V]:
			if h&(t.mask-1) != t.prefix {
				var none V
				return none, false
			}
			if h&t.mask == 0 {
				n = t.left
			} else {
				n = t.right
			}
		default:
			panic("pmap: unknown trie node type")
		}
	}
}

func insert[K, V any](n node[K, V], h uint32, key K, value V, hasher hash.Hasher[K]) node[K, V] {
	switch t := n.(type) {
	case nil:
		return &leaf[K, V]{hash: h, key: key, value: value}
	case *leaf[K, V]:
		if t.hash == h {
			return chainWith(t, h, key, value, hasher)
		}
		return join[K, V](h, &leaf[K, V]{hash: h, key: key, value: value}, t.hash, n)
	case *split[K, V]:
		if h&(t.mask-1) != t.prefix {
			return join[K, V](h, &leaf[K, V]{hash: h, key: key, value: value}, t.prefix, n)
		}
		if h&t.mask == 0 {
			return &split[K, V]{mask: t.mask, prefix: t.prefix,
				left: insert(t.left, h, key, value, hasher), right: t.right}
		}
		return &split[K, V]{mask: t.mask, prefix: t.prefix,
			left: t.left, right: insert(t.right, h, key, value, hasher)}
	}
	panic("pmap: unknown trie node type")
}

// join combines two tries known to diverge into a split at the lowest
// divergent hash bit. ha is a representative hash of a (the full hash for a
// leaf, the prefix for a split) and hb one of b.
func join[K, V any](ha uint32, a node[K, V], hb uint32, b node[K, V]) node[K, V] {
	diff := ha ^ hb
	mask := diff & -diff // the lowest set bit is the first divergence
	prefix := ha & (mask - 1)
	tracer().Debugf("trie splits at hash bit %#x", mask)
	if ha&mask == 0 {
		return &split[K, V]{mask: mask, prefix: prefix, left: a, right: b}
	}
	return &split[K, V]{mask: mask, prefix: prefix, left: b, right: a}
}

func remove[K, V any](n node[K, V], h uint32, key K, hasher hash.Hasher[K]) node[K, V] {
	switch t := n.(type) {
	case nil:
		return nil
	case *leaf[K, V]:
		if c := chainWithout(t, key, hasher); c != nil {
			return c
		}
		return nil
	case *split[K, V]:
		if h&(t.mask-1) != t.prefix {
			return n // key cannot live under this prefix
		}
		if h&t.mask == 0 {
			left := remove[K, V](t.left, h, key, hasher)
			if left == nil {
				tracer().Debugf("split collapses onto right child")
				return t.right
			}
			return &split[K, V]{mask: t.mask, prefix: t.prefix, left: left, right: t.right}
		}
		right := remove[K, V](t.right, h, key, hasher)
		if right == nil {
			tracer().Debugf("split collapses onto left child")
			return t.left
		}
		return &split[K, V]{mask: t.mask, prefix: t.prefix, left: t.left, right: right}
	}
	panic("pmap: unknown trie node type")
}

func count[K, V any](n node[K, V]) int {
	switch t := n.(type) {
	case nil:
		return 0
	case *leaf[K, V]:
		return chainLen(t)
	case *split[K, V]:
		return count[K, V](t.left) + count[K, V](t.right)
	}
	panic("pmap: unknown trie node type")
}

// equalNodes compares two tries structurally. Splits compare field-wise,
// since Patricia shapes are canonical for a set of hashes, while chains hold
// an unordered handful of same-hash keys and compare by containment.
func equalNodes[K, V any](a, b node[K, V], hasher hash.Hasher[K], eq func(x, y V) bool) bool {
	switch ta := a.(type) {
	case nil:
		return b == nil
	case *leaf[K, V]:
		tb, ok := b.(*leaf[K, V])
		if !ok || chainLen(ta) != chainLen(tb) {
			return false
		}
		for c := ta; c != nil; c = c.next {
			v, ok := chainFind(tb, c.key, hasher)
			if !ok || !eq(c.value, v) {
				return false
			}
		}
		return true
	case *split[K, V]:
		tb, ok := b.(*split[K, V])
		if !ok {
			return false
		}
		return ta.mask == tb.mask && ta.prefix == tb.prefix &&
			equalNodes(ta.left, tb.left, hasher, eq) &&
			equalNodes(ta.right, tb.right, hasher, eq)
	}
	panic("pmap: unknown trie node type")
}

// --- Collision chains -------------------------------------------------------

// chainWith replaces the value under an equal key in place, or appends the
// new entry at the end of the chain. The untouched remainder of the chain is
// shared; the spine up to the change is re-created.
func chainWith[K, V any](c *leaf[K, V], h uint32, key K, value V, hasher hash.Hasher[K]) *leaf[K, V] {
	if c == nil {
		return &leaf[K, V]{hash: h, key: key, value: value}
	}
	if hasher.Equal(key, c.key) {
		return &leaf[K, V]{hash: h, key: key, value: value, next: c.next}
	}
	return &leaf[K, V]{hash: c.hash, key: c.key, value: c.value,
		next: chainWith(c.next, h, key, value, hasher)}
}

// chainWithout splices the entry with an equal key out of the chain. Absent
// keys re-create the spine nevertheless, yielding a structurally equal chain.
func chainWithout[K, V any](c *leaf[K, V], key K, hasher hash.Hasher[K]) *leaf[K, V] {
	if c == nil {
		return nil
	}
	if hasher.Equal(key, c.key) {
		return c.next
	}
	return &leaf[K, V]{hash: c.hash, key: c.key, value: c.value,
		next: chainWithout(c.next, key, hasher)}
}

func chainFind[K, V any](c *leaf[K, V], key K, hasher hash.Hasher[K]) (V, bool) {
	for ; c != nil; c = c.next {
		if hasher.Equal(key, c.key) {
			return c.value, true
		}
	}
	var none V
	return none, false
}

func chainLen[K, V any](c *leaf[K, V]) int {
	n := 0
	for ; c != nil; c = c.next {
		n++
	}
	return n
}

// --- Helpers ----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("pmap: "+msg, msgargs...)
		panic(msg)
	}
}
