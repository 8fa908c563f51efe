// Package hash provides hash functions, and the hashing capability the
// collection packages require from their key types.
//
// The hash functions are variants of Daniel J. Bernstein's classic string
// hash.
package hash

// DJBInit is the initial value for DJB hashing.
const DJBInit uint32 = 5381

// DJBCombine combines the accumulator acc with the hash value h.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines any number of hash values.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

func mul33(h uint32) uint32 {
	return h<<5 + h
}

// UInt32 hashes a uint32.
func UInt32(u uint32) uint32 {
	return u
}

// UInt64 hashes a uint64.
func UInt64(u uint64) uint32 {
	return DJBCombine(DJBCombine(DJBInit, uint32(u>>32)), uint32(u))
}

// String hashes a string.
func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

// --- Key capability --------------------------------------------------------

// Hasher bundles the two capabilities a hashed collection needs from its key
// type K: a hash code, and an equality consistent with it. Implementations
// must guarantee that Equal(a, b) implies Hash(a) == Hash(b), and that Equal
// is an equivalence relation. A violation cannot corrupt memory, but it makes
// keys unfindable.
type Hasher[K any] interface {
	Hash(key K) uint32
	Equal(a, b K) bool
}

type hasher[K any] struct {
	hash  func(K) uint32
	equal func(a, b K) bool
}

func (h hasher[K]) Hash(key K) uint32 {
	return h.hash(key)
}

func (h hasher[K]) Equal(a, b K) bool {
	return h.equal(a, b)
}

// New builds a Hasher from a hash function and an equality predicate. Use it
// for key types that need an equality other than ==.
func New[K any](hash func(K) uint32, equal func(a, b K) bool) Hasher[K] {
	return hasher[K]{hash: hash, equal: equal}
}

// Of builds a Hasher for a comparable key type from just a hash function,
// with == as equality.
func Of[K comparable](hash func(K) uint32) Hasher[K] {
	return hasher[K]{
		hash:  hash,
		equal: func(a, b K) bool { return a == b },
	}
}

// Strings is a ready-made Hasher for string keys.
func Strings() Hasher[string] {
	return Of(String)
}

// Ints is a ready-made Hasher for int keys.
func Ints() Hasher[int] {
	return Of(func(i int) uint32 { return UInt64(uint64(i)) })
}
