package plist

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/pure/lazy"
)

// List is an immutable persistent list of elements of type T.
//
// Lists are values: operations that “change” a list return a new one and
// leave the receiver untouched, sharing unchanged parts of the structure
// between the two. The zero List is the empty list, ready to use.
type List[T any] struct {
	front    *lazy.Stream[T] // list elements in order, cells possibly suspended
	rear     *lazy.Stream[T] // appended elements in reverse order, cells eager
	schedule *lazy.Stream[T] // unforced suffix of front
}

// Immutable creates a persistent list, holding the given elements.
//
//	l := plist.Immutable(1, 2, 3)
//
func Immutable[T any](elems ...T) List[T] {
	var l List[T]
	for _, x := range elems {
		l = l.Push(x)
	}
	return l
}

// IsEmpty is true if l holds no elements.
func (l List[T]) IsEmpty() bool {
	return l.front == nil && l.rear == nil
}

// Len returns the number of elements in l. It walks the list and thus is
// O(n).
func (l List[T]) Len() int {
	n := 0
	for c := l.front; c != nil; c = c.Tail() {
		n++
	}
	for c := l.rear; c != nil; c = c.Tail() {
		n++
	}
	return n
}

// First returns the element at the front of l. It panics on an empty list;
// see Head for a non-panicking variant.
func (l List[T]) First() T {
	assertThat(!l.IsEmpty(), "attempt to get first element of empty list")
	return l.front.Head()
}

// Rest returns l without its first element. It panics on an empty list.
func (l List[T]) Rest() List[T] {
	assertThat(!l.IsEmpty(), "attempt to get rest of empty list")
	return mk(l.front.Tail(), l.rear, l.schedule)
}

// Head returns the element at the front of l, or nothing for an empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.First())
}

// Push returns a list with x appended at the back of l.
func (l List[T]) Push(x T) List[T] {
	return mk(l.front, lazy.Cons(x, l.rear), l.schedule)
}

// Cons returns a list with x prepended at the front of l.
func (l List[T]) Cons(x T) List[T] {
	return List[T]{front: lazy.Cons(x, l.front), rear: l.rear, schedule: l.schedule}
}

// PushAll returns a list with all of xs appended at the back of l.
func (l List[T]) PushAll(xs ...T) List[T] {
	for _, x := range xs {
		l = l.Push(x)
	}
	return l
}

// Concat returns a list holding the elements of l followed by the elements
// of other.
func (l List[T]) Concat(other List[T]) List[T] {
	for it := other; !it.IsEmpty(); it = it.Rest() {
		l = l.Push(it.First())
	}
	return l
}

// Get returns the element at position i, with 0 ≤ i < Len(). It panics on
// an index out of bounds.
func (l List[T]) Get(i int) T {
	if i >= 0 {
		k := i
		for it := l; !it.IsEmpty(); it = it.Rest() {
			if k == 0 {
				return it.First()
			}
			k--
		}
	}
	panic(fmt.Sprintf("plist: list index out of bounds: %d", i))
}

// Set returns a list with the element at position i replaced by x, with
// 0 ≤ i < Len(). It panics on an index out of bounds.
func (l List[T]) Set(i int, x T) List[T] {
	result := Immutable[T]()
	k := i
	for it := l; i >= 0 && !it.IsEmpty(); it = it.Rest() {
		if k == 0 {
			return result.Push(x).Concat(it.Rest())
		}
		result = result.Push(it.First())
		k--
	}
	panic(fmt.Sprintf("plist: list index out of bounds: %d", i))
}

// Insert returns a list with x inserted before position i, with
// 0 ≤ i ≤ Len(); i = Len() appends x. It panics on an index out of bounds.
func (l List[T]) Insert(i int, x T) List[T] {
	if i == 0 {
		return l.Cons(x)
	}
	result := Immutable[T]()
	k := i
	for it := l; i >= 0 && !it.IsEmpty(); it = it.Rest() {
		if k == 0 {
			return result.Push(x).Concat(it)
		}
		result = result.Push(it.First())
		k--
	}
	if k == 0 {
		return result.Push(x)
	}
	panic(fmt.Sprintf("plist: list index out of bounds: %d", i))
}

// Delete returns a list without the element at position i, with
// 0 ≤ i < Len(). It panics on an index out of bounds.
func (l List[T]) Delete(i int) List[T] {
	result := Immutable[T]()
	k := i
	for it := l; i >= 0 && !it.IsEmpty(); it = it.Rest() {
		if k == 0 {
			return result.Concat(it.Rest())
		}
		result = result.Push(it.First())
		k--
	}
	panic(fmt.Sprintf("plist: list index out of bounds: %d", i))
}

// Remove returns a list without the first element equal to x, as decided by
// eq. If no element matches, the receiver is returned unchanged.
func (l List[T]) Remove(x T, eq func(a, b T) bool) List[T] {
	result := Immutable[T]()
	for it := l; !it.IsEmpty(); it = it.Rest() {
		if eq(x, it.First()) {
			return result.Concat(it.Rest())
		}
		result = result.Push(it.First())
	}
	return l
}

// RemoveAll returns a list without every element equal to one of xs, as
// decided by eq.
func (l List[T]) RemoveAll(xs []T, eq func(a, b T) bool) List[T] {
	result := Immutable[T]()
	for it := l; !it.IsEmpty(); it = it.Rest() {
		if !containsSlice(xs, it.First(), eq) {
			result = result.Push(it.First())
		}
	}
	return result
}

// IndexOf returns the position of the first element equal to x, as decided
// by eq, or -1 if no element matches.
func (l List[T]) IndexOf(x T, eq func(a, b T) bool) int {
	i := 0
	for it := l; !it.IsEmpty(); it = it.Rest() {
		if eq(x, it.First()) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the position of the last element equal to x, as
// decided by eq, or -1 if no element matches.
func (l List[T]) LastIndexOf(x T, eq func(a, b T) bool) int {
	i, last := 0, -1
	for it := l; !it.IsEmpty(); it = it.Rest() {
		if eq(x, it.First()) {
			last = i
		}
		i++
	}
	return last
}

// Contains is true if l holds an element equal to x, as decided by eq.
func (l List[T]) Contains(x T, eq func(a, b T) bool) bool {
	return l.IndexOf(x, eq) >= 0
}

// SubList returns a list holding the elements of the half-open range
// [i, j), with 0 ≤ i ≤ j ≤ Len(). It panics on an invalid range.
func (l List[T]) SubList(i, j int) List[T] {
	if i >= 0 && j >= i {
		result := Immutable[T]()
		k := 0
		for it := l; ; it = it.Rest() {
			if k == j {
				return result
			}
			if it.IsEmpty() {
				break
			}
			if k >= i {
				result = result.Push(it.First())
			}
			k++
		}
	}
	panic(fmt.Sprintf("plist: invalid sublist range [%d, %d)", i, j))
}

// Equal compares l and other element-wise, in order, as decided by eq.
func (l List[T]) Equal(other List[T], eq func(a, b T) bool) bool {
	a, b := l, other
	for !a.IsEmpty() && !b.IsEmpty() {
		if !eq(a.First(), b.First()) {
			return false
		}
		a, b = a.Rest(), b.Rest()
	}
	return a.IsEmpty() && b.IsEmpty()
}

// ForEach calls f for each element of l, in order.
func (l List[T]) ForEach(f func(x T)) {
	for it := l; !it.IsEmpty(); it = it.Rest() {
		f(it.First())
	}
}

// ToSlice returns the elements of l as a slice.
func (l List[T]) ToSlice() []T {
	var s []T
	l.ForEach(func(x T) {
		s = append(s, x)
	})
	return s
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteString("[")
	sep := ""
	l.ForEach(func(x T) {
		fmt.Fprintf(&b, "%s%v", sep, x)
		sep = ", "
	})
	b.WriteString("]")
	return b.String()
}
