package plist

import (
	"github.com/npillmayer/pure/lazy"
)

// Iterator walks a list front to back. Clients use it like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    …
//	}
//
// An iterator never outpaces its list: lists are persistent and the iterator
// simply holds the remainder.
type Iterator[T any] struct {
	rest List[T]
}

// Iterator returns an iterator over the elements of l, in order.
func (l List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{rest: l}
}

// HasElem is true if the iterator has an element to deliver.
func (it *Iterator[T]) HasElem() bool {
	return !it.rest.IsEmpty()
}

// Elem returns the current element.
func (it *Iterator[T]) Elem() T {
	return it.rest.First()
}

// Next moves the iterator to the next element.
func (it *Iterator[T]) Next() {
	it.rest = it.rest.Rest()
}

// Cursor walks a list in both directions. A cursor sits between elements:
// Next returns the element after the cursor and moves forward, Prev returns
// the element before the cursor and moves backward. A fresh cursor sits
// before the first element.
type Cursor[T any] struct {
	before *lazy.Stream[T] // passed elements, newest first
	after  List[T]
	index  int
}

// Cursor returns a cursor over l, positioned before the first element.
func (l List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{after: l}
}

// HasNext is true if an element follows the cursor position.
func (c *Cursor[T]) HasNext() bool {
	return !c.after.IsEmpty()
}

// Next returns the element after the cursor and moves the cursor past it.
// It panics at the end of the list.
func (c *Cursor[T]) Next() T {
	assertThat(c.HasNext(), "attempt to move cursor past the end of the list")
	x := c.after.First()
	c.before = lazy.Cons(x, c.before)
	c.after = c.after.Rest()
	c.index++
	return x
}

// HasPrev is true if an element precedes the cursor position.
func (c *Cursor[T]) HasPrev() bool {
	return c.before != nil
}

// Prev returns the element before the cursor and moves the cursor before it.
// It panics at the start of the list.
func (c *Cursor[T]) Prev() T {
	assertThat(c.HasPrev(), "attempt to move cursor before the start of the list")
	x := c.before.Head()
	c.before = c.before.Tail()
	c.after = c.after.Cons(x)
	c.index--
	return x
}

// Index returns the position of the element a call to Next would deliver,
// which is the number of elements before the cursor.
func (c *Cursor[T]) Index() int {
	return c.index
}
