package lazy

// Stream is a lazily produced sequence of values: a cons cell whose tail
// may be a suspended computation. A nil *Stream is the empty stream.
//
// Cells are immutable; forcing a tail memoizes it in place (see Thunk), so
// every consumer of a shared cell pays for its suspension at most once.
// Head and Tail must not be called on an empty stream.
type Stream[T any] struct {
	head  T
	tail  *Stream[T]         // immediate tail; nil at the end or when suspended
	thunk *Thunk[*Stream[T]] // suspended tail; nil for eager cells
}

// Cons prepends head to a tail that is known immediately.
func Cons[T any](head T, tail *Stream[T]) *Stream[T] {
	return &Stream[T]{head: head, tail: tail}
}

// Defer prepends head to a tail that will not be computed before its first
// use.
func Defer[T any](head T, tail func() *Stream[T]) *Stream[T] {
	return &Stream[T]{head: head, thunk: Delay(tail)}
}

// Head returns the first element of the stream. It never forces anything.
func (s *Stream[T]) Head() T {
	return s.head
}

// Tail returns the stream after the first element, forcing the suspension
// if the cell carries one. The result is memoized: however many stream
// versions share this cell, its suspension runs at most once.
func (s *Stream[T]) Tail() *Stream[T] {
	if s.thunk != nil {
		return s.thunk.Force()
	}
	return s.tail
}

// Map derives a stream by applying f to every element of s. The first
// element is mapped immediately, keeping head access constant-time; the
// remainder is deferred, and f runs for a cell no earlier than the cell is
// reached.
func Map[A, B any](s *Stream[A], f func(A) B) *Stream[B] {
	if s == nil {
		return nil
	}
	return Defer(f(s.head), func() *Stream[B] {
		return Map(s.Tail(), f)
	})
}

// ToSlice forces the entire stream into a slice. Empty streams yield nil.
func ToSlice[T any](s *Stream[T]) []T {
	var elems []T
	for ; s != nil; s = s.Tail() {
		elems = append(elems, s.head)
	}
	return elems
}
