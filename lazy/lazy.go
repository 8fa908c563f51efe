package lazy

/*
module Lazy exposing (Lazy, lazy, force, map)

{-| This library lets you delay a computation until later.

# Basics
@docs Lazy, lazy, force

# Mapping
@docs map

-}
*/

import (
	"sync/atomic"
)

// Thunk is a deferred computation of a value of type T, memoized after the
// first Force.
//
// Thunks are safe for concurrent use without locks. Goroutines racing on an
// unforced thunk may each run the computation, and each publishes its result;
// computations therefore have to be deterministic and free of side effects
// worth observing twice. No goroutine ever blocks on another: every caller of
// Force returns a value from a consistently published state.
type Thunk[T any] struct {
	state atomic.Pointer[memo[T]]
}

// memo is the published state of a thunk: still to compute, or done.
type memo[T any] struct {
	compute func() T // nil once the value is memoized
	value   T
}

// Delay wraps a computation in a thunk without running it.
func Delay[T any](compute func() T) *Thunk[T] {
	t := &Thunk[T]{}
	t.state.Store(&memo[T]{compute: compute})
	return t
}

// Forced wraps an already known value in a forced thunk.
func Forced[T any](value T) *Thunk[T] {
	t := &Thunk[T]{}
	t.state.Store(&memo[T]{value: value})
	return t
}

// Force runs the thunk's computation, or returns the memoized value if it
// already ran. Forcing drops the reference to the computation, so whatever
// the closure captured becomes collectible.
func (t *Thunk[T]) Force() T {
	s := t.state.Load()
	if s.compute == nil {
		return s.value
	}
	value := s.compute()
	t.state.Store(&memo[T]{value: value})
	return value
}
