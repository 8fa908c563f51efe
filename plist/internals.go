package plist

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/pure/lazy"
)

// rotationSteps counts every forced rotation cell, package-wide. Memoization
// lets a cell count at most once, no matter how many list copies walk it; the
// amortization tests read the counter to hold rotation work to a bound.
var rotationSteps atomic.Uint64

// mk builds a list, maintaining the balance discipline: every call advances
// the schedule by one forced cell, and once the schedule is exhausted, the
// rear is rotated into the front, which then doubles as the new schedule.
func mk[T any](front, rear, schedule *lazy.Stream[T]) List[T] {
	if schedule != nil {
		return List[T]{front: front, rear: rear, schedule: schedule.Tail()}
	}
	if front == nil && rear == nil {
		return List[T]{}
	}
	tracer().Debugf("list rotates rear into front")
	front = rotate(front, rear, nil)
	return List[T]{front: front, schedule: front}
}

// rotate incrementally builds front ++ reverse(rear) ++ acc: one suspended
// cell per front element, moving one rear element onto the eager accumulator
// per step. At the start of a rotation |rear| ≤ |front| + 1 holds; the rear
// may exhaust early, as prepending grows the front without scheduling work.
func rotate[T any](front, rear, acc *lazy.Stream[T]) *lazy.Stream[T] {
	if front == nil {
		if rear == nil {
			return acc
		}
		return lazy.Cons(rear.Head(), acc)
	}
	if rear == nil {
		return lazy.Defer(front.Head(), func() *lazy.Stream[T] {
			rotationSteps.Add(1)
			return rotate(front.Tail(), nil, acc)
		})
	}
	moved := lazy.Cons(rear.Head(), acc)
	rest := rear.Tail()
	return lazy.Defer(front.Head(), func() *lazy.Stream[T] {
		rotationSteps.Add(1)
		return rotate(front.Tail(), rest, moved)
	})
}

func containsSlice[T any](xs []T, x T, eq func(a, b T) bool) bool {
	for _, e := range xs {
		if eq(e, x) {
			return true
		}
	}
	return false
}

// --- Helpers ----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("plist: "+msg, msgargs...)
		panic(msg)
	}
}
