package pmap

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/pure/hash"
	"github.com/stretchr/testify/require"
)

func TestEqualityIgnoresInsertionOrder(t *testing.T) {
	entries := []Entry[string, int]{
		{"ant", 1}, {"bee", 2}, {"cat", 3}, {"dog", 4}, {"eel", 5},
		{"fox", 6}, {"gnu", 7}, {"hen", 8}, {"imp", 9}, {"jay", 10},
	}
	base := Immutable[int](hash.Strings(), entries...)
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		shuffled := make([]Entry[string, int], len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		m := Immutable[int](hash.Strings(), shuffled...)
		require.True(t, base.Equal(m, eqInts), "insertion order %v changed the map", shuffled)
	}
}

func TestEqualityDiscriminates(t *testing.T) {
	a := Immutable[int](hash.Strings()).With("x", 1).With("y", 2)
	require.False(t, a.Equal(a.With("y", 3), eqInts), "maps differ in a value")
	require.False(t, a.Equal(a.WithDeleted("y"), eqInts), "maps differ in size")
	require.False(t, a.Equal(a.With("z", 4), eqInts), "one map has an extra key")
	require.True(t, a.Equal(a.With("y", 2), eqInts), "replacing a value with an equal one")
}

func TestInsertDeleteRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Immutable[int](hash.Ints())
	for i := 0; i < 500; i++ {
		m = m.With(rng.Intn(1000), i)
	}
	for k := 0; k < 1000; k++ {
		with := m.With(k, -1)
		v, ok := with.Find(k)
		require.True(t, ok, "key %d after insert", k)
		require.Equal(t, -1, v, "value of key %d after insert", k)
		_, ok = m.WithDeleted(k).Find(k)
		require.False(t, ok, "key %d after delete", k)
	}
}

func TestInsertThenDeleteCancels(t *testing.T) {
	// m.With(k, v).WithDeleted(k) equals m.WithDeleted(k), for present and
	// absent keys alike
	rng := rand.New(rand.NewSource(11))
	m := Immutable[int](hash.Ints())
	for i := 0; i < 300; i++ {
		m = m.With(rng.Intn(400), i)
	}
	for k := 0; k < 400; k++ {
		got := m.With(k, -1).WithDeleted(k)
		require.True(t, got.Equal(m.WithDeleted(k), eqInts), "cancellation for key %d", k)
	}
}

func TestPlusMinusScenario(t *testing.T) {
	m := Immutable[int](hash.Strings()).With("a", 1).With("b", 2).WithDeleted("a")
	require.True(t, m.Equal(Immutable[int](hash.Strings()).With("b", 2), eqInts))
}
