// Package bimap provides a one-to-one mapping between two enumerations
// with a fallback value on each side for values without a counterpart.
package bimap

import (
	"fmt"
)

type Pair[A, B comparable] struct {
	A A
	B B
}

type Map[A, B comparable] struct {
	forward  map[A]B
	backward map[B]A

	sentinelA A
	sentinelB B
}

// New builds a Map; it panics on duplicates, since tables are static.
func New[A, B comparable](sentinelA A, sentinelB B, pairs ...Pair[A, B]) Map[A, B] {
	m := Map[A, B]{
		forward:   make(map[A]B, len(pairs)),
		backward:  make(map[B]A, len(pairs)),
		sentinelA: sentinelA,
		sentinelB: sentinelB,
	}
	for _, p := range pairs {
		if _, ok := m.forward[p.A]; ok {
			panic(fmt.Sprintf("duplicate value %v in a conversion table", p.A))
		}
		if _, ok := m.backward[p.B]; ok {
			panic(fmt.Sprintf("duplicate value %v in a conversion table", p.B))
		}
		m.forward[p.A] = p.B
		m.backward[p.B] = p.A
	}
	return m
}

func (m Map[A, B]) Forward(v A) B {
	if r, ok := m.forward[v]; ok {
		return r
	}
	return m.sentinelB
}

func (m Map[A, B]) Backward(v B) A {
	if r, ok := m.backward[v]; ok {
		return r
	}
	return m.sentinelA
}

func (m Map[A, B]) LookupForward(v A) (B, bool) {
	r, ok := m.forward[v]
	return r, ok
}
