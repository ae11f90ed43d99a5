// Package capability holds the static tables of what each codec/direction
// supports. Tables are shared by validation, the "supported" queries and
// the conversions, so each codec has one source of truth.
package capability

import (
	"github.com/google/btree"
)

const btreeDegree = 8

// Set is an immutable ordered collection: it keeps the declaration order
// for enumeration and a btree index for membership checks.
type Set[T any] struct {
	items []T
	index *btree.BTreeG[T]
}

// NewSet builds a Set; duplicates (per less) keep their first position.
func NewSet[T any](less func(a, b T) bool, items ...T) Set[T] {
	s := Set[T]{
		index: btree.NewG[T](btreeDegree, less),
	}
	for _, item := range items {
		if _, replaced := s.index.ReplaceOrInsert(item); replaced {
			continue
		}
		s.items = append(s.items, item)
	}
	return s
}

func NewOrderedSet[T interface{ ~int }](items ...T) Set[T] {
	return NewSet(func(a, b T) bool { return a < b }, items...)
}

// Has reports whether v is in the set; the zero Set contains nothing.
func (s Set[T]) Has(v T) bool {
	if s.index == nil {
		return false
	}
	return s.index.Has(v)
}

func (s Set[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in declaration order.
func (s Set[T]) Items() []T {
	result := make([]T, len(s.items))
	copy(result, s.items)
	return result
}
