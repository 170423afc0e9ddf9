// Package hashset implements an immutable, insertion-ordered set whose element
// identity is decided by an injectable hash.Handler.
package hashset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/on-the-ground/collect_ive_go/persistent/hash"
	"github.com/on-the-ground/collect_ive_go/persistent/internal/table"
	"github.com/on-the-ground/collect_ive_go/persistent/list"
)

type present = struct{}

// Set holds unique elements in order of first occurrence.
// A Set must be built with Of, OfWith or FromList. The zero value reads as
// empty, but Plus, Union and Diff panic on it because it has no handler.
type Set[T any] struct {
	t table.Table[T, present]
}

// Of builds a set with value equality on T, dropping duplicates.
func Of[T comparable](xs ...T) Set[T] {
	return OfWith(hash.Comparable[T](), xs...)
}

// OfWith builds a set whose elements are identified by h.
// The first occurrence of every element is kept.
func OfWith[T any](h hash.Handler[T], xs ...T) Set[T] {
	b := table.NewBuilder[T, present](h)
	for _, x := range xs {
		b.PutIfAbsent(x, present{})
	}
	return Set[T]{t: b.Table()}
}

// FromList builds a set of the elements of l under h.
func FromList[T any](h hash.Handler[T], l list.List[T]) Set[T] {
	return OfWith(h, l.Slice()...)
}

func (s Set[T]) Handler() hash.Handler[T] {
	return s.t.Handler()
}

func (s Set[T]) Len() int {
	return s.t.Len()
}

func (s Set[T]) IsEmpty() bool {
	return s.t.Len() == 0
}

func (s Set[T]) Contains(x T) bool {
	return s.t.Contains(x)
}

func (s Set[T]) mustBeBuilt() {
	if s.t.Handler() == nil {
		panic("hashset: zero Set, build with Of, OfWith or FromList")
	}
}

// Plus adds x. Adding an element already present returns s unchanged.
func (s Set[T]) Plus(x T) Set[T] {
	s.mustBeBuilt()
	if s.Contains(x) {
		return s
	}
	return Set[T]{t: s.t.With(x, present{})}
}

func (s Set[T]) Minus(x T) Set[T] {
	return Set[T]{t: s.t.Without(x)}
}

// Union is s followed by the elements of other not in s.
func (s Set[T]) Union(other Set[T]) Set[T] {
	if other.IsEmpty() {
		return s
	}
	s.mustBeBuilt()
	b := s.t.Builder()
	for x := range other.t.All() {
		b.PutIfAbsent(x, present{})
	}
	return Set[T]{t: b.Table()}
}

// Intersect keeps the elements of s that are also in other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	return s.Filter(other.Contains)
}

// Diff is the symmetric difference: the elements of s not in other, followed by
// the elements of other not in s.
func (s Set[T]) Diff(other Set[T]) Set[T] {
	s.mustBeBuilt()
	b := table.NewBuilder[T, present](s.t.Handler())
	for x := range s.t.All() {
		if !other.Contains(x) {
			b.PutIfAbsent(x, present{})
		}
	}
	for x := range other.t.All() {
		if !s.Contains(x) {
			b.PutIfAbsent(x, present{})
		}
	}
	return Set[T]{t: b.Table()}
}

// SubsetOf reports whether every element of s is in other.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	for x := range s.t.All() {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

func (s Set[T]) Filter(keep func(T) bool) Set[T] {
	return Set[T]{t: s.t.Filter(func(x T, _ present) bool { return keep(x) })}
}

func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s.t.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Slice exports the elements in order of first occurrence.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for x := range s.t.All() {
		out = append(out, x)
	}
	return out
}

func (s Set[T]) ToList() list.List[T] {
	return list.FromSlice(s.Slice())
}

func (s Set[T]) ForEach(f func(T)) {
	for x := range s.t.All() {
		f(x)
	}
}

// Equal reports whether s and other hold the same elements, in any order.
func (s Set[T]) Equal(other Set[T]) bool {
	return s.Len() == other.Len() && s.SubsetOf(other)
}

func (s Set[T]) String() string {
	parts := make([]string, 0, s.Len())
	for x := range s.t.All() {
		parts = append(parts, fmt.Sprint(x))
	}
	return "Set(" + strings.Join(parts, ", ") + ")"
}
