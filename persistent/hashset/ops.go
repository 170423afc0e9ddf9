package hashset

import (
	"github.com/on-the-ground/collect_ive_go/persistent/hash"
	"github.com/on-the-ground/collect_ive_go/persistent/internal/table"
	"github.com/on-the-ground/collect_ive_go/persistent/list"
	"github.com/on-the-ground/collect_ive_go/typeclass"
)

// Map applies f to every element and deduplicates the results under h.
func Map[A, B any](s Set[A], h hash.Handler[B], f func(A) B) Set[B] {
	b := table.NewBuilder[B, present](h)
	for x := range s.t.All() {
		b.PutIfAbsent(f(x), present{})
	}
	return Set[B]{t: b.Table()}
}

// FlatMap is the union, in order, of the sets returned by f, under h.
func FlatMap[A, B any](s Set[A], h hash.Handler[B], f func(A) Set[B]) Set[B] {
	b := table.NewBuilder[B, present](h)
	for x := range s.t.All() {
		for y := range f(x).t.All() {
			b.PutIfAbsent(y, present{})
		}
	}
	return Set[B]{t: b.Table()}
}

// FoldLeft combines the elements in order of first occurrence.
func FoldLeft[A, B any](s Set[A], z B, op func(B, A) B) B {
	acc := z
	for x := range s.t.All() {
		acc = op(acc, x)
	}
	return acc
}

// Instance is the Functor, Monad and Foldable capability set of Set.
// Results are deduplicated under H.
type Instance[A, B any] struct {
	H hash.Handler[B]
}

// InstanceOf binds an Instance to the target handler h.
func InstanceOf[A, B any](h hash.Handler[B]) Instance[A, B] {
	return Instance[A, B]{H: h}
}

var (
	_ typeclass.Monad[int, string, Set[int], Set[string]] = Instance[int, string]{}
	_ typeclass.Foldable[int, string, Set[int]]           = Instance[int, string]{}
)

func (i Instance[A, B]) Map(fa Set[A], f func(A) B) Set[B] {
	return Map(fa, i.H, f)
}

func (i Instance[A, B]) FlatMap(fa Set[A], f func(A) Set[B]) Set[B] {
	return FlatMap(fa, i.H, f)
}

func (Instance[A, B]) FoldLeft(fa Set[A], z B, op func(B, A) B) B {
	return FoldLeft(fa, z, op)
}

func (Instance[A, B]) FoldRight(fa Set[A], z B, op func(A, B) B) B {
	return list.FoldRight(fa.ToList(), z, op)
}

func (Instance[A, B]) FoldMap(fa Set[A], m typeclass.Monoid[B], f func(A) B) B {
	return FoldLeft(fa, m.Empty(), func(b B, a A) B { return m.Combine(b, f(a)) })
}

func (Instance[A, B]) Fold(fa Set[A], m typeclass.Monoid[A]) A {
	return FoldLeft(fa, m.Empty(), m.Combine)
}
