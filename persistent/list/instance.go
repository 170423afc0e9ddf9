package list

import (
	"github.com/on-the-ground/collect_ive_go/option"
	"github.com/on-the-ground/collect_ive_go/typeclass"
)

// Instance is the Functor, Applicative, Monad and Foldable capability set of List.
type Instance[A, B any] struct{}

var (
	_ typeclass.Applicative[int, string, List[int], List[string], List[func(int) string]] = Instance[int, string]{}
	_ typeclass.Monad[int, string, List[int], List[string]]                               = Instance[int, string]{}
	_ typeclass.Foldable[int, string, List[int]]                                          = Instance[int, string]{}
)

var _ typeclass.Traverse[int, string, List[int], option.Option[string], option.Option[List[string]]] = Traversal[int, string, option.Option[string], option.Option[List[string]]]{}

func (Instance[A, B]) Map(fa List[A], f func(A) B) List[B] {
	return Map(fa, f)
}

func (Instance[A, B]) Pure(a A) List[A] {
	return Pure(a)
}

func (Instance[A, B]) Apply(fab List[func(A) B], fa List[A]) List[B] {
	return Ap(fab, fa)
}

func (Instance[A, B]) Map2(fa List[A], fb List[B], f func(A, B) B) List[B] {
	return Map2(fa, fb, f)
}

func (Instance[A, B]) FlatMap(fa List[A], f func(A) List[B]) List[B] {
	return FlatMap(fa, f)
}

func (Instance[A, B]) FoldLeft(fa List[A], z B, op func(B, A) B) B {
	return FoldLeft(fa, z, op)
}

func (Instance[A, B]) FoldRight(fa List[A], z B, op func(A, B) B) B {
	return FoldRight(fa, z, op)
}

func (Instance[A, B]) FoldMap(fa List[A], m typeclass.Monoid[B], f func(A) B) B {
	return FoldMap(fa, m, f)
}

func (Instance[A, B]) Fold(fa List[A], m typeclass.Monoid[A]) A {
	return Fold(fa, m)
}

// Traversal is the Traverse capability of List for the wrapping described by C.
type Traversal[A, B, GB, GL any] struct {
	C typeclass.Constructor[B, GB, List[B], GL]
}

// TraversalOf binds a Traversal to the constructor c.
func TraversalOf[A, B, GB, GL any](c typeclass.Constructor[B, GB, List[B], GL]) Traversal[A, B, GB, GL] {
	return Traversal[A, B, GB, GL]{C: c}
}

func (t Traversal[A, B, GB, GL]) Traverse(fa List[A], f func(A) GB) GL {
	return Traverse(fa, t.C, f)
}

// Monoid is concatenation with Nil as identity.
func Monoid[T any]() typeclass.Monoid[List[T]] {
	return typeclass.MonoidOf(Nil[T](), func(x, y List[T]) List[T] {
		return x.Concat(y)
	})
}
