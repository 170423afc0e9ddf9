package option

import "github.com/on-the-ground/collect_ive_go/typeclass"

// Instance is the Functor, Applicative, Monad and Foldable capability set of Option.
type Instance[A, B any] struct{}

var (
	_ typeclass.Applicative[int, string, Option[int], Option[string], Option[func(int) string]] = Instance[int, string]{}
	_ typeclass.Monad[int, string, Option[int], Option[string]]                                 = Instance[int, string]{}
	_ typeclass.Foldable[int, string, Option[int]]                                              = Instance[int, string]{}
	_ typeclass.Constructor[int, Option[int], []int, Option[[]int]]                             = Constructor[int, []int]{}
)

func (Instance[A, B]) Map(fa Option[A], f func(A) B) Option[B] {
	return Map(fa, f)
}

func (Instance[A, B]) Pure(a A) Option[A] {
	return Some(a)
}

func (Instance[A, B]) Apply(fab Option[func(A) B], fa Option[A]) Option[B] {
	return Ap(fab, fa)
}

func (Instance[A, B]) Map2(fa Option[A], fb Option[B], f func(A, B) B) Option[B] {
	return Map2(fa, fb, f)
}

func (Instance[A, B]) FlatMap(fa Option[A], f func(A) Option[B]) Option[B] {
	return FlatMap(fa, f)
}

func (Instance[A, B]) FoldLeft(fa Option[A], z B, op func(B, A) B) B {
	if !fa.defined {
		return z
	}
	return op(z, fa.value)
}

func (Instance[A, B]) FoldRight(fa Option[A], z B, op func(A, B) B) B {
	if !fa.defined {
		return z
	}
	return op(fa.value, z)
}

func (i Instance[A, B]) FoldMap(fa Option[A], m typeclass.Monoid[B], f func(A) B) B {
	return i.FoldLeft(fa, m.Empty(), func(b B, a A) B { return m.Combine(b, f(a)) })
}

func (Instance[A, B]) Fold(fa Option[A], m typeclass.Monoid[A]) A {
	return fa.GetOrElse(m.Empty())
}

// Constructor wraps traversal results in Option: a container C of unwrapped
// values becomes Some(C) when every element was Some, and None otherwise.
type Constructor[A, C any] struct{}

func (Constructor[A, C]) Unwrap(ga Option[A]) (A, bool) {
	return ga.Unwrap()
}

func (Constructor[A, C]) Wrap(c C) Option[C] {
	return Some(c)
}

func (Constructor[A, C]) Absent(Option[A]) Option[C] {
	return None[C]()
}
