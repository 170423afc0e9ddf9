package typeclass

// Functor maps the contents of FA with f while preserving its shape.
type Functor[A, B, FA, FB any] interface {
	Map(fa FA, f func(A) B) FB
}

// Applicative applies wrapped functions to wrapped values.
//
// FAB is the container of func(A) B accepted by Apply.
//
// Map2 is restricted by the interface's type parameters: its second operand and
// its result are both FB, so the second element type must equal the result
// type. Combining List[int] with List[string] into List[bool] is not expressible
// here; use the container's free Map2 function, which takes three element types.
type Applicative[A, B, FA, FB, FAB any] interface {
	Functor[A, B, FA, FB]
	Pure(a A) FA
	Apply(fab FAB, fa FA) FB
	Map2(fa FA, fb FB, f func(A, B) B) FB
}

// Monad sequences computations that each produce a wrapped value.
type Monad[A, B, FA, FB any] interface {
	Functor[A, B, FA, FB]
	FlatMap(fa FA, f func(A) FB) FB
}

// Foldable reduces a container to a summary value.
//
// FoldLeft visits elements first to last, FoldRight last to first.
type Foldable[A, B, FA any] interface {
	FoldLeft(fa FA, z B, op func(B, A) B) B
	FoldRight(fa FA, z B, op func(A, B) B) B
	FoldMap(fa FA, m Monoid[B], f func(A) B) B
	Fold(fa FA, m Monoid[A]) A
}

// Traverse flips a container of wrapped values into a wrapped container.
type Traverse[A, B, FA, GB, GFB any] interface {
	Traverse(fa FA, f func(A) GB) GFB
}

// Constructor is the explicit description of the wrapping G used by Traverse and Sequence.
//
// Unwrap reports whether ga is present and yields its payload. Wrap lifts a whole
// rebuilt container C into G. Absent collapses the result when ga is not present.
type Constructor[A, GA, C, GC any] interface {
	Unwrap(ga GA) (A, bool)
	Wrap(c C) GC
	Absent(ga GA) GC
}
