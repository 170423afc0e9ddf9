package typeclass

import (
	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/tuple"
)

// Lift turns f into a function over whole containers.
func Lift[A, B, FA, FB any](F Functor[A, B, FA, FB], f func(A) B) func(FA) FB {
	return func(fa FA) FB {
		return F.Map(fa, f)
	}
}

// As replaces every element of fa with b.
func As[A, B, FA, FB any](F Functor[A, B, FA, FB], fa FA, b B) FB {
	return F.Map(fa, fn.Const[A](b))
}

// Void discards every element of fa, keeping only the shape.
func Void[A, FA, FU any](F Functor[A, tuple.Unit, FA, FU], fa FA) FU {
	return F.Map(fa, fn.Const[A](tuple.Unit{}))
}

// ZipWith pairs every element with f applied to it.
func ZipWith[A, B, FA, FAB any](F Functor[A, tuple.Tuple2[A, B], FA, FAB], fa FA, f func(A) B) FAB {
	return F.Map(fa, func(a A) tuple.Tuple2[A, B] {
		return tuple.Of2(a, f(a))
	})
}

// Flatten removes one level of nesting.
func Flatten[B, FB, FFB any](M Monad[FB, B, FFB, FB], ffb FFB) FB {
	return M.FlatMap(ffb, fn.Identity[FB])
}

// Sequence flips a container of wrapped values.
func Sequence[B, FGB, GB, GFB any](T Traverse[GB, B, FGB, GB, GFB], fgb FGB) GFB {
	return T.Traverse(fgb, fn.Identity[GB])
}

// FunctorIdentity checks Map(fa, id) == fa under eq.
func FunctorIdentity[A, FA any](F Functor[A, A, FA, FA], fa FA, eq func(x, y FA) bool) bool {
	return eq(F.Map(fa, fn.Identity[A]), fa)
}

// FunctorComposition checks Map(Map(fa, f), g) == Map(fa, g ∘ f) under eq.
func FunctorComposition[A, B, C, FA, FB, FC any](
	FAB Functor[A, B, FA, FB],
	FBC Functor[B, C, FB, FC],
	FAC Functor[A, C, FA, FC],
	fa FA,
	f func(A) B,
	g func(B) C,
	eq func(x, y FC) bool,
) bool {
	return eq(FBC.Map(FAB.Map(fa, f), g), FAC.Map(fa, fn.AndThen(f, g)))
}
