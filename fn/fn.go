// Package fn has small combinators over single-argument functions.
package fn

// Identity returns its argument.
func Identity[A any](a A) A { return a }

// Const returns a function that ignores its argument and yields b.
func Const[A, B any](b B) func(A) B {
	return func(A) B { return b }
}

// AndThen returns g ∘ f: f runs first.
func AndThen[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Compose returns f ∘ g: g runs first.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return AndThen(g, f)
}

func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}
}

func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C { return f(a)(b) }
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}
