// Package typeclass defines the capability interfaces shared by every container
// in this module: Functor, Applicative, Monad, Foldable and Traverse.
//
// Go has no higher-kinded types, so a capability is spelled out with both the
// element types and the concrete container types:
//
//	Functor[A, B, FA, FB]   // Map(FA, func(A) B) FB
//
// Each container package exposes an Instance type implementing the capabilities
// it supports, e.g. list.Instance[int, string] is a
// Functor[int, string, list.List[int], list.List[string]].
//
// Algorithms that only need, say, Foldable should be written against Foldable
// rather than against a concrete container:
//
//	func Total[FA any](F typeclass.Foldable[int, int, FA], fa FA) int {
//	    return F.FoldMap(fa, typeclass.Sum[int](), fn.Identity[int])
//	}
//
// # Derived operations
//
// Lift, As, Void and ZipWith need nothing but a Functor. Flatten needs a Monad
// and Sequence needs a Traverse.
//
// # Traverse
//
// The wrapping G of Traverse/Sequence is never inferred from the elements: the
// caller passes a Constructor that knows how to unwrap one G, wrap a rebuilt
// container, and collapse to G's absent case.
package typeclass
