package list

import (
	"github.com/on-the-ground/collect_ive_go/errs"
	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/trampoline"
	"github.com/on-the-ground/collect_ive_go/typeclass"
)

// FoldLeft combines the elements head to tail: op(op(op(z, x1), x2), ...).
// It runs on the trampoline and is stack-safe for any length.
func FoldLeft[A, B any](l List[A], z B, op func(B, A) B) B {
	var step func(xs List[A], acc B) trampoline.Trampoline[B]
	step = func(xs List[A], acc B) trampoline.Trampoline[B] {
		if xs.IsEmpty() {
			return trampoline.Done(acc)
		}
		return trampoline.More(func() trampoline.Trampoline[B] {
			return step(wrap(xs.elems[1:]), op(acc, xs.elems[0]))
		})
	}
	return step(l, z).Run()
}

// FoldRight combines the elements tail to head: op(x1, op(x2, ... op(xn, z))).
// It runs on the trampoline and is stack-safe for any length.
func FoldRight[A, B any](l List[A], z B, op func(A, B) B) B {
	var step func(xs List[A], acc B) trampoline.Trampoline[B]
	step = func(xs List[A], acc B) trampoline.Trampoline[B] {
		if xs.IsEmpty() {
			return trampoline.Done(acc)
		}
		last := len(xs.elems) - 1
		return trampoline.More(func() trampoline.Trampoline[B] {
			return step(wrap(xs.elems[:last]), op(xs.elems[last], acc))
		})
	}
	return step(l, z).Run()
}

// FoldMap maps every element with f and combines the results with m, head to tail.
func FoldMap[A, B any](l List[A], m typeclass.Monoid[B], f func(A) B) B {
	return FoldLeft(l, m.Empty(), func(b B, a A) B {
		return m.Combine(b, f(a))
	})
}

// Fold combines the elements with m. The empty list folds to m.Empty().
func Fold[A any](l List[A], m typeclass.Monoid[A]) A {
	return FoldMap(l, m, fn.Identity[A])
}

// Reduce combines the elements right-associatively without a seed:
// op(x1, op(x2, ... op(xn-1, xn))). A single element is returned as is.
// The empty list fails with ErrEmptyContainer.
func Reduce[T any](l List[T], op func(T, T) T) (T, error) {
	last, err := l.Last()
	if err != nil {
		var zero T
		return zero, errs.EmptyContainer("reduce of empty list")
	}
	return FoldRight(wrap(l.elems[:len(l.elems)-1]), last, op), nil
}
