package list

import (
	"slices"

	"github.com/on-the-ground/collect_ive_go/option"
)

// Map applies f to every element, preserving order and length.
func Map[A, B any](l List[A], f func(A) B) List[B] {
	out := make([]B, len(l.elems))
	for i, x := range l.elems {
		out[i] = f(x)
	}
	return wrap(out)
}

// FlatMap concatenates the lists returned by f, in source order.
func FlatMap[A, B any](l List[A], f func(A) List[B]) List[B] {
	var out []B
	for _, x := range l.elems {
		out = append(out, f(x).elems...)
	}
	return wrap(out)
}

// FlatMapOption keeps the present results of f, in source order.
func FlatMapOption[A, B any](l List[A], f func(A) option.Option[B]) List[B] {
	out := make([]B, 0, len(l.elems))
	for _, x := range l.elems {
		if v, ok := f(x).Unwrap(); ok {
			out = append(out, v)
		}
	}
	return wrap(out)
}

func Flatten[T any](ll List[List[T]]) List[T] {
	return FlatMap(ll, func(l List[T]) List[T] { return l })
}

// FlattenOption drops the absent elements and unwraps the rest.
func FlattenOption[T any](lo List[option.Option[T]]) List[T] {
	return FlatMapOption(lo, func(o option.Option[T]) option.Option[T] { return o })
}

// Pure is the single-element list.
func Pure[T any](x T) List[T] {
	return List[T]{elems: []T{x}}
}

// Ap applies every function to every value: [f(a) for f in fs for a in as].
func Ap[A, B any](fs List[func(A) B], as List[A]) List[B] {
	return FlatMap(fs, func(f func(A) B) List[B] { return Map(as, f) })
}

// Map2 combines every pair drawn from as and bs, as varying slowest.
func Map2[A, B, C any](as List[A], bs List[B], f func(A, B) C) List[C] {
	out := make([]C, 0, as.Len()*bs.Len())
	for _, a := range as.elems {
		for _, b := range bs.elems {
			out = append(out, f(a, b))
		}
	}
	return wrap(out)
}

// Concat joins lists in order.
func Concat[T any](ls ...List[T]) List[T] {
	parts := make([][]T, len(ls))
	for i, l := range ls {
		parts[i] = l.elems
	}
	return wrap(slices.Concat(parts...))
}
