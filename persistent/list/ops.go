package list

import (
	"slices"

	"github.com/on-the-ground/collect_ive_go/option"
	"github.com/on-the-ground/collect_ive_go/tuple"
)

// Filter keeps the elements satisfying pred, in order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	out := make([]T, 0, len(l.elems))
	for _, x := range l.elems {
		if pred(x) {
			out = append(out, x)
		}
	}
	return wrap(out)
}

// Reject drops the elements satisfying pred.
func (l List[T]) Reject(pred func(T) bool) List[T] {
	return l.Filter(func(x T) bool { return !pred(x) })
}

// Partition splits the list into (matching, nonMatching), both in source order.
func (l List[T]) Partition(pred func(T) bool) tuple.Tuple2[List[T], List[T]] {
	var yes, no []T
	for _, x := range l.elems {
		if pred(x) {
			yes = append(yes, x)
		} else {
			no = append(no, x)
		}
	}
	return tuple.Of2(wrap(yes), wrap(no))
}

// SplitAt returns (prefix[0,i), suffix[i,len)).
// i <= 0 yields (empty, all) and i >= Len() yields (all, empty).
func (l List[T]) SplitAt(i int) tuple.Tuple2[List[T], List[T]] {
	switch {
	case i <= 0:
		return tuple.Of2(Nil[T](), l)
	case i >= len(l.elems):
		return tuple.Of2(l, Nil[T]())
	default:
		return tuple.Of2(wrap(l.elems[:i]), wrap(l.elems[i:]))
	}
}

// Take returns the first n elements.
func (l List[T]) Take(n int) List[T] {
	return l.SplitAt(n).V1
}

// Drop returns everything after the first n elements.
func (l List[T]) Drop(n int) List[T] {
	return l.SplitAt(n).V2
}

// TakeWhile returns the longest prefix whose elements satisfy pred.
func (l List[T]) TakeWhile(pred func(T) bool) List[T] {
	return l.Take(l.prefixLen(pred))
}

// DropWhile drops the longest prefix whose elements satisfy pred.
func (l List[T]) DropWhile(pred func(T) bool) List[T] {
	return l.Drop(l.prefixLen(pred))
}

func (l List[T]) prefixLen(pred func(T) bool) int {
	n := 0
	for n < len(l.elems) && pred(l.elems[n]) {
		n++
	}
	return n
}

func (l List[T]) Reverse() List[T] {
	out := slices.Clone(l.elems)
	slices.Reverse(out)
	return wrap(out)
}

// Append returns the list with xs added at the end.
func (l List[T]) Append(xs ...T) List[T] {
	return wrap(slices.Concat(l.elems, xs))
}

// Prepend returns the list with x added at the front.
func (l List[T]) Prepend(x T) List[T] {
	return wrap(slices.Concat([]T{x}, l.elems))
}

func (l List[T]) Concat(other List[T]) List[T] {
	return wrap(slices.Concat(l.elems, other.elems))
}

func (l List[T]) Exists(pred func(T) bool) bool {
	return slices.ContainsFunc(l.elems, pred)
}

func (l List[T]) ForAll(pred func(T) bool) bool {
	return !l.Exists(func(x T) bool { return !pred(x) })
}

// Find returns the first element satisfying pred.
func (l List[T]) Find(pred func(T) bool) option.Option[T] {
	if i := slices.IndexFunc(l.elems, pred); i >= 0 {
		return option.Some(l.elems[i])
	}
	return option.None[T]()
}

// Zip pairs elements by position up to the shorter length.
func Zip[A, B any](as List[A], bs List[B]) List[tuple.Tuple2[A, B]] {
	n := min(as.Len(), bs.Len())
	out := make([]tuple.Tuple2[A, B], n)
	for i := range n {
		out[i] = tuple.Of2(as.elems[i], bs.elems[i])
	}
	return wrap(out)
}

// Unzip splits a list of pairs.
func Unzip[A, B any](l List[tuple.Tuple2[A, B]]) tuple.Tuple2[List[A], List[B]] {
	as := make([]A, l.Len())
	bs := make([]B, l.Len())
	for i, p := range l.elems {
		as[i], bs[i] = p.Unpack()
	}
	return tuple.Of2(wrap(as), wrap(bs))
}

// Transpose turns rows into columns. Columns stop at the shortest row.
func Transpose[T any](rows List[List[T]]) List[List[T]] {
	if rows.IsEmpty() {
		return Nil[List[T]]()
	}
	width := rows.elems[0].Len()
	for _, r := range rows.elems[1:] {
		width = min(width, r.Len())
	}
	cols := make([]List[T], width)
	for i := range width {
		col := make([]T, rows.Len())
		for j, r := range rows.elems {
			col[j] = r.elems[i]
		}
		cols[i] = wrap(col)
	}
	return wrap(cols)
}
