package list

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/on-the-ground/collect_ive_go/errs"
	"github.com/on-the-ground/collect_ive_go/internal/helper"
	"github.com/on-the-ground/collect_ive_go/option"
)

// List is an immutable ordered sequence.
//
// The backing slice is never written after construction, so Tail, Init, Take and
// Drop share it. Operations that add elements always allocate a new backing array.
// The zero value is the empty list.
type List[T any] struct {
	elems []T
}

// wrap takes ownership of s. Empty lists are normalized to a nil backing slice.
func wrap[T any](s []T) List[T] {
	if len(s) == 0 {
		return List[T]{}
	}
	return List[T]{elems: s}
}

// Of builds a list of the given elements.
func Of[T any](xs ...T) List[T] {
	return wrap(slices.Clone(xs))
}

// Nil is the empty list.
func Nil[T any]() List[T] {
	return List[T]{}
}

// FromSlice imports a slice. The slice is copied.
func FromSlice[T any](s []T) List[T] {
	return wrap(slices.Clone(s))
}

// FromSeq imports the values of an iterator.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	return wrap(slices.Collect(seq))
}

// FromOption is the list of 0 or 1 elements held by o.
func FromOption[T any](o option.Option[T]) List[T] {
	return wrap(o.Slice())
}

func (l List[T]) Len() int {
	return len(l.elems)
}

func (l List[T]) IsEmpty() bool {
	return len(l.elems) == 0
}

// Head returns the first element, or ErrEmptyContainer.
func (l List[T]) Head() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errs.EmptyContainer("head of empty list")
	}
	return l.elems[0], nil
}

// Tail returns every element but the first, or ErrEmptyContainer.
func (l List[T]) Tail() (List[T], error) {
	if l.IsEmpty() {
		return l, errs.EmptyContainer("tail of empty list")
	}
	return wrap(l.elems[1:]), nil
}

// Init returns every element but the last, or ErrEmptyContainer.
func (l List[T]) Init() (List[T], error) {
	if l.IsEmpty() {
		return l, errs.EmptyContainer("init of empty list")
	}
	return wrap(l.elems[:len(l.elems)-1]), nil
}

// Last returns the last element, or ErrEmptyContainer.
func (l List[T]) Last() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errs.EmptyContainer("last of empty list")
	}
	return l.elems[len(l.elems)-1], nil
}

func (l List[T]) MustHead() T { return errs.Must(l.Head()) }

func (l List[T]) MustLast() T { return errs.Must(l.Last()) }

func (l List[T]) HeadOption() option.Option[T] {
	return l.Nth(0)
}

func (l List[T]) LastOption() option.Option[T] {
	return l.Nth(len(l.elems) - 1)
}

// ToOption is the head of the list as an Option.
func (l List[T]) ToOption() option.Option[T] {
	return l.HeadOption()
}

// Nth returns the element at index i, or None when i is out of range.
func (l List[T]) Nth(i int) option.Option[T] {
	if i < 0 || i >= len(l.elems) {
		return option.None[T]()
	}
	return option.Some(l.elems[i])
}

// Slice exports a copy of the elements in order.
func (l List[T]) Slice() []T {
	return slices.Clone(l.elems)
}

func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.elems)
}

func (l List[T]) Values() iter.Seq[T] {
	return slices.Values(l.elems)
}

func (l List[T]) ForEach(f func(T)) {
	for _, x := range l.elems {
		f(x)
	}
}

// Equal compares element-wise with structural equality.
func (l List[T]) Equal(other List[T]) bool {
	return l.EqualFunc(other, helper.Equal[T])
}

func (l List[T]) EqualFunc(other List[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(l.elems, other.elems, eq)
}

// MkString joins the elements with sep.
func (l List[T]) MkString(sep string) string {
	parts := make([]string, len(l.elems))
	for i, x := range l.elems {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, sep)
}

// MkStringWith joins the elements with sep between start and end.
func (l List[T]) MkStringWith(start, sep, end string) string {
	return start + l.MkString(sep) + end
}

func (l List[T]) String() string {
	return l.MkStringWith("List(", ",", ")")
}
