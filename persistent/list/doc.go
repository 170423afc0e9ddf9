// Package list implements an immutable, generic ordered sequence.
//
// Every transformation returns a new List and leaves its input untouched, so a
// List can be shared freely between goroutines.
//
// Operations that keep the element type are methods:
//
//	l := list.Of(1, 2, 3, 4)
//	evens := l.Filter(func(i int) bool { return i%2 == 0 })
//	front, back := l.SplitAt(2).Unpack()
//
// Operations that change the element type are functions, because Go methods
// cannot introduce type parameters:
//
//	strs := list.Map(l, strconv.Itoa)
//	sum := list.FoldLeft(l, 0, func(acc, x int) int { return acc + x })
//
// # Stack safety
//
// FoldLeft, FoldRight, Reduce and Traverse run on the trampoline package, so
// they use constant stack depth whatever the length of the list.
//
// # Partial operations
//
// Head, Tail, Init, Last and Reduce return errs.ErrEmptyContainer on an empty
// list. HeadOption, LastOption and Nth never fail.
//
// # Traverse and Sequence
//
// The wrapping of the elements is always passed explicitly as a
// typeclass.Constructor:
//
//	list.Sequence(list.Of(option.Some(1), option.Some(2)), option.Constructor[int, list.List[int]]{})
//	// Some(List(1,2))
//
// SequenceOption and TraverseOption are shorthands for Option.
package list
