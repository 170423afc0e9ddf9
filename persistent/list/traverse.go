package list

import (
	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/option"
	"github.com/on-the-ground/collect_ive_go/trampoline"
	"github.com/on-the-ground/collect_ive_go/typeclass"
)

// Traverse maps every element to a wrapped value with f and flips the result:
// if every wrapped value is present under c, the unwrapped list is wrapped once;
// otherwise the result is c's absent case for the first absent value.
//
// The constructor c is always explicit; it is never inferred from the elements.
func Traverse[A, B, GB, GL any](l List[A], c typeclass.Constructor[B, GB, List[B], GL], f func(A) GB) GL {
	var step func(xs List[A], acc []B) trampoline.Trampoline[GL]
	step = func(xs List[A], acc []B) trampoline.Trampoline[GL] {
		if xs.IsEmpty() {
			return trampoline.Done(c.Wrap(wrap(acc)))
		}
		gb := f(xs.elems[0])
		b, ok := c.Unwrap(gb)
		if !ok {
			return trampoline.Done(c.Absent(gb))
		}
		return trampoline.More(func() trampoline.Trampoline[GL] {
			return step(wrap(xs.elems[1:]), append(acc, b))
		})
	}
	return step(l, make([]B, 0, l.Len())).Run()
}

// Sequence flips a list of wrapped values. See Traverse.
func Sequence[A, GA, GL any](l List[GA], c typeclass.Constructor[A, GA, List[A], GL]) GL {
	return Traverse(l, c, fn.Identity[GA])
}

// TraverseOption is Traverse with Option as the wrapping.
func TraverseOption[A, B any](l List[A], f func(A) option.Option[B]) option.Option[List[B]] {
	return Traverse[A, B, option.Option[B], option.Option[List[B]]](l, option.Constructor[B, List[B]]{}, f)
}

// SequenceOption turns a list of options into Some(list) if all are present, None otherwise.
func SequenceOption[A any](l List[option.Option[A]]) option.Option[List[A]] {
	return Sequence[A, option.Option[A], option.Option[List[A]]](l, option.Constructor[A, List[A]]{})
}
