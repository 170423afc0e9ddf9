package list

import (
	"fmt"

	"github.com/on-the-ground/collect_ive_go/errs"
	"github.com/on-the-ground/collect_ive_go/internal/helper"
	"github.com/on-the-ground/collect_ive_go/option"
	"github.com/on-the-ground/collect_ive_go/tuple"
	"go.uber.org/multierr"
)

// FromAll imports untyped elements from an external container.
// Every element that is not a T is reported; the errors are combined with multierr
// and each one matches errs.ErrTypeMismatch.
func FromAll[T any](xs []any) (List[T], error) {
	out := make([]T, len(xs))
	var err error
	for i, x := range xs {
		v, e := helper.TypedValueAt[T](i, x)
		err = multierr.Append(err, e)
		out[i] = v
	}
	if err != nil {
		return Nil[T](), err
	}
	return wrap(out), nil
}

// Any erases the element type.
func Any[T any](l List[T]) List[any] {
	return Map(l, func(x T) any { return x })
}

// FlattenAny flattens a list whose elements are List[any] or option.Option[any].
// Any other element fails with ErrTypeMismatch.
func FlattenAny(l List[any]) (List[any], error) {
	var out []any
	for i, x := range l.elems {
		switch v := x.(type) {
		case List[any]:
			out = append(out, v.elems...)
		case option.Option[any]:
			out = append(out, v.Slice()...)
		default:
			return Nil[any](), fmt.Errorf("element %d: %w", i, errs.TypeMismatch("list or option", x))
		}
	}
	return wrap(out), nil
}

// FilterAny is Filter for predicates supplied by untyped callers.
// A result that is not a bool fails with ErrPredicateType.
func FilterAny[T any](l List[T], pred func(T) any) (List[T], error) {
	p, err := partitionAny("filter", l, pred)
	if err != nil {
		return Nil[T](), err
	}
	return p.V1, nil
}

// PartitionAny is Partition for predicates supplied by untyped callers.
// A result that is not a bool fails with ErrPredicateType.
func PartitionAny[T any](l List[T], pred func(T) any) (tuple.Tuple2[List[T], List[T]], error) {
	return partitionAny("partition", l, pred)
}

func partitionAny[T any](op string, l List[T], pred func(T) any) (tuple.Tuple2[List[T], List[T]], error) {
	var yes, no []T
	for _, x := range l.elems {
		ok, err := helper.BoolOf(op, pred(x))
		if err != nil {
			return tuple.Of2(Nil[T](), Nil[T]()), err
		}
		if ok {
			yes = append(yes, x)
		} else {
			no = append(no, x)
		}
	}
	return tuple.Of2(wrap(yes), wrap(no)), nil
}
