package option

import "github.com/on-the-ground/collect_ive_go/internal/helper"

// Map applies f to the value if present. Map(None, f) is None.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.defined {
		return None[B]()
	}
	return Some(f(o.value))
}

func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.defined {
		return None[B]()
	}
	return f(o.value)
}

func Flatten[A any](oo Option[Option[A]]) Option[A] {
	return FlatMap(oo, func(o Option[A]) Option[A] { return o })
}

// Fold returns onNone() for None and onSome(v) for Some(v).
func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if !o.defined {
		return onNone()
	}
	return onSome(o.value)
}

// Ap applies a wrapped function to a wrapped value.
func Ap[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	if !of.defined || !oa.defined {
		return None[B]()
	}
	return Some(of.value(oa.value))
}

// Map2 combines two options; the result is None unless both are present.
func Map2[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	if !oa.defined || !ob.defined {
		return None[C]()
	}
	return Some(f(oa.value, ob.value))
}

// FlatMapAny is the untyped FlatMap used by dynamic callers.
// f must return an Option[any]; any other result fails with ErrTypeMismatch.
func FlatMapAny(o Option[any], f func(any) any) (Option[any], error) {
	if !o.defined {
		return None[any](), nil
	}
	return helper.TypedValueOf[Option[any]](f(o.value))
}

// Any erases the element type of o.
func Any[A any](o Option[A]) Option[any] {
	return Map(o, func(a A) any { return a })
}

// FromAny asserts the payload of an erased option back to T.
func FromAny[T any](o Option[any]) (Option[T], error) {
	if !o.defined {
		return None[T](), nil
	}
	v, err := helper.TypedValueOf[T](o.value)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}
