// Package option provides Option, a container holding zero or one value.
//
// Option is the absence/presence type returned by every lookup in this module
// (list.Nth, hashmap.Map.Get, lru.Cache.Get). It is an immutable value type.
package option

import (
	"fmt"

	"github.com/on-the-ground/collect_ive_go/errs"
	"github.com/on-the-ground/collect_ive_go/internal/helper"
)

// Option is either Some(value) or None.
type Option[T any] struct {
	value   T
	defined bool
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

// None constructs an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr is None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// When is Some(v) if cond holds, None otherwise.
func When[T any](cond bool, v T) Option[T] {
	if !cond {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsDefined() bool { return o.defined }

func (o Option[T]) IsEmpty() bool { return !o.defined }

// Get returns the value, or ErrEmptyContainer on None.
func (o Option[T]) Get() (T, error) {
	if !o.defined {
		var zero T
		return zero, errs.EmptyContainer("get on None")
	}
	return o.value, nil
}

// MustGet is the panic-on-failure variant of Get.
func (o Option[T]) MustGet() T {
	return errs.Must(o.Get())
}

// Unwrap returns the value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.defined
}

func (o Option[T]) GetOrElse(fallback T) T {
	if !o.defined {
		return fallback
	}
	return o.value
}

// GetOrElseFunc evaluates fallback only on None.
func (o Option[T]) GetOrElseFunc(fallback func() T) T {
	if !o.defined {
		return fallback()
	}
	return o.value
}

// OrElse returns o if present, alt otherwise.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if !o.defined {
		return alt
	}
	return o
}

// Filter keeps the value only if pred holds.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.defined && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) ForEach(f func(T)) {
	if o.defined {
		f(o.value)
	}
}

// Slice exports the option as a slice of length 0 or 1.
func (o Option[T]) Slice() []T {
	if !o.defined {
		return []T{}
	}
	return []T{o.value}
}

// Equal is true if both are None, or both are Some with structurally equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.defined != other.defined {
		return false
	}
	return !o.defined || helper.Equal(o.value, other.value)
}

func (o Option[T]) String() string {
	if !o.defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
