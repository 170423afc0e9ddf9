// Package errs holds the sentinel errors shared by every container in this module.
//
// All of them describe a broken calling contract rather than a transient failure:
// they are returned (or panicked by the MustXxx variants) at the call that violates
// the contract and are never retried. Match them with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContainer is returned by Head, Tail, Init, Last, Reduce and Get
	// on an empty list or an absent option.
	ErrEmptyContainer = errors.New("empty container")

	// ErrTypeMismatch is returned by the untyped bridges (FromAll, FlattenAny, FlatMapAny)
	// when a value is neither the expected container kind nor an option.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrPredicateType is returned by FilterAny and PartitionAny when the predicate
	// does not produce a bool.
	ErrPredicateType = errors.New("predicate must return a boolean")

	// ErrInvalidCapacity is returned when a bounded cache is built with capacity < 1.
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
)

// EmptyContainer wraps ErrEmptyContainer with the name of the failing operation.
func EmptyContainer(op string) error {
	return fmt.Errorf("%w: %s", ErrEmptyContainer, op)
}

// TypeMismatch wraps ErrTypeMismatch with the offending value's dynamic type.
func TypeMismatch(want string, got any) error {
	return fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, want, got)
}

// PredicateType wraps ErrPredicateType with the offending result's dynamic type.
func PredicateType(op string, got any) error {
	return fmt.Errorf("%w: %s predicate returned %T", ErrPredicateType, op, got)
}

// Must panics if err is non-nil and returns v otherwise.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
