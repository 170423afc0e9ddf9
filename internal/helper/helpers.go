package helper

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/on-the-ground/collect_ive_go/errs"
)

// TypedValueOf safely asserts v to the expected type T.
// Returns an ErrTypeMismatch-wrapped error if the assertion fails.
func TypedValueOf[T any](v any) (T, error) {
	val, ok := v.(T)
	if !ok {
		var zero T
		return zero, errs.TypeMismatch(typeName[T](), v)
	}
	return val, nil
}

// TypedValueAt is TypedValueOf with the element position added to the error.
func TypedValueAt[T any](idx int, v any) (T, error) {
	val, err := TypedValueOf[T](v)
	if err != nil {
		return val, fmt.Errorf("element %d: %w", idx, err)
	}
	return val, nil
}

// BoolOf asserts that a predicate result is a bool.
func BoolOf(op string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errs.PredicateType(op, v)
	}
	return b, nil
}

func typeName[T any]() string {
	var zero T
	if name := fmt.Sprintf("%T", zero); name != "<nil>" {
		return name
	}
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports structural equality of a and b.
// Types with an Equal method are compared through it; unexported fields are compared too.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}
