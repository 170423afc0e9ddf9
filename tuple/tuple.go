// Package tuple provides fixed-arity immutable products with positional fields.
package tuple

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/collect_ive_go/internal/helper"
)

// Unit is the zero-field tuple.
type Unit struct{}

func (Unit) String() string { return "()" }

func (Unit) Slice() []any { return []any{} }

// Tuple2 is an immutable pair.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Of2 builds a Tuple2.
func Of2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{V1: a, V2: b}
}

// Unpack returns both fields.
func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// Swap returns the pair with its fields exchanged.
func (t Tuple2[A, B]) Swap() Tuple2[B, A] {
	return Tuple2[B, A]{V1: t.V2, V2: t.V1}
}

// Slice exports the fields in positional order.
func (t Tuple2[A, B]) Slice() []any {
	return []any{t.V1, t.V2}
}

// Equal is field-wise structural equality.
func (t Tuple2[A, B]) Equal(other Tuple2[A, B]) bool {
	return helper.Equal(t.V1, other.V1) && helper.Equal(t.V2, other.V2)
}

func (t Tuple2[A, B]) String() string {
	return format(t.Slice())
}

// Tuple3 is an immutable triple.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Of3 builds a Tuple3.
func Of3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: a, V2: b, V3: c}
}

func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.V1, t.V2, t.V3
}

func (t Tuple3[A, B, C]) Slice() []any {
	return []any{t.V1, t.V2, t.V3}
}

func (t Tuple3[A, B, C]) Equal(other Tuple3[A, B, C]) bool {
	return helper.Equal(t.V1, other.V1) &&
		helper.Equal(t.V2, other.V2) &&
		helper.Equal(t.V3, other.V3)
}

func (t Tuple3[A, B, C]) String() string {
	return format(t.Slice())
}

// Map applies f to every field of a homogeneous pair.
func Map[A, B any](t Tuple2[A, A], f func(A) B) Tuple2[B, B] {
	return Tuple2[B, B]{V1: f(t.V1), V2: f(t.V2)}
}

// Map3 applies f to every field of a homogeneous triple.
func Map3[A, B any](t Tuple3[A, A, A], f func(A) B) Tuple3[B, B, B] {
	return Tuple3[B, B, B]{V1: f(t.V1), V2: f(t.V2), V3: f(t.V3)}
}

// Bimap maps each field of a pair with its own function.
func Bimap[A, B, C, D any](t Tuple2[A, B], f func(A) C, g func(B) D) Tuple2[C, D] {
	return Tuple2[C, D]{V1: f(t.V1), V2: g(t.V2)}
}

func format(fields []any) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprint(f)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
