package typeclass

// Monoid is an associative Combine with an Empty identity element.
type Monoid[A any] interface {
	Empty() A
	Combine(x, y A) A
}

// Number is satisfied by every built-in numeric type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

type monoid[A any] struct {
	empty   A
	combine func(x, y A) A
}

func (m monoid[A]) Empty() A { return m.empty }

func (m monoid[A]) Combine(x, y A) A { return m.combine(x, y) }

// MonoidOf builds a Monoid from its identity and combine function.
// The caller is responsible for associativity.
func MonoidOf[A any](empty A, combine func(x, y A) A) Monoid[A] {
	return monoid[A]{empty: empty, combine: combine}
}

func Sum[N Number]() Monoid[N] {
	return MonoidOf(N(0), func(x, y N) N { return x + y })
}

func Product[N Number]() Monoid[N] {
	return MonoidOf(N(1), func(x, y N) N { return x * y })
}

// Strings concatenates strings.
func Strings() Monoid[string] {
	return MonoidOf("", func(x, y string) string { return x + y })
}

// All is boolean conjunction.
func All() Monoid[bool] {
	return MonoidOf(true, func(x, y bool) bool { return x && y })
}

// Any is boolean disjunction.
func Any() Monoid[bool] {
	return MonoidOf(false, func(x, y bool) bool { return x || y })
}

// CombineAll folds as left to right, starting from m.Empty().
func CombineAll[A any](m Monoid[A], as ...A) A {
	acc := m.Empty()
	for _, a := range as {
		acc = m.Combine(acc, a)
	}
	return acc
}
