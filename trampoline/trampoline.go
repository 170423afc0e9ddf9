// Package trampoline drives linearly-recursive computations in a loop so that
// they use constant stack depth however many steps they chain.
//
// A recursive function is rewritten to return the next step instead of calling
// itself:
//
//	var count func(n, acc int) trampoline.Trampoline[int]
//	count = func(n, acc int) trampoline.Trampoline[int] {
//	    if n == 0 {
//	        return trampoline.Done(acc)
//	    }
//	    return trampoline.More(func() trampoline.Trampoline[int] {
//	        return count(n-1, acc+1)
//	    })
//	}
//	count(1_000_000, 0).Run()
//
// FlatMap and Map chain further steps onto a computation. Run keeps the pending
// continuations in a slice rather than on the call stack, so long chains of
// either are stack-safe too.
package trampoline

// step is the type-erased form of a Trampoline. It is suspended when next is
// set, a bind of sub into bind when bind is set, and done with value otherwise.
type step struct {
	value any
	next  func() *step
	sub   *step
	bind  func(any) *step
}

// Trampoline is either Done, carrying a final value, More, carrying a thunk
// that yields the next step, or a FlatMap of one computation into another.
// The zero Trampoline is Done with the zero value of T.
type Trampoline[T any] struct {
	s *step
}

func valueOf[T any](v any) T {
	t, _ := v.(T)
	return t
}

func (t Trampoline[T]) erased() *step {
	if t.s == nil {
		var zero T
		return &step{value: zero}
	}
	return t.s
}

// Done is a finished computation.
func Done[T any](v T) Trampoline[T] {
	return Trampoline[T]{s: &step{value: v}}
}

// More suspends the rest of a computation behind thunk.
func More[T any](thunk func() Trampoline[T]) Trampoline[T] {
	if thunk == nil {
		panic("trampoline: More with nil thunk")
	}
	return Trampoline[T]{s: &step{next: func() *step { return thunk().erased() }}}
}

// FlatMap runs t, then the computation f builds from its result.
// f is not called before t completes, even when t is already Done.
func FlatMap[T, U any](t Trampoline[T], f func(T) Trampoline[U]) Trampoline[U] {
	return Trampoline[U]{s: &step{
		sub:  t.erased(),
		bind: func(v any) *step { return f(valueOf[T](v)).erased() },
	}}
}

// Map applies f to the result of t once it has completed.
func Map[T, U any](t Trampoline[T], f func(T) U) Trampoline[U] {
	return FlatMap(t, func(v T) Trampoline[U] { return Done(f(v)) })
}

func (t Trampoline[T]) IsDone() bool {
	return t.s == nil || (t.s.next == nil && t.s.bind == nil)
}

// Step advances the computation by one reduction: a thunk call, a bind of a
// finished value, or a reassociation of nested binds. A Done is returned unchanged.
func (t Trampoline[T]) Step() Trampoline[T] {
	if t.IsDone() {
		return t
	}
	return Trampoline[T]{s: advance(t.s)}
}

func advance(s *step) *step {
	if s.next != nil {
		return s.next()
	}
	sub := s.sub
	switch {
	case sub.bind != nil:
		inner, outer := sub.bind, s.bind
		return &step{sub: sub.sub, bind: func(v any) *step {
			return &step{sub: inner(v), bind: outer}
		}}
	case sub.next != nil:
		return &step{sub: sub.next(), bind: s.bind}
	default:
		return s.bind(sub.value)
	}
}

// Run evaluates the computation until it is Done and returns its value.
// Thunks return to this loop and pending binds wait in a slice, so stack depth
// does not grow with the number of steps.
func (t Trampoline[T]) Run() T {
	return valueOf[T](run(t.erased()))
}

func run(s *step) any {
	var conts []func(any) *step
	for {
		switch {
		case s.bind != nil:
			conts = append(conts, s.bind)
			s = s.sub
		case s.next != nil:
			s = s.next()
		case len(conts) == 0:
			return s.value
		default:
			k := conts[len(conts)-1]
			conts = conts[:len(conts)-1]
			s = k(s.value)
		}
	}
}
