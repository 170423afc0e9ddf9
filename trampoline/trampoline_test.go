package trampoline_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/collect_ive_go/trampoline"
	"github.com/stretchr/testify/assert"
)

func countDown(n, acc int) trampoline.Trampoline[int] {
	if n == 0 {
		return trampoline.Done(acc)
	}
	return trampoline.More(func() trampoline.Trampoline[int] {
		return countDown(n-1, acc+1)
	})
}

func TestRun_Done(t *testing.T) {
	assert.Equal(t, 42, trampoline.Done(42).Run())
	assert.True(t, trampoline.Done(42).IsDone())
}

func TestRun_DeepChainIsStackSafe(t *testing.T) {
	const n = 5_000_000
	assert.Equal(t, n, countDown(n, 0).Run())
}

func TestStep_AdvancesOneThunk(t *testing.T) {
	tr := countDown(3, 0)
	steps := 0
	for !tr.IsDone() {
		tr = tr.Step()
		steps++
	}
	assert.Equal(t, 3, steps)
	assert.Equal(t, 3, tr.Run())

	// Step on Done is a no-op.
	assert.Equal(t, 3, tr.Step().Run())
}

func TestMap(t *testing.T) {
	got := trampoline.Map(countDown(10, 0), strconv.Itoa)
	assert.False(t, got.IsDone())
	assert.Equal(t, "10", got.Run())

	assert.Equal(t, "1", trampoline.Map(trampoline.Done(1), strconv.Itoa).Run())
}

func TestMore_NilThunkPanics(t *testing.T) {
	assert.Panics(t, func() {
		trampoline.More[int](nil)
	})
}

func TestRun_MutualRecursion(t *testing.T) {
	var isEven, isOdd func(n int) trampoline.Trampoline[bool]
	isEven = func(n int) trampoline.Trampoline[bool] {
		if n == 0 {
			return trampoline.Done(true)
		}
		return trampoline.More(func() trampoline.Trampoline[bool] { return isOdd(n - 1) })
	}
	isOdd = func(n int) trampoline.Trampoline[bool] {
		if n == 0 {
			return trampoline.Done(false)
		}
		return trampoline.More(func() trampoline.Trampoline[bool] { return isEven(n - 1) })
	}

	assert.True(t, isEven(1_000_000).Run())
	assert.True(t, isOdd(999_999).Run())
}

func TestMap_LongChainIsStackSafe(t *testing.T) {
	const n = 1_000_000
	tr := trampoline.Done(0)
	for range n {
		tr = trampoline.Map(tr, func(i int) int { return i + 1 })
	}
	assert.Equal(t, n, tr.Run())
}

func sumTo(n int) trampoline.Trampoline[int] {
	if n == 0 {
		return trampoline.Done(0)
	}
	rest := trampoline.More(func() trampoline.Trampoline[int] { return sumTo(n - 1) })
	return trampoline.FlatMap(rest, func(s int) trampoline.Trampoline[int] {
		return trampoline.Done(s + n)
	})
}

func TestFlatMap_NonTailRecursionIsStackSafe(t *testing.T) {
	const n = 200_000
	assert.Equal(t, n*(n+1)/2, sumTo(n).Run())
}

func TestFlatMap_IsLazy(t *testing.T) {
	called := false
	tr := trampoline.FlatMap(trampoline.Done(2), func(i int) trampoline.Trampoline[string] {
		called = true
		return trampoline.Done(strconv.Itoa(i * 2))
	})
	assert.False(t, called)
	assert.False(t, tr.IsDone())
	assert.Equal(t, "4", tr.Run())
	assert.True(t, called)
}

func TestStep_ThroughBinds(t *testing.T) {
	tr := trampoline.Map(trampoline.Map(countDown(3, 0), func(i int) int { return i * 10 }), strconv.Itoa)
	for !tr.IsDone() {
		tr = tr.Step()
	}
	assert.Equal(t, "30", tr.Run())
}

func TestZeroValue(t *testing.T) {
	var zero trampoline.Trampoline[int]
	assert.True(t, zero.IsDone())
	assert.Equal(t, 0, zero.Run())

	noErr := trampoline.Done[error](nil)
	assert.NoError(t, noErr.Run())
}
