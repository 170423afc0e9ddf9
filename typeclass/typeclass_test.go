package typeclass_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/collect_ive_go/fn"
	"github.com/on-the-ground/collect_ive_go/option"
	"github.com/on-the-ground/collect_ive_go/persistent/list"
	"github.com/on-the-ground/collect_ive_go/tuple"
	"github.com/on-the-ground/collect_ive_go/typeclass"
	"github.com/stretchr/testify/assert"
)

type intList = list.List[int]

func sameList[T any](a, b list.List[T]) bool { return a.Equal(b) }

func TestMonoids(t *testing.T) {
	assert.Equal(t, 10, typeclass.CombineAll(typeclass.Sum[int](), 1, 2, 3, 4))
	assert.Equal(t, 6.0, typeclass.CombineAll(typeclass.Product[float64](), 1, 2, 3))
	assert.Equal(t, "abc", typeclass.CombineAll(typeclass.Strings(), "a", "b", "c"))
	assert.True(t, typeclass.CombineAll(typeclass.All()))
	assert.False(t, typeclass.CombineAll(typeclass.All(), true, false))
	assert.False(t, typeclass.CombineAll(typeclass.Any()))
	assert.True(t, typeclass.CombineAll(typeclass.Any(), false, true))
}

func TestMonoidOf(t *testing.T) {
	maxM := typeclass.MonoidOf(0, func(x, y int) int { return max(x, y) })
	assert.Equal(t, 7, typeclass.CombineAll(maxM, 3, 7, 2))
	assert.Equal(t, 0, typeclass.CombineAll(maxM))
}

func TestFunctorLaws_List(t *testing.T) {
	l := list.Of(1, 2, 3)

	assert.True(t, typeclass.FunctorIdentity[int](list.Instance[int, int]{}, l, sameList[int]))
	assert.True(t, typeclass.FunctorComposition[int, int, string, intList, intList, list.List[string]](
		list.Instance[int, int]{},
		list.Instance[int, string]{},
		list.Instance[int, string]{},
		l,
		func(i int) int { return i + 1 },
		strconv.Itoa,
		sameList[string],
	))
}

func TestFunctorLaws_Option(t *testing.T) {
	eq := func(a, b option.Option[int]) bool { return a.Equal(b) }
	assert.True(t, typeclass.FunctorIdentity[int](option.Instance[int, int]{}, option.Some(3), eq))
	assert.True(t, typeclass.FunctorIdentity[int](option.Instance[int, int]{}, option.None[int](), eq))
}

func TestLift(t *testing.T) {
	show := typeclass.Lift[int, string, intList, list.List[string]](list.Instance[int, string]{}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2"}, show(list.Of(1, 2)).Slice())
}

func TestAsAndVoid(t *testing.T) {
	l := list.Of(1, 2, 3)

	as := typeclass.As[int, string, intList, list.List[string]](list.Instance[int, string]{}, l, "x")
	assert.Equal(t, []string{"x", "x", "x"}, as.Slice())

	void := typeclass.Void[int, intList, list.List[tuple.Unit]](list.Instance[int, tuple.Unit]{}, l)
	assert.Equal(t, 3, void.Len())
	assert.Equal(t, "List((),(),())", void.String())
}

func TestZipWith(t *testing.T) {
	zipped := typeclass.ZipWith[int, string, intList, list.List[tuple.Tuple2[int, string]]](
		list.Instance[int, tuple.Tuple2[int, string]]{},
		list.Of(1, 2),
		strconv.Itoa,
	)
	assert.Equal(t, "List((1,1),(2,2))", zipped.String())
}

func TestFlatten(t *testing.T) {
	ll := list.Of(list.Of(1, 2), list.Of(3))
	flat := typeclass.Flatten[int, intList, list.List[intList]](list.Instance[intList, int]{}, ll)
	assert.Equal(t, []int{1, 2, 3}, flat.Slice())

	oo := option.Some(option.Some(1))
	assert.Equal(t, 1, typeclass.Flatten[int, option.Option[int], option.Option[option.Option[int]]](
		option.Instance[option.Option[int], int]{}, oo,
	).MustGet())
}

func TestSequence(t *testing.T) {
	tr := list.TraversalOf[option.Option[int], int, option.Option[int], option.Option[intList]](
		option.Constructor[int, intList]{},
	)

	got := typeclass.Sequence[int, list.List[option.Option[int]], option.Option[int], option.Option[intList]](
		tr, list.Of(option.Some(1), option.Some(2)),
	)
	assert.Equal(t, []int{1, 2}, got.MustGet().Slice())

	missing := typeclass.Sequence[int, list.List[option.Option[int]], option.Option[int], option.Option[intList]](
		tr, list.Of(option.Some(1), option.None[int]()),
	)
	assert.True(t, missing.IsEmpty())
}

func total[FA any](F typeclass.Foldable[int, int, FA], fa FA) int {
	return F.FoldMap(fa, typeclass.Sum[int](), fn.Identity[int])
}

func TestFoldableAbstraction(t *testing.T) {
	assert.Equal(t, 6, total[intList](list.Instance[int, int]{}, list.Of(1, 2, 3)))
	assert.Equal(t, 4, total[option.Option[int]](option.Instance[int, int]{}, option.Some(4)))
	assert.Equal(t, 0, total[option.Option[int]](option.Instance[int, int]{}, option.None[int]()))
}

func TestApplicativeMap2_ResultIsSecondOperandType(t *testing.T) {
	var app typeclass.Applicative[int, string, intList, list.List[string], list.List[func(int) string]] = list.Instance[int, string]{}
	got := app.Map2(list.Of(1, 2), list.Of("a"), func(i int, s string) string { return strconv.Itoa(i) + s })
	assert.Equal(t, []string{"1a", "2a"}, got.Slice())

	// Three distinct element types go through the free function.
	fits := list.Map2(list.Of(1, 2), list.Of("a"), func(i int, s string) bool { return len(s) == i })
	assert.Equal(t, []bool{true, false}, fits.Slice())
}
