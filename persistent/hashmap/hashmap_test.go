package hashmap_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/on-the-ground/collect_ive_go/errs"
	"github.com/on-the-ground/collect_ive_go/persistent/hash"
	"github.com/on-the-ground/collect_ive_go/persistent/hashmap"
	"github.com/on-the-ground/collect_ive_go/tuple"
	"github.com/on-the-ground/collect_ive_go/typeclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PlusGetMinus(t *testing.T) {
	empty := hashmap.New[string, int]()
	m := empty.Plus("a", 1)

	assert.Equal(t, 1, m.Get("a").MustGet())
	assert.True(t, m.Minus("a").Get("a").IsEmpty())
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 1, m.Len())
}

func TestMap_OverwriteKeepsPosition(t *testing.T) {
	m := hashmap.New(tuple.Of2("a", 1), tuple.Of2("b", 2), tuple.Of2("c", 3))
	updated := m.Plus("a", 10)

	assert.Equal(t, []string{"a", "b", "c"}, updated.Keys().Slice())
	assert.Equal(t, []int{10, 2, 3}, updated.Values().Slice())
	assert.Equal(t, 1, m.Get("a").MustGet())
}

func TestMap_MinusAbsentIsNoop(t *testing.T) {
	m := hashmap.New(tuple.Of2(1, "x"))
	assert.True(t, m.Minus(2).Equal(m))
}

func TestMap_Merge(t *testing.T) {
	left := hashmap.New(tuple.Of2("a", 1), tuple.Of2("b", 2))
	right := hashmap.New(tuple.Of2("b", 20), tuple.Of2("c", 30))

	merged := left.Merge(right)
	assert.Equal(t, "Map(a => 1, b => 20, c => 30)", merged.String())
	assert.Equal(t, "Map(a => 1, b => 2)", left.String())
}

func TestMap_GetOrElseContains(t *testing.T) {
	m := hashmap.New(tuple.Of2("a", 1))
	assert.Equal(t, 1, m.GetOrElse("a", 0))
	assert.Equal(t, -1, m.GetOrElse("z", -1))
	assert.True(t, m.Contains("a"))
	assert.False(t, m.Contains("z"))
}

func TestMap_EqualIgnoresOrder(t *testing.T) {
	a := hashmap.New(tuple.Of2("x", []int{1}), tuple.Of2("y", []int{2}))
	b := hashmap.New(tuple.Of2("y", []int{2}), tuple.Of2("x", []int{1}))
	c := a.Plus("x", []int{9})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(a.Minus("x")))
}

func TestMap_CustomHandler(t *testing.T) {
	fold := hash.By(strings.ToLower)
	m := hashmap.NewWith(fold, tuple.Of2("Key", 1), tuple.Of2("KEY", 2))

	require.Equal(t, 1, m.Len())
	assert.Equal(t, 2, m.Get("key").MustGet())
	assert.Equal(t, "Key", m.Keys().MustHead())
}

func TestMap_FromGoMap(t *testing.T) {
	m := hashmap.FromGoMap(map[string]int{"a": 1, "b": 2})
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, hashmap.ToGoMap(m))
}

func TestMap_FromAll(t *testing.T) {
	m, err := hashmap.FromAll[string, int]([]tuple.Tuple2[any, any]{
		tuple.Of2[any, any]("a", 1),
		tuple.Of2[any, any]("b", 2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Map(a => 1, b => 2)", m.String())

	_, err = hashmap.FromAll[string, int]([]tuple.Tuple2[any, any]{
		tuple.Of2[any, any](1, 1),
		tuple.Of2[any, any]("b", "two"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "entry 0 key")
	assert.Contains(t, err.Error(), "entry 1 value")
}

func TestMap_Entries(t *testing.T) {
	m := hashmap.New(tuple.Of2(1, "one"), tuple.Of2(2, "two"))
	assert.Equal(t, "List((1,one),(2,two))", m.Entries().String())
}

func TestMap_Transforms(t *testing.T) {
	m := hashmap.New(tuple.Of2("a", 1), tuple.Of2("b", 2), tuple.Of2("c", 3))

	doubled := hashmap.MapValues(m, func(v int) int { return v * 2 })
	assert.Equal(t, "Map(a => 2, b => 4, c => 6)", doubled.String())
	assert.Equal(t, 4, doubled.Get("b").MustGet())

	odd := m.Filter(func(_ string, v int) bool { return v%2 == 1 })
	assert.Equal(t, "Map(a => 1, c => 3)", odd.String())
	assert.True(t, odd.Get("b").IsEmpty())

	inverted := hashmap.MapEntries(m, hash.Comparable[int](), func(k string, v int) tuple.Tuple2[int, string] {
		return tuple.Of2(v, k)
	})
	assert.Equal(t, "a", inverted.Get(1).MustGet())

	collapsed := hashmap.MapEntries(m, hash.String(), func(_ string, v int) tuple.Tuple2[string, int] {
		return tuple.Of2("k", v)
	})
	assert.Equal(t, "Map(k => 3)", collapsed.String())

	sum := hashmap.FoldLeft(m, "", func(acc string, k string, v int) string {
		return acc + k + strconv.Itoa(v)
	})
	assert.Equal(t, "a1b2c3", sum)
}

func TestMap_Instance(t *testing.T) {
	m := hashmap.New(tuple.Of2("a", 1), tuple.Of2("b", 2))
	inst := hashmap.Instance[string, int, string]{}

	shown := inst.Map(m, strconv.Itoa)
	assert.Equal(t, "1", shown.Get("a").MustGet())
	assert.Equal(t, "12", inst.FoldMap(m, typeclass.Strings(), strconv.Itoa))
	assert.Equal(t, "21", inst.FoldRight(m, "", func(v int, acc string) string {
		return acc + strconv.Itoa(v)
	}))
	assert.Equal(t, 3, hashmap.Instance[string, int, int]{}.Fold(m, typeclass.Sum[int]()))
}

func TestMap_FlatMap(t *testing.T) {
	m := hashmap.New(tuple.Of2("x", 1), tuple.Of2("y", 2))

	spread := hashmap.FlatMap(m, hash.String(), func(k string, v int) hashmap.Map[string, int] {
		return hashmap.New(tuple.Of2(k+"1", v), tuple.Of2("shared", v*10), tuple.Of2(k+"2", v))
	})
	assert.Equal(t, "Map(x1 => 1, shared => 20, x2 => 1, y1 => 2, y2 => 2)", spread.String())

	none := hashmap.FlatMap(m, hash.String(), func(string, int) hashmap.Map[string, int] {
		return hashmap.New[string, int]()
	})
	assert.True(t, none.IsEmpty())
}

func TestMap_FlatMapCollisionsUseTargetHandler(t *testing.T) {
	m := hashmap.New(tuple.Of2(1, "Go"), tuple.Of2(2, "GO"), tuple.Of2(3, "rust"))

	byName := hashmap.FlatMap(m, hash.By(strings.ToLower), func(id int, name string) hashmap.Map[string, int] {
		return hashmap.New(tuple.Of2(name, id))
	})
	require.Equal(t, 2, byName.Len())
	assert.Equal(t, []string{"Go", "rust"}, byName.Keys().Slice())
	assert.Equal(t, 2, byName.Get("go").MustGet())
}

func TestMap_Flatten(t *testing.T) {
	mm := hashmap.New(
		tuple.Of2("first", hashmap.New(tuple.Of2("a", 1), tuple.Of2("b", 2))),
		tuple.Of2("second", hashmap.New(tuple.Of2("b", 3), tuple.Of2("c", 4))),
	)
	flat := hashmap.Flatten(mm, hash.String())
	assert.Equal(t, "Map(a => 1, b => 3, c => 4)", flat.String())
}

func TestMap_MonadInstance(t *testing.T) {
	var inst typeclass.Monad[int, int, hashmap.Map[string, int], hashmap.Map[string, int]] = hashmap.InstanceOf[int, int](hash.String())
	m := hashmap.New(tuple.Of2("a", 1), tuple.Of2("b", 2))

	got := inst.FlatMap(m, func(v int) hashmap.Map[string, int] {
		return hashmap.New(tuple.Of2("total", v), tuple.Of2(strconv.Itoa(v), v))
	})
	assert.Equal(t, "Map(total => 2, 1 => 1, 2 => 2)", got.String())

	// A zero Instance falls back to the argument's handler.
	viaArg := hashmap.Instance[string, int, int]{}.FlatMap(m, func(v int) hashmap.Map[string, int] {
		return hashmap.New(tuple.Of2("k", v))
	})
	assert.Equal(t, "Map(k => 2)", viaArg.String())
}

func TestMap_ZeroValue(t *testing.T) {
	var zero hashmap.Map[string, int]

	assert.True(t, zero.IsEmpty())
	assert.True(t, zero.Get("a").IsEmpty())
	assert.Equal(t, "Map()", zero.String())
	assert.True(t, zero.Minus("a").IsEmpty())
	assert.True(t, zero.Merge(hashmap.New[string, int]()).IsEmpty())

	const msg = "hashmap: zero Map, build with New, NewWith or FromGoMap"
	assert.PanicsWithValue(t, msg, func() { zero.Plus("a", 1) })
	assert.PanicsWithValue(t, msg, func() { zero.Merge(hashmap.New(tuple.Of2("a", 1))) })
}

func TestMap_String(t *testing.T) {
	assert.Equal(t, "Map()", hashmap.New[int, int]().String())
}
