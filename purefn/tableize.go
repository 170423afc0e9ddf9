package purefn

import (
	"github.com/on-the-ground/collect_ive_go/lru"
	"github.com/on-the-ground/collect_ive_go/tuple"
)

type key4[I1, I2, I3, I4 comparable] struct {
	i1 I1
	i2 I2
	i3 I3
	i4 I4
}

func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	capacity int,
	opts ...lru.Option,
) func(I1) O1 {
	return tableize(pureFn, capacity, opts)
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	capacity int,
	opts ...lru.Option,
) func(I1, I2) O1 {
	tableized := tableize(
		func(k tuple.Tuple2[I1, I2]) O1 {
			return pureFn(k.V1, k.V2)
		},
		capacity,
		opts,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(tuple.Of2(i1, i2))
	}
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](
	pureFn func(I1, I2, I3) O1,
	capacity int,
	opts ...lru.Option,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(k tuple.Tuple3[I1, I2, I3]) O1 {
			return pureFn(k.V1, k.V2, k.V3)
		},
		capacity,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(tuple.Of3(i1, i2, i3))
	}
}

func TableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	capacity int,
	opts ...lru.Option,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(k key4[I1, I2, I3, I4]) O1 {
			return pureFn(k.i1, k.i2, k.i3, k.i4)
		},
		capacity,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(key4[I1, I2, I3, I4]{i1, i2, i3, i4})
	}
}

// tableize memoizes pureFn in an lru.Cache. The cache is not locked while
// pureFn runs, so pureFn may call its own tableized form.
func tableize[K comparable, O any](
	pureFn func(K) O,
	capacity int,
	opts []lru.Option,
) func(K) O {
	memo := lru.MustNew[K, O](capacity, opts...)
	return func(k K) O {
		if v, ok := memo.Get(k).Unwrap(); ok {
			return v
		}
		v := pureFn(k)
		memo.Put(k, v)
		return v
	}
}
