package purefn

import (
	"github.com/on-the-ground/collect_ive_go/lru"
	"github.com/on-the-ground/collect_ive_go/tuple"
)

func TableizeI1O2[I1 comparable, O1, O2 any](
	pureFn func(I1) (O1, O2),
	capacity int,
	opts ...lru.Option,
) func(I1) (O1, O2) {
	return tableizeDualOutput(pureFn, capacity, opts)
}

func TableizeI2O2[I1, I2 comparable, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	capacity int,
	opts ...lru.Option,
) func(I1, I2) (O1, O2) {
	tableized := tableizeDualOutput(
		func(k tuple.Tuple2[I1, I2]) (O1, O2) {
			return pureFn(k.V1, k.V2)
		},
		capacity,
		opts,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		return tableized(tuple.Of2(i1, i2))
	}
}

func TableizeI3O2[I1, I2, I3 comparable, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	capacity int,
	opts ...lru.Option,
) func(I1, I2, I3) (O1, O2) {
	tableized := tableizeDualOutput(
		func(k tuple.Tuple3[I1, I2, I3]) (O1, O2) {
			return pureFn(k.V1, k.V2, k.V3)
		},
		capacity,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return tableized(tuple.Of3(i1, i2, i3))
	}
}

func TableizeI4O2[I1, I2, I3, I4 comparable, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	capacity int,
	opts ...lru.Option,
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableizeDualOutput(
		func(k key4[I1, I2, I3, I4]) (O1, O2) {
			return pureFn(k.i1, k.i2, k.i3, k.i4)
		},
		capacity,
		opts,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return tableized(key4[I1, I2, I3, I4]{i1, i2, i3, i4})
	}
}

func tableizeDualOutput[K comparable, O1, O2 any](
	pureFn func(K) (O1, O2),
	capacity int,
	opts []lru.Option,
) func(K) (O1, O2) {
	tableized := tableize(
		func(k K) tuple.Tuple2[O1, O2] {
			return tuple.Of2(pureFn(k))
		},
		capacity,
		opts,
	)
	return func(k K) (O1, O2) {
		return tableized(k).Unpack()
	}
}
