package hashmap

import (
	"github.com/on-the-ground/collect_ive_go/persistent/hash"
	"github.com/on-the-ground/collect_ive_go/persistent/internal/table"
	"github.com/on-the-ground/collect_ive_go/persistent/list"
	"github.com/on-the-ground/collect_ive_go/tuple"
	"github.com/on-the-ground/collect_ive_go/typeclass"
)

// MapValues applies f to every value. Keys and order are unchanged.
func MapValues[K, V, W any](m Map[K, V], f func(V) W) Map[K, W] {
	return Map[K, W]{t: table.MapValues(m.t, func(_ K, v V) W { return f(v) })}
}

// MapEntries rebuilds the map from f's results, identifying the new keys with h.
// When two entries produce the same key, the later one wins.
func MapEntries[K, V, K2, V2 any](m Map[K, V], h hash.Handler[K2], f func(K, V) tuple.Tuple2[K2, V2]) Map[K2, V2] {
	b := table.NewBuilder[K2, V2](h)
	for k, v := range m.t.All() {
		p := f(k, v)
		b.Put(p.V1, p.V2)
	}
	return Map[K2, V2]{t: b.Table()}
}

// FlatMap is the union, in order, of the maps returned by f, with keys
// identified by h. When two results bind the same key, the later one wins and
// the key keeps its first position.
func FlatMap[K, V, K2, V2 any](m Map[K, V], h hash.Handler[K2], f func(K, V) Map[K2, V2]) Map[K2, V2] {
	b := table.NewBuilder[K2, V2](h)
	for k, v := range m.t.All() {
		for k2, v2 := range f(k, v).t.All() {
			b.Put(k2, v2)
		}
	}
	return Map[K2, V2]{t: b.Table()}
}

// Flatten merges the inner maps of mm in order under h. Later bindings win.
func Flatten[K, K2, V any](mm Map[K, Map[K2, V]], h hash.Handler[K2]) Map[K2, V] {
	return FlatMap(mm, h, func(_ K, inner Map[K2, V]) Map[K2, V] { return inner })
}

// FoldLeft combines the entries in insertion order.
func FoldLeft[K, V, B any](m Map[K, V], z B, op func(B, K, V) B) B {
	acc := z
	for k, v := range m.t.All() {
		acc = op(acc, k, v)
	}
	return acc
}

// Instance is the Functor, Monad and Foldable capability set of Map over its
// values. FlatMap identifies keys with H, or with the handler of its argument
// when H is nil.
type Instance[K, A, B any] struct {
	H hash.Handler[K]
}

// InstanceOf binds an Instance to the key handler h.
func InstanceOf[A, B, K any](h hash.Handler[K]) Instance[K, A, B] {
	return Instance[K, A, B]{H: h}
}

var (
	_ typeclass.Monad[int, string, Map[string, int], Map[string, string]] = Instance[string, int, string]{}
	_ typeclass.Foldable[int, string, Map[string, int]]                   = Instance[string, int, string]{}
)

func (Instance[K, A, B]) Map(fa Map[K, A], f func(A) B) Map[K, B] {
	return MapValues(fa, f)
}

func (i Instance[K, A, B]) FlatMap(fa Map[K, A], f func(A) Map[K, B]) Map[K, B] {
	h := i.H
	if h == nil {
		h = fa.Handler()
	}
	if h == nil {
		return Map[K, B]{}
	}
	return FlatMap(fa, h, func(_ K, a A) Map[K, B] { return f(a) })
}

func (Instance[K, A, B]) FoldLeft(fa Map[K, A], z B, op func(B, A) B) B {
	return list.FoldLeft(fa.Values(), z, op)
}

func (Instance[K, A, B]) FoldRight(fa Map[K, A], z B, op func(A, B) B) B {
	return list.FoldRight(fa.Values(), z, op)
}

func (Instance[K, A, B]) FoldMap(fa Map[K, A], m typeclass.Monoid[B], f func(A) B) B {
	return list.FoldMap(fa.Values(), m, f)
}

func (Instance[K, A, B]) Fold(fa Map[K, A], m typeclass.Monoid[A]) A {
	return list.Fold(fa.Values(), m)
}
