// Package hashmap implements an immutable, insertion-ordered map whose key
// identity is decided by an injectable hash.Handler.
//
// Plus, Minus and Merge return new maps; the receiver is never modified.
// Iteration (All, Keys, Values, Entries, String) follows first-insertion order.
// Overwriting an existing key keeps its position.
package hashmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/on-the-ground/collect_ive_go/internal/helper"
	"github.com/on-the-ground/collect_ive_go/option"
	"github.com/on-the-ground/collect_ive_go/persistent/hash"
	"github.com/on-the-ground/collect_ive_go/persistent/internal/table"
	"github.com/on-the-ground/collect_ive_go/persistent/list"
	"github.com/on-the-ground/collect_ive_go/tuple"
	"go.uber.org/multierr"
)

// Map is an immutable key/value table.
// A Map must be built with New, NewWith or FromGoMap. The zero value reads as
// empty, but Plus and Merge panic on it because it has no handler.
type Map[K, V any] struct {
	t table.Table[K, V]
}

// New builds a map with value equality on K. Later pairs overwrite earlier ones.
func New[K comparable, V any](pairs ...tuple.Tuple2[K, V]) Map[K, V] {
	return NewWith(hash.Comparable[K](), pairs...)
}

// NewWith builds a map whose keys are identified by h.
func NewWith[K, V any](h hash.Handler[K], pairs ...tuple.Tuple2[K, V]) Map[K, V] {
	b := table.NewBuilder[K, V](h)
	for _, p := range pairs {
		b.Put(p.V1, p.V2)
	}
	return Map[K, V]{t: b.Table()}
}

// FromGoMap imports a built-in map. The resulting order is Go's map iteration order.
func FromGoMap[K comparable, V any](m map[K]V) Map[K, V] {
	b := table.NewBuilder[K, V](hash.Comparable[K]())
	for k, v := range m {
		b.Put(k, v)
	}
	return Map[K, V]{t: b.Table()}
}

// FromAll imports untyped pairs from an external container. Every key that is not
// a K and every value that is not a V is reported; the errors are combined with
// multierr and each one matches errs.ErrTypeMismatch.
func FromAll[K comparable, V any](pairs []tuple.Tuple2[any, any]) (Map[K, V], error) {
	b := table.NewBuilder[K, V](hash.Comparable[K]())
	var err error
	for i, p := range pairs {
		k, kerr := helper.TypedValueOf[K](p.V1)
		v, verr := helper.TypedValueOf[V](p.V2)
		if kerr != nil {
			err = multierr.Append(err, fmt.Errorf("entry %d key: %w", i, kerr))
		}
		if verr != nil {
			err = multierr.Append(err, fmt.Errorf("entry %d value: %w", i, verr))
		}
		if kerr == nil && verr == nil {
			b.Put(k, v)
		}
	}
	if err != nil {
		return New[K, V](), err
	}
	return Map[K, V]{t: b.Table()}, nil
}

// Handler is the key identity of m.
func (m Map[K, V]) Handler() hash.Handler[K] {
	return m.t.Handler()
}

func (m Map[K, V]) Len() int {
	return m.t.Len()
}

func (m Map[K, V]) IsEmpty() bool {
	return m.t.Len() == 0
}

func (m Map[K, V]) mustBeBuilt() {
	if m.t.Handler() == nil {
		panic("hashmap: zero Map, build with New, NewWith or FromGoMap")
	}
}

// Plus returns a map with k bound to v.
func (m Map[K, V]) Plus(k K, v V) Map[K, V] {
	m.mustBeBuilt()
	return Map[K, V]{t: m.t.With(k, v)}
}

// Minus returns a map without k. Removing an absent key is a no-op.
func (m Map[K, V]) Minus(k K) Map[K, V] {
	return Map[K, V]{t: m.t.Without(k)}
}

// Merge adds every entry of other; on a shared key the value of other wins.
// Keys are identified by m's handler.
func (m Map[K, V]) Merge(other Map[K, V]) Map[K, V] {
	if other.IsEmpty() {
		return m
	}
	m.mustBeBuilt()
	b := m.t.Builder()
	for k, v := range other.t.All() {
		b.Put(k, v)
	}
	return Map[K, V]{t: b.Table()}
}

func (m Map[K, V]) Get(k K) option.Option[V] {
	if v, ok := m.t.Lookup(k); ok {
		return option.Some(v)
	}
	return option.None[V]()
}

func (m Map[K, V]) GetOrElse(k K, fallback V) V {
	if v, ok := m.t.Lookup(k); ok {
		return v
	}
	return fallback
}

func (m Map[K, V]) Contains(k K) bool {
	return m.t.Contains(k)
}

func (m Map[K, V]) All() iter.Seq2[K, V] {
	return m.t.All()
}

func (m Map[K, V]) Keys() list.List[K] {
	keys := make([]K, 0, m.Len())
	for k := range m.t.All() {
		keys = append(keys, k)
	}
	return list.FromSlice(keys)
}

func (m Map[K, V]) Values() list.List[V] {
	values := make([]V, 0, m.Len())
	for _, v := range m.t.All() {
		values = append(values, v)
	}
	return list.FromSlice(values)
}

// Entries lists the key/value pairs in insertion order.
func (m Map[K, V]) Entries() list.List[tuple.Tuple2[K, V]] {
	entries := make([]tuple.Tuple2[K, V], 0, m.Len())
	for k, v := range m.t.All() {
		entries = append(entries, tuple.Of2(k, v))
	}
	return list.FromSlice(entries)
}

// ToGoMap exports m into a built-in map.
func ToGoMap[K comparable, V any](m Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.t.All() {
		out[k] = v
	}
	return out
}

// Filter keeps the entries accepted by keep.
func (m Map[K, V]) Filter(keep func(K, V) bool) Map[K, V] {
	return Map[K, V]{t: m.t.Filter(keep)}
}

func (m Map[K, V]) ForEach(f func(K, V)) {
	for k, v := range m.t.All() {
		f(k, v)
	}
}

// Equal reports whether m and other bind the same keys to structurally equal
// values. Order is ignored.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.t.All() {
		w, ok := other.t.Lookup(k)
		if !ok || !helper.Equal(v, w) {
			return false
		}
	}
	return true
}

func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Map(")
	i := 0
	for k, v := range m.t.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v => %v", k, v)
		i++
	}
	sb.WriteString(")")
	return sb.String()
}
