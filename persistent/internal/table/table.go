// Package table is the insertion-ordered persistent hash table behind
// hashmap.Map and hashset.Set.
//
// Keys live in a hash array mapped trie from github.com/benbjohnson/immutable,
// keyed through the caller's hash.Handler. Each key maps to the sequence number
// it was first inserted under, and a sorted map from sequence to entry keeps
// the insertion order. Both structures share unchanged nodes between versions.
package table

import (
	"cmp"
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/on-the-ground/collect_ive_go/persistent/hash"
)

type Entry[K, V any] struct {
	Key   K
	Value V
}

// hasher adapts a hash.Handler to immutable.Hasher.
type hasher[K any] struct {
	h hash.Handler[K]
}

func (a hasher[K]) Hash(k K) uint32 {
	x := a.h.Hash(k)
	return uint32(x) ^ uint32(x>>32)
}

func (a hasher[K]) Equal(x, y K) bool {
	return a.h.Equal(x, y)
}

type bySeq struct{}

func (bySeq) Compare(a, b uint64) int {
	return cmp.Compare(a, b)
}

// Table is immutable. Entries keep first-insertion order; overwriting a key
// keeps both its position and the key value it was first stored with.
//
// The zero Table is empty and has no handler: reads work, With and Builder panic.
type Table[K, V any] struct {
	handler hash.Handler[K]
	seqs    *immutable.Map[K, uint64]
	entries *immutable.SortedMap[uint64, Entry[K, V]]
	next    uint64
}

func empty[K, V any](h hash.Handler[K]) Table[K, V] {
	return Table[K, V]{
		handler: h,
		seqs:    immutable.NewMap[K, uint64](hasher[K]{h}),
		entries: immutable.NewSortedMap[uint64, Entry[K, V]](bySeq{}),
	}
}

// Builder accumulates entries for a new Table.
type Builder[K, V any] struct {
	t Table[K, V]
}

func NewBuilder[K, V any](h hash.Handler[K]) *Builder[K, V] {
	if h == nil {
		panic("table: nil hash handler")
	}
	return &Builder[K, V]{t: empty[K, V](h)}
}

// Put inserts k or overwrites its value in place.
func (b *Builder[K, V]) Put(k K, v V) {
	b.t = b.t.With(k, v)
}

// PutIfAbsent inserts k only if it is not there yet and reports whether it did.
func (b *Builder[K, V]) PutIfAbsent(k K, v V) bool {
	if b.t.Contains(k) {
		return false
	}
	b.t = b.t.With(k, v)
	return true
}

func (b *Builder[K, V]) Table() Table[K, V] {
	return b.t
}

func (t Table[K, V]) Handler() hash.Handler[K] {
	return t.handler
}

func (t Table[K, V]) mustHandler() {
	if t.handler == nil {
		panic("table: zero Table has no hash handler")
	}
}

func (t Table[K, V]) Len() int {
	if t.seqs == nil {
		return 0
	}
	return t.seqs.Len()
}

func (t Table[K, V]) seq(k K) (uint64, bool) {
	if t.seqs == nil {
		return 0, false
	}
	return t.seqs.Get(k)
}

func (t Table[K, V]) Contains(k K) bool {
	_, ok := t.seq(k)
	return ok
}

func (t Table[K, V]) Lookup(k K) (V, bool) {
	if seq, ok := t.seq(k); ok {
		e, _ := t.entries.Get(seq)
		return e.Value, true
	}
	var zero V
	return zero, false
}

// With returns a table with k bound to v. An existing key keeps its position.
func (t Table[K, V]) With(k K, v V) Table[K, V] {
	t.mustHandler()
	if seq, ok := t.seq(k); ok {
		e, _ := t.entries.Get(seq)
		t.entries = t.entries.Set(seq, Entry[K, V]{Key: e.Key, Value: v})
		return t
	}
	t.seqs = t.seqs.Set(k, t.next)
	t.entries = t.entries.Set(t.next, Entry[K, V]{Key: k, Value: v})
	t.next++
	return t
}

// Without returns a table lacking k. The receiver is returned as is when k is absent.
func (t Table[K, V]) Without(k K) Table[K, V] {
	seq, ok := t.seq(k)
	if !ok {
		return t
	}
	t.seqs = t.seqs.Delete(k)
	t.entries = t.entries.Delete(seq)
	return t
}

// Builder starts a new Builder seeded with t's entries.
func (t Table[K, V]) Builder() *Builder[K, V] {
	t.mustHandler()
	return &Builder[K, V]{t: t}
}

func (t Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.entries == nil {
			return
		}
		itr := t.entries.Iterator()
		for !itr.Done() {
			_, e, _ := itr.Next()
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries exports the entries in insertion order.
func (t Table[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.Len())
	for k, v := range t.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// MapValues rewrites every value. Keys and positions are unchanged, so the
// key trie is shared with t.
func MapValues[K, V, W any](t Table[K, V], f func(K, V) W) Table[K, W] {
	if t.entries == nil {
		return Table[K, W]{handler: t.handler}
	}
	b := immutable.NewSortedMapBuilder[uint64, Entry[K, W]](bySeq{})
	itr := t.entries.Iterator()
	for !itr.Done() {
		seq, e, _ := itr.Next()
		b.Set(seq, Entry[K, W]{Key: e.Key, Value: f(e.Key, e.Value)})
	}
	return Table[K, W]{handler: t.handler, seqs: t.seqs, entries: b.Map(), next: t.next}
}

// Filter keeps the entries accepted by keep, in order.
func (t Table[K, V]) Filter(keep func(K, V) bool) Table[K, V] {
	kept := t
	for k, v := range t.All() {
		if !keep(k, v) {
			kept = kept.Without(k)
		}
	}
	return kept
}
