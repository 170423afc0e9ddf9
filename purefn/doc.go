// Package purefn provides high-level memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is the Tableize family of functions, which memoize pure function
// calls by their input values. The arguments must be comparable; together they form
// the key of a bounded lru.Cache, so the table forgets its least recently used rows
// once it is full.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: Typed, generic memoizers for common arities.
//   - Bounded by capacity, with least-recently-used eviction.
//   - lru.Option values (logger, name) are passed through to the cache.
//   - A tableized function may call itself recursively.
//
// See tableize_test.go and tableize_bench_test.go for usage and benchmarks.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
