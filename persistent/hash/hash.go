// Package hash provides the equality handlers that decide key identity in
// hashmap.Map and element identity in hashset.Set.
//
// A Handler must be consistent: Equal(a, b) implies Hash(a) == Hash(b).
package hash

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Handler hashes and compares values of T.
type Handler[T any] interface {
	Hash(v T) uint64
	Equal(a, b T) bool
}

var seed = maphash.MakeSeed()

type comparableHandler[T comparable] struct{}

func (comparableHandler[T]) Hash(v T) uint64 { return maphash.Comparable(seed, v) }

func (comparableHandler[T]) Equal(a, b T) bool { return a == b }

// Comparable is value equality (==) for any comparable type.
func Comparable[T comparable]() Handler[T] {
	return comparableHandler[T]{}
}

type stringHandler struct{}

func (stringHandler) Hash(v string) uint64 { return xxhash.Sum64String(v) }

func (stringHandler) Equal(a, b string) bool { return a == b }

// String hashes strings with xxhash.
func String() Handler[string] {
	return stringHandler{}
}

type bytesHandler struct{}

func (bytesHandler) Hash(v []byte) uint64 { return xxhash.Sum64(v) }

func (bytesHandler) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// Bytes compares byte slices by content.
func Bytes() Handler[[]byte] {
	return bytesHandler{}
}

type stringerHandler[T fmt.Stringer] struct{}

func (stringerHandler[T]) Hash(v T) uint64 { return xxhash.Sum64String(v.String()) }

func (stringerHandler[T]) Equal(a, b T) bool { return a.String() == b.String() }

// Stringer identifies values by their String() representation.
func Stringer[T fmt.Stringer]() Handler[T] {
	return stringerHandler[T]{}
}

type pointerHandler[E any] struct{}

func (pointerHandler[E]) Hash(p *E) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(uintptr(unsafe.Pointer(p))))
	return xxhash.Sum64(buf[:])
}

func (pointerHandler[E]) Equal(a, b *E) bool { return a == b }

// Pointer is reference identity: two pointers are equal only if they point to the same object.
func Pointer[E any]() Handler[*E] {
	return pointerHandler[E]{}
}

type funcHandler[T any] struct {
	hash  func(T) uint64
	equal func(a, b T) bool
}

func (h funcHandler[T]) Hash(v T) uint64 { return h.hash(v) }

func (h funcHandler[T]) Equal(a, b T) bool { return h.equal(a, b) }

// Func builds a Handler from caller-supplied functions.
func Func[T any](hash func(T) uint64, equal func(a, b T) bool) Handler[T] {
	return funcHandler[T]{hash: hash, equal: equal}
}

// By identifies values of T by a comparable projection.
func By[T any, K comparable](key func(T) K) Handler[T] {
	return Func(
		func(v T) uint64 { return maphash.Comparable(seed, key(v)) },
		func(a, b T) bool { return key(a) == key(b) },
	)
}
