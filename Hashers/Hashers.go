// Package Hashers holds the default hash functions used when a table is built without one.
// Every function here is deterministic: the same key always yields the same hash, which is what rehashing relies on.
package Hashers

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// String hashes s with xxhash.
func String(s string) uint {
	return uint(xxhash.Sum64String(s))
}

// Bytes hashes b with xxhash. A nil and an empty slice hash the same.
func Bytes(b []byte) uint {
	return uint(xxhash.Sum64(b))
}

// Integer scrambles v with the splitmix64 finalizer so that runs of consecutive integers don't land in consecutive buckets.
func Integer[T constraints.Integer](v T) uint {
	x := uint64(v)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return uint(x)
}

// For returns a hash function for K. Strings and integer kinds get String and Integer, anything else falls back to maphash.Comparable.
// The fallback seed is drawn once per call, so hashes are only stable for the function returned by that call; never mix functions from two calls in one table.
func For[K comparable]() func(K) uint {
	var zero K
	switch any(zero).(type) {
	case string:
		return func(k K) uint { return String(any(k).(string)) }
	case int:
		return func(k K) uint { return Integer(any(k).(int)) }
	case int8:
		return func(k K) uint { return Integer(any(k).(int8)) }
	case int16:
		return func(k K) uint { return Integer(any(k).(int16)) }
	case int32:
		return func(k K) uint { return Integer(any(k).(int32)) }
	case int64:
		return func(k K) uint { return Integer(any(k).(int64)) }
	case uint:
		return func(k K) uint { return Integer(any(k).(uint)) }
	case uint8:
		return func(k K) uint { return Integer(any(k).(uint8)) }
	case uint16:
		return func(k K) uint { return Integer(any(k).(uint16)) }
	case uint32:
		return func(k K) uint { return Integer(any(k).(uint32)) }
	case uint64:
		return func(k K) uint { return Integer(any(k).(uint64)) }
	case uintptr:
		return func(k K) uint { return Integer(any(k).(uintptr)) }
	}
	seed := maphash.MakeSeed()
	return func(k K) uint {
		return uint(maphash.Comparable(seed, k))
	}
}
