// Package ChainTable implements a deleteless hash table that resolves collisions by separate chaining.
//
// The bucket array starts at 11 buckets and grows through a fixed sequence of odd lengths (11, 23, 47, ..., 12853),
// then through 2^k+1 lengths. Growth happens on Insert once the table holds 3 entries per bucket on average,
// and rehashes every entry into the new array. Keys are never removed.
//
// A ChainTable isn't safe for concurrent use; wrap it with Locked.Map if it's shared between goroutines.
package ChainTable

import (
	"strings"

	"github.com/g-m-twostay/chaintable/Hashers"
	"github.com/g-m-twostay/chaintable/Maps"
)

var _ Maps.Dictionary[string, int] = (*ChainTable[string, int])(nil)

type ChainTable[K any, V any] struct {
	buckets []bucket[K, V]
	size    int
	HashF   func(K) uint //must return the same value for the same key for as long as the key is in the table.
	eq      func(K, K) bool
}

// New ChainTable keyed by a comparable type, using == for key equality.
// A nil hashF selects Hashers.For[K]().
func New[K comparable, V any](hashF func(K) uint) *ChainTable[K, V] {
	if hashF == nil {
		hashF = Hashers.For[K]()
	}
	return NewFunc[K, V](hashF, func(a, b K) bool { return a == b })
}

// NewFunc ChainTable with caller supplied hash and equality functions. Both are required.
func NewFunc[K any, V any](hashF func(K) uint, eq func(K, K) bool) *ChainTable[K, V] {
	if hashF == nil || eq == nil {
		panic("ChainTable: NewFunc needs both a hash and an equality function")
	}
	return &ChainTable[K, V]{buckets: make([]bucket[K, V], capacities[0]), HashF: hashF, eq: eq}
}

// NewHashable ChainTable whose keys hash and compare themselves.
// The key's methods are called as is, so a key type that allows nil receivers must handle them in Hash and Equal.
func NewHashable[K Maps.Hashable[K], V any]() *ChainTable[K, V] {
	return NewFunc[K, V](func(k K) uint { return k.Hash() }, func(a, b K) bool { return a.Equal(b) })
}

func (u *ChainTable[K, V]) index(key K) int {
	return int(u.HashF(key) % uint(len(u.buckets)))
}

// put stores key in its bucket, replacing the value if the key is already chained there.
// It returns the replaced value and true, or false if a new entry was appended. It never grows the table and never touches size.
func (u *ChainTable[K, V]) put(key K, val V) (old V, replaced bool) {
	b := &u.buckets[u.index(key)]
	if i := b.find(key, u.eq); i >= 0 {
		old, (*b)[i].val = (*b)[i].val, val
		return old, true
	}
	*b = append(*b, entry[K, V]{key, val})
	return
}

// grow moves every entry into a bucket array of the next capacity.
func (u *ChainTable[K, V]) grow() {
	keys, vals := u.Keys(), u.Values()
	u.buckets = make([]bucket[K, V], nextCapacity(len(u.buckets)))
	for i := range keys {
		u.put(keys[i], vals[i]) //keys are distinct, so this only appends.
	}
}

// Insert val under key. If key was present, its value is replaced and the old value is returned with true.
// Otherwise the zero value and false are returned and the size grows by one.
func (u *ChainTable[K, V]) Insert(key K, val V) (V, bool) {
	if u.size/len(u.buckets) >= maxLoad {
		u.grow()
	}
	old, replaced := u.put(key, val)
	if !replaced {
		u.size++
	}
	return old, replaced
}

// Find the value stored under key. The bool is false if key isn't in the table.
func (u *ChainTable[K, V]) Find(key K) (V, bool) {
	b := u.buckets[u.index(key)]
	if i := b.find(key, u.eq); i >= 0 {
		return b[i].val, true
	}
	return *new(V), false
}

// Contains key. True even when the stored value is the zero value.
func (u *ChainTable[K, V]) Contains(key K) bool {
	_, ok := u.Find(key)
	return ok
}

// Keys in bucket order, then chain order. Keys()[i] and Values()[i] belong to the same entry as long as the table isn't modified in between.
func (u *ChainTable[K, V]) Keys() []K {
	keys := make([]K, 0, u.size)
	for _, b := range u.buckets {
		for i := range b {
			keys = append(keys, b[i].key)
		}
	}
	return keys
}

// Values in the same order as Keys.
func (u *ChainTable[K, V]) Values() []V {
	vals := make([]V, 0, u.size)
	for _, b := range u.buckets {
		for i := range b {
			vals = append(vals, b[i].val)
		}
	}
	return vals
}

// Range calls f on every entry in the order of Keys. Stops when f returns false.
// f must not insert into the table.
func (u *ChainTable[K, V]) Range(f func(K, V) bool) {
	for _, b := range u.buckets {
		for i := range b {
			if !f(b[i].key, b[i].val) {
				return
			}
		}
	}
}

// Size is the number of distinct keys.
func (u *ChainTable[K, V]) Size() int {
	return u.size
}

func (u *ChainTable[K, V]) IsEmpty() bool {
	return u.size == 0
}

// Capacity is the current length of the bucket array.
func (u *ChainTable[K, V]) Capacity() int {
	return len(u.buckets)
}

// String renders every bucket, empty ones included, as {[k:v k:v],[],...}.
func (u *ChainTable[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range u.buckets {
		if i > 0 {
			sb.WriteByte(',')
		}
		b.writeTo(&sb)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Stats describes how entries are spread over the buckets.
type Stats struct {
	Capacity, Size int
	UsedBuckets    int //buckets holding at least one entry.
	LongestChain   int
	LoadFactor     float64 //Size/Capacity.
}

func (u *ChainTable[K, V]) Stats() Stats {
	s := Stats{Capacity: len(u.buckets), Size: u.size, LoadFactor: float64(u.size) / float64(len(u.buckets))}
	for _, b := range u.buckets {
		if len(b) > 0 {
			s.UsedBuckets++
		}
		s.LongestChain = max(s.LongestChain, len(b))
	}
	return s
}
