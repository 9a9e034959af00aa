// Package Locked shares a ChainTable between goroutines by putting it behind a sync.RWMutex.
// Insert takes the write lock; every other call takes the read lock, so lookups run in parallel with each other.
package Locked

import (
	"sync"

	"github.com/g-m-twostay/chaintable/Maps"
	"github.com/g-m-twostay/chaintable/Maps/ChainTable"
)

var _ Maps.Dictionary[string, int] = (*Map[string, int])(nil)

type Map[K any, V any] struct {
	lock sync.RWMutex
	t    *ChainTable.ChainTable[K, V]
}

// New Map guarding t. t must not be used directly afterwards.
func New[K any, V any](t *ChainTable.ChainTable[K, V]) *Map[K, V] {
	return &Map[K, V]{t: t}
}

func (u *Map[K, V]) Insert(key K, val V) (V, bool) {
	u.lock.Lock()
	defer u.lock.Unlock()
	return u.t.Insert(key, val)
}

// Update replaces the value under key with f(old, found) atomically, and returns the new value.
func (u *Map[K, V]) Update(key K, f func(V, bool) V) V {
	u.lock.Lock()
	defer u.lock.Unlock()
	val := f(u.t.Find(key))
	u.t.Insert(key, val)
	return val
}

func (u *Map[K, V]) Find(key K) (V, bool) {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.Find(key)
}

func (u *Map[K, V]) Contains(key K) bool {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.Contains(key)
}

func (u *Map[K, V]) Keys() []K {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.Keys()
}

func (u *Map[K, V]) Values() []V {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.Values()
}

// Snapshot takes Keys and Values under one lock, so keys[i] and vals[i] always belong together.
func (u *Map[K, V]) Snapshot() (keys []K, vals []V) {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.Keys(), u.t.Values()
}

// Range holds the read lock for the whole iteration. f must not call Insert or Update.
func (u *Map[K, V]) Range(f func(K, V) bool) {
	u.lock.RLock()
	defer u.lock.RUnlock()
	u.t.Range(f)
}

func (u *Map[K, V]) Size() int {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.Size()
}

func (u *Map[K, V]) IsEmpty() bool {
	return u.Size() == 0
}

func (u *Map[K, V]) Stats() ChainTable.Stats {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.Stats()
}

func (u *Map[K, V]) String() string {
	u.lock.RLock()
	defer u.lock.RUnlock()
	return u.t.String()
}
