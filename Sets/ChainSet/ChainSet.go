// Package ChainSet is a deleteless set stored in a ChainTable.
package ChainSet

import (
	"github.com/g-m-twostay/chaintable/Maps/ChainTable"
	"github.com/g-m-twostay/chaintable/Sets"
)

var _ Sets.Set[int] = (*ChainSet[int])(nil)

type ChainSet[E any] struct {
	t *ChainTable.ChainTable[E, struct{}]
}

// New ChainSet using == and the given hash function, nil for the default one.
func New[E comparable](hashF func(E) uint) *ChainSet[E] {
	return &ChainSet[E]{ChainTable.New[E, struct{}](hashF)}
}

// NewFunc ChainSet with caller supplied hash and equality.
func NewFunc[E any](hashF func(E) uint, eq func(E, E) bool) *ChainSet[E] {
	return &ChainSet[E]{ChainTable.NewFunc[E, struct{}](hashF, eq)}
}

// Put e into the set. Returns true if e wasn't there before.
func (u *ChainSet[E]) Put(e E) bool {
	_, existed := u.t.Insert(e, struct{}{})
	return !existed
}

func (u *ChainSet[E]) Has(e E) bool {
	return u.t.Contains(e)
}

func (u *ChainSet[E]) Size() int {
	return u.t.Size()
}

// Range over the elements. Stops when f returns false.
func (u *ChainSet[E]) Range(f func(E) bool) {
	u.t.Range(func(e E, _ struct{}) bool {
		return f(e)
	})
}

// Elements of the set as a new slice.
func (u *ChainSet[E]) Elements() []E {
	return u.t.Keys()
}

// Union puts every element of o into u and returns how many of them were new.
// o must not be u.
func (u *ChainSet[E]) Union(o Sets.Set[E]) (added int) {
	o.Range(func(e E) bool {
		if u.Put(e) {
			added++
		}
		return true
	})
	return
}
