package Maps

// Hashable keys carry their own hash and equality. Equal must agree with Hash: equal keys hash the same.
type Hashable[K any] interface {
	Hash() uint
	Equal(other K) bool
}

// Dictionary is a map that never forgets a key: there's no removal.
// The bool results tell a missing key apart from a stored zero value.
type Dictionary[K any, V any] interface {
	Insert(K, V) (V, bool)
	Find(K) (V, bool)
	Contains(K) bool
	Keys() []K
	Values() []V
	Size() int
	IsEmpty() bool
}
