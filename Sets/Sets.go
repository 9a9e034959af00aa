package Sets

// Set only ever gains elements.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Size() int
	Range(func(E) bool)
}
