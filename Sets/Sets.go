package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

// OrderedSet is a Set whose Range and Take follow the order of the elements.
// The (E, bool) receivers return false when no element satisfies the query.
type OrderedSet[E any] interface {
	Set[E]
	Min() (E, bool)
	Max() (E, bool)
	Successor(E) (E, bool)
	Predecessor(E) (E, bool)
}
