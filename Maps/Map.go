/*
Package Maps defines the ordered map interface shared by the maps under it.

# Order
All maps here keep their keys sorted by a comparator. Iteration, Take and the
neighbour queries follow that order. Point lookups may use a hash index, but
the sorted view and the index always hold the same keys.

# Iterators
Keys, Values and Pairs return closure functions acting like iterators,
calling one is like calling "Next()": the last return value is false once the
iterator is exhausted, and stays false afterward. The map must not be modified
while an iterator is in use.

# Concurrency
None of the maps are safe for concurrent use. Wrap a map with a lock if it's shared.
*/
package Maps

type Map[K, V any] interface {
	//Put v at k, returning the previous value at k or the zero value.
	Put(K, V) V
	HasKey(K) bool
	//Get the value at k, the zero value if k isn't in the map.
	Get(K) V
	Lookup(K) (V, bool)
	Remove(K) bool
	//Take removes and returns the pair with the smallest key.
	Take() (K, V)
	Keys() func() (K, bool)
	Values() func() (V, bool)
	Pairs() func() (K, V, bool)
	Size() uint
}
