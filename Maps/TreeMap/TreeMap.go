package TreeMap

import (
	"github.com/g-m-twostay/go-ordered/Trees"
	"golang.org/x/exp/constraints"
)

type entry[K, V any] struct {
	k K
	v V
}

// TreeMap is an ordered map backed by a Trees.RBTree of entries compared by key.
type TreeMap[K, V any] struct {
	t   *Trees.RBTree[*entry[K, V]]
	cmp Trees.Comparator[K]
}

// New TreeMap ordered by c. A nil c is replaced by Trees.Default, which panics
// if K has no natural order.
func New[K, V any](c Trees.Comparator[K]) *TreeMap[K, V] {
	if c == nil {
		c = Trees.Default[K]()
	}
	return &TreeMap[K, V]{t: Trees.NewWith[*entry[K, V]](func(a, b *entry[K, V]) int {
		return c(a.k, b.k)
	}), cmp: c}
}

// NewOrdered TreeMap using the natural order of K.
func NewOrdered[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](Trees.Ordered[K]())
}

// find the entry at k.
// Time: O(log n)
func (u *TreeMap[K, V]) find(k K) (*entry[K, V], bool) {
	return u.t.Search(&entry[K, V]{k: k})
}

// Size of the map.
func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

// Put [Maps.Map.Put]
// Time: O(log n)
func (u *TreeMap[K, V]) Put(k K, v V) (old V) {
	if e, ok := u.find(k); ok {
		old, e.v = e.v, v
		return
	}
	if err := u.t.Insert(&entry[K, V]{k, v}); err != nil {
		panic(err)
	}
	return
}

func (u *TreeMap[K, V]) HasKey(k K) bool {
	_, ok := u.find(k)
	return ok
}

// Get [Maps.Map.Get]
// Time: O(log n)
func (u *TreeMap[K, V]) Get(k K) V {
	v, _ := u.Lookup(k)
	return v
}

// Lookup the value at k, false if k isn't in the map.
// Time: O(log n)
func (u *TreeMap[K, V]) Lookup(k K) (V, bool) {
	if e, ok := u.find(k); ok {
		return e.v, true
	}
	return *new(V), false
}

// Remove k. Returns true if the removal is successful.
// Time: O(log n)
func (u *TreeMap[K, V]) Remove(k K) bool {
	return u.t.Delete(&entry[K, V]{k: k})
}

// Take [Maps.Map.Take]. Returns zero values when the map is empty.
// Time: O(log n)
func (u *TreeMap[K, V]) Take() (k K, v V) {
	if e, ok := u.t.PopMin(); ok {
		return e.k, e.v
	}
	return
}

func pairs[K, V any](next func() (*entry[K, V], bool)) func() (K, V, bool) {
	return func() (k K, v V, ok bool) {
		var e *entry[K, V]
		if e, ok = next(); ok {
			k, v = e.k, e.v
		}
		return
	}
}

// Pairs in ascending key order.
func (u *TreeMap[K, V]) Pairs() func() (K, V, bool) {
	return pairs(u.t.Ascend())
}

// Keys in ascending order.
func (u *TreeMap[K, V]) Keys() func() (K, bool) {
	next := u.Pairs()
	return func() (K, bool) {
		k, _, ok := next()
		return k, ok
	}
}

// Values in ascending key order.
func (u *TreeMap[K, V]) Values() func() (V, bool) {
	next := u.Pairs()
	return func() (V, bool) {
		_, v, ok := next()
		return v, ok
	}
}

// Range calls f on the pairs with from <= key < to in ascending order, until f returns false.
// Time: O(log n + m) for m visited pairs.
func (u *TreeMap[K, V]) Range(from, to K, f func(K, V) bool) {
	next := pairs(u.t.AscendFrom(&entry[K, V]{k: from}))
	for k, v, ok := next(); ok && u.cmp(k, to) < 0; k, v, ok = next() {
		if !f(k, v) {
			return
		}
	}
}

func unpack[K, V any](e *entry[K, V], ok bool) (k K, v V, _ bool) {
	if ok {
		k, v = e.k, e.v
	}
	return k, v, ok
}

// Min is the pair with the smallest key.
func (u *TreeMap[K, V]) Min() (K, V, bool) {
	return unpack(u.t.Minimum())
}

// Max is the pair with the greatest key.
func (u *TreeMap[K, V]) Max() (K, V, bool) {
	return unpack(u.t.Maximum())
}

func (u *TreeMap[K, V]) query(k K, f func(*entry[K, V]) (*entry[K, V], bool)) (K, V, bool) {
	return unpack(f(&entry[K, V]{k: k}))
}

// Floor is the pair with the greatest key <= k.
// Time: O(log n)
func (u *TreeMap[K, V]) Floor(k K) (K, V, bool) {
	return u.query(k, u.t.Floor)
}

// Ceiling is the pair with the smallest key >= k.
// Time: O(log n)
func (u *TreeMap[K, V]) Ceiling(k K) (K, V, bool) {
	return u.query(k, u.t.Ceiling)
}

// Successor is the pair with the smallest key > k.
// Time: O(log n)
func (u *TreeMap[K, V]) Successor(k K) (K, V, bool) {
	return u.query(k, u.t.Successor)
}

// Predecessor is the pair with the greatest key < k.
// Time: O(log n)
func (u *TreeMap[K, V]) Predecessor(k K) (K, V, bool) {
	return u.query(k, u.t.Predecessor)
}
