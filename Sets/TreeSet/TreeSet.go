package TreeSet

import (
	"github.com/g-m-twostay/go-ordered/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set backed by a Trees.RBTree. Elements that compare
// equal are the same element.
type TreeSet[E any] struct {
	t *Trees.RBTree[E]
}

// New TreeSet ordered by c. A nil c is handled like in Trees.NewWith.
func New[E any](c Trees.Comparator[E]) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewWith(c)}
}

// NewOrdered TreeSet using the natural order of E.
func NewOrdered[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E]()}
}

// Size of the set.
func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Put e in the set. Returns false if an equal element is already in the set,
// or if e is rejected by Trees.RBTree.Insert.
// Time: O(log n)
func (u *TreeSet[E]) Put(e E) bool {
	if u.t.Has(e) {
		return false
	}
	return u.t.Insert(e) == nil
}

// Has e.
// Time: O(log n)
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e from the set. Returns true if the removal is successful.
// Time: O(log n)
func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Delete(e)
}

// Take removes and returns the smallest element, or the zero value when empty.
// Time: O(log n)
func (u *TreeSet[E]) Take() (e E) {
	e, _ = u.t.PopMin()
	return
}

// Range calls f on the elements in ascending order until f returns false.
// The set must not be modified by f.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for next := u.t.Ascend(); ; {
		if e, ok := next(); !ok || !f(e) {
			return
		}
	}
}

func (u *TreeSet[E]) Min() (E, bool) {
	return u.t.Minimum()
}

func (u *TreeSet[E]) Max() (E, bool) {
	return u.t.Maximum()
}

// Successor is the smallest element greater than e, e doesn't need to be in the set.
func (u *TreeSet[E]) Successor(e E) (E, bool) {
	return u.t.Successor(e)
}

// Predecessor is the greatest element less than e, e doesn't need to be in the set.
func (u *TreeSet[E]) Predecessor(e E) (E, bool) {
	return u.t.Predecessor(e)
}

// Values in ascending order.
func (u *TreeSet[E]) Values() []E {
	return u.t.Values()
}
