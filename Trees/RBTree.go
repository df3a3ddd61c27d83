package Trees

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// RBTree is a binary search tree balanced with the red-black rules:
//  1. for every node, values in the left subtree are <= it and values in the right subtree are >= it;
//  2. the root is black;
//  3. a red node has no red child;
//  4. every path from a node down to a nil child passes the same number of black nodes;
//  5. parent and child links mirror each other.
//
// These hold after every exported method returns. The height D of the tree is
// at most 2*log2(n+1).
// Equal values are allowed and are kept in insertion order among themselves.
// RBTree isn't safe for concurrent use; callers must serialize access to one tree.
type RBTree[T any] struct {
	root *node[T]
	cmp  Comparator[T]
	size uint
}

// New returns an empty RBTree ordering T by its natural order.
func New[T constraints.Ordered]() *RBTree[T] {
	return &RBTree[T]{cmp: Ordered[T]()}
}

// NewWith returns an empty RBTree ordered by c. If c is nil the order is
// derived from T, see Default, and NewWith panics when T has none.
func NewWith[T any](c Comparator[T]) *RBTree[T] {
	if c == nil {
		c = Default[T]()
	}
	return &RBTree[T]{cmp: c}
}

// Build an RBTree from the given sorted slice. This is faster than
// repeatedly calling Insert. c works like in NewWith.
// The given slice must be sorted in ascending order according to c, otherwise
// Build panics with InvalidSliceError.
// Nodes on the last level are red when that level isn't full, every other node is black.
// Time: O(n).
func Build[T any](c Comparator[T], sorted []T) *RBTree[T] {
	if c == nil {
		c = Default[T]()
	}
	for i := 1; i < len(sorted); i++ {
		if c(sorted[i-1], sorted[i]) > 0 {
			panic(InvalidSliceError{i - 1, i})
		}
	}
	u := &RBTree[T]{cmp: c, size: uint(len(sorted))}
	if len(sorted) == 0 {
		return u
	}
	n := uint(len(sorted))
	bottom := bits.Len(n) - 1
	full := (n+1)&n == 0
	var build func(s []T, p *node[T], d int) *node[T]
	build = func(s []T, p *node[T], d int) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		cur := &node[T]{v: s[mid], p: p, c: black}
		if d == bottom && !full {
			cur.c = red
		}
		cur.l = build(s[:mid], cur, d+1)
		cur.r = build(s[mid+1:], cur, d+1)
		return cur
	}
	u.root = build(sorted, nil, 0)
	u.root.c = black
	return u
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) Size() uint {
	return u.size
}

// IsEmpty [Tree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *RBTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Insert [Tree.Insert]
// Returns ErrNilTree when u is nil and ErrNilValue when v is a nil pointer,
// map, slice, func, chan or interface. The tree isn't changed in either case.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Insert(v T) error {
	if u == nil {
		return ErrNilTree
	}
	if u.cmp == nil {
		panic(UsageError{"insert into destroyed tree"})
	}
	if isNil(v) {
		return ErrNilValue
	}
	var p *node[T]
	left := false
	for cur := u.root; cur != nil; {
		p = cur
		if left = u.cmp(v, cur.v) < 0; left {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	n := &node[T]{v: v, p: p, c: red}
	if p == nil {
		u.root = n
	} else if left {
		p.l = n
	} else {
		p.r = n
	}
	u.size++
	u.fixInsert(n)
	return nil
}

// fixInsert removes the red-red edge that n might form with its parent,
// walking up while recoloring pushes the violation to the grandparent.
func (u *RBTree[T]) fixInsert(n *node[T]) {
	for n != u.root && n.c == red && n.p.c == red {
		p := n.p
		g := p.p // p is red so it isn't the root.
		if p == g.l {
			if un := g.r; colorOf(un) == red {
				g.c, p.c, un.c = red, black, black
				n = g
				continue
			}
			if n == p.r {
				u.rotateLeft(p)
				n, p = p, n
			}
			u.rotateRight(g)
		} else {
			if un := g.l; colorOf(un) == red {
				g.c, p.c, un.c = red, black, black
				n = g
				continue
			}
			if n == p.l {
				u.rotateRight(p)
				n, p = p, n
			}
			u.rotateLeft(g)
		}
		p.c, g.c = g.c, p.c
		n = p
	}
	u.root.c = black
}

// Clear removes all values. The tree can be used afterward.
// Recursive.
// Time: O(n)
func (u *RBTree[T]) Clear() {
	var release func(n *node[T])
	release = func(n *node[T]) {
		if n == nil {
			return
		}
		release(n.l)
		release(n.r)
		n.p, n.l, n.r = nil, nil, nil
	}
	release(u.root)
	u.root, u.size = nil, 0
}

// Destroy clears the tree and drops its comparator. u must not be used
// afterward; Insert panics with UsageError.
func (u *RBTree[T]) Destroy() {
	u.Clear()
	u.cmp = nil
}
