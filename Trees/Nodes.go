package Trees

type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// A node in the RBTree.
// nil children are the black leaves; there is no sentinel. p is nil only at the root.
type node[T any] struct {
	v       T
	p, l, r *node[T]
	c       color
}

// colorOf treats nil as a black leaf.
func colorOf[T any](n *node[T]) color {
	if n == nil {
		return black
	}
	return n.c
}

// leftmost node in the subtree rooting at n, n!=nil.
// Time: O(D); Space: O(1)
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node in the subtree rooting at n, n!=nil.
// Time: O(D); Space: O(1)
func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// replaceChild makes c take the place of n under n's parent, or the root.
// Only the parent-facing link is changed; c.p is left to the caller.
func (u *RBTree[T]) replaceChild(n, c *node[T]) {
	if p := n.p; p == nil {
		u.root = c
	} else if n == p.l {
		p.l = c
	} else {
		p.r = c
	}
}

// rotateLeft performs a left rotation on n. n.r becomes the parent of n, and
// the former n.r.l becomes n.r.
//
//	    n              r
//	   / \            / \
//	  a   r    →     n   c
//	     / \        / \
//	    b   c      a   b
//
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateLeft(n *node[T]) {
	r := n.r
	n.r = r.l
	if r.l != nil {
		r.l.p = n
	}
	r.p = n.p
	u.replaceChild(n, r)
	r.l = n
	n.p = r
}

// rotateRight is the mirror of rotateLeft. n.l becomes the parent of n.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateRight(n *node[T]) {
	l := n.l
	n.l = l.r
	if l.r != nil {
		l.r.p = n
	}
	l.p = n.p
	u.replaceChild(n, l)
	l.r = n
	n.p = l
}
