package Trees

// Delete [Tree.Delete]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Delete(v T) bool {
	if z := u.find(v); z != nil {
		u.remove(z)
		return true
	}
	return false
}

// PopMin removes and returns the leftmost value. Among equal values that is
// the earliest inserted one.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) PopMin() (v T, ok bool) {
	if u.root == nil {
		return
	}
	z := leftmost(u.root)
	v = z.v
	u.remove(z)
	return v, true
}

// PopMax removes and returns the rightmost value.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) PopMax() (v T, ok bool) {
	if u.root == nil {
		return
	}
	z := rightmost(u.root)
	v = z.v
	u.remove(z)
	return v, true
}

// transplant puts the subtree v at n's place. v may be nil.
func (u *RBTree[T]) transplant(n, v *node[T]) {
	u.replaceChild(n, v)
	if v != nil {
		v.p = n.p
	}
}

// remove z from the tree. When z has 2 children, its in-order successor y
// takes z's place and color, so the node that physically leaves its position
// is y. If that node was black, fixRemove runs from whatever filled the gap.
func (u *RBTree[T]) remove(z *node[T]) {
	var x, xp *node[T] // x may be nil; xp is its parent either way.
	removed := z.c
	if z.l == nil {
		x, xp = z.r, z.p
		u.transplant(z, z.r)
	} else if z.r == nil {
		x, xp = z.l, z.p
		u.transplant(z, z.l)
	} else {
		y := leftmost(z.r)
		removed = y.c
		x = y.r
		if y.p == z {
			xp = y
		} else {
			xp = y.p
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.c = z.c
	}
	z.p, z.l, z.r = nil, nil, nil
	u.size--
	if removed == black {
		u.fixRemove(x, xp)
	}
}

// fixRemove restores the black height after a black node left the position
// now held by x. x carries an extra black; it is pushed up or absorbed by
// rotations. xp is x's parent, it is tracked separately because x may be nil.
func (u *RBTree[T]) fixRemove(x, xp *node[T]) {
	for x != u.root && colorOf(x) == black {
		if x == xp.l {
			w := xp.r
			if w.c == red {
				w.c, xp.c = black, red
				u.rotateLeft(xp)
				w = xp.r
			}
			if colorOf(w.l) == black && colorOf(w.r) == black {
				w.c = red
				x, xp = xp, xp.p
				continue
			}
			if colorOf(w.r) == black {
				w.l.c, w.c = black, red
				u.rotateRight(w)
				w = xp.r
			}
			w.c, xp.c, w.r.c = xp.c, black, black
			u.rotateLeft(xp)
		} else {
			w := xp.l
			if w.c == red {
				w.c, xp.c = black, red
				u.rotateRight(xp)
				w = xp.l
			}
			if colorOf(w.l) == black && colorOf(w.r) == black {
				w.c = red
				x, xp = xp, xp.p
				continue
			}
			if colorOf(w.l) == black {
				w.r.c, w.c = black, red
				u.rotateLeft(w)
				w = xp.l
			}
			w.c, xp.c, w.l.c = xp.c, black, black
			u.rotateRight(xp)
		}
		x, xp = u.root, nil
	}
	if x != nil {
		x.c = black
	}
}
