package Trees

// find the first node equal to v on the way down from the root.
func (u *RBTree[T]) find(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Search [Tree.Search]
// When there are several equal values, any one of them may be returned.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Search(v T) (T, bool) {
	if n := u.find(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	return u.find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) > 0 {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Floor returns the greatest element <= v.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Floor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c == 0 {
			return cur.v, true
		} else if c > 0 {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Ceiling returns the smallest element >= v.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Ceiling(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c == 0 {
			return cur.v, true
		} else if c < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

func height[T any](c *node[T]) uint {
	if c == nil {
		return 0
	}
	return max(height(c.l), height(c.r)) + 1
}

// Height is the number of nodes on the longest path from the root to a leaf.
// Recursive.
// Time: O(n)
func (u *RBTree[T]) Height() uint {
	return height(u.root)
}
