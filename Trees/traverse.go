package Trees

import "math/bits"

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n)
func (u *RBTree[T]) InOrder(f func(v T, depth int)) {
	var walk func(n *node[T], d int)
	walk = func(n *node[T], d int) {
		if n.l != nil {
			walk(n.l, d+1)
		}
		f(n.v, d)
		if n.r != nil {
			walk(n.r, d+1)
		}
	}
	if u.root != nil {
		walk(u.root, 0)
	}
}

// PreOrder [Tree.PreOrder]. Recursive.
// Time: O(n)
func (u *RBTree[T]) PreOrder(f func(v T, depth int)) {
	var walk func(n *node[T], d int)
	walk = func(n *node[T], d int) {
		f(n.v, d)
		if n.l != nil {
			walk(n.l, d+1)
		}
		if n.r != nil {
			walk(n.r, d+1)
		}
	}
	if u.root != nil {
		walk(u.root, 0)
	}
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n)
func (u *RBTree[T]) PostOrder(f func(v T, depth int)) {
	var walk func(n *node[T], d int)
	walk = func(n *node[T], d int) {
		if n.l != nil {
			walk(n.l, d+1)
		}
		if n.r != nil {
			walk(n.r, d+1)
		}
		f(n.v, d)
	}
	if u.root != nil {
		walk(u.root, 0)
	}
}

// Ascend returns a closure function f acting like an iterator. f gives the
// values in ascending order.
// Calling f is like calling "Next()" of iterators: val, valid=f()
// val is meaningful only if valid is true. When valid==false,
// then f is exhausted. valid can't turn true after it first became false.
// The tree must not be modified during the iteration of f. The links of the
// tree are only read, so several iterations may run at once.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *RBTree[T]) Ascend() func() (T, bool) {
	st := make([]*node[T], 0, 2*bits.Len(u.size))
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return ascend(st)
}

// AscendFrom is Ascend starting at the first value >= v.
// Time: O(D) to start, then like Ascend.
func (u *RBTree[T]) AscendFrom(v T) func() (T, bool) {
	st := make([]*node[T], 0, 2*bits.Len(u.size))
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			st = append(st, cur)
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return ascend(st)
}

// ascend pops the next node from st, which holds the nodes still to be
// visited whose left subtrees were already visited or skipped.
func ascend[T any](st []*node[T]) func() (T, bool) {
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.v, true
	}
}

// Descend is Ascend in descending order.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *RBTree[T]) Descend() func() (T, bool) {
	st := make([]*node[T], 0, 2*bits.Len(u.size))
	for cur := u.root; cur != nil; cur = cur.r {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.l; n != nil; n = n.r {
			st = append(st, n)
		}
		return cur.v, true
	}
}

// Values in ascending order.
// Time: O(n)
func (u *RBTree[T]) Values() []T {
	s := make([]T, 0, u.size)
	for next := u.Ascend(); ; {
		v, ok := next()
		if !ok {
			return s
		}
		s = append(s, v)
	}
}
