package Trees

import "fmt"

// Verify checks the 5 rules listed on RBTree and that Size matches the
// number of nodes. It returns the first violation found as *InvariantError,
// Rule 0 being the size bookkeeping.
// Recursive.
// Time: O(n)
func (u *RBTree[T]) Verify() error {
	if u.root == nil {
		if u.size != 0 {
			return &InvariantError{0, fmt.Sprintf("empty tree has size %d", u.size)}
		}
		return nil
	}
	if u.root.p != nil {
		return &InvariantError{5, "root has a parent"}
	}
	if u.root.c != black {
		return &InvariantError{2, "root is red"}
	}
	_, cnt, err := u.verify(u.root)
	if err != nil {
		return err
	}
	if cnt != u.size {
		return &InvariantError{0, fmt.Sprintf("tree has %d nodes, size is %d", cnt, u.size)}
	}
	var prev *T
	u.InOrder(func(v T, _ int) {
		if err == nil && prev != nil && u.cmp(*prev, v) > 0 {
			err = &InvariantError{1, fmt.Sprintf("%v comes before %v", *prev, v)}
		}
		prev = &v
	})
	return err
}

// verify the subtree at n, returning its black height and node count.
func (u *RBTree[T]) verify(n *node[T]) (bh int, cnt uint, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
		return 0, 0, &InvariantError{5, fmt.Sprintf("child of %v links to another parent", n.v)}
	}
	if n.c == red && (colorOf(n.l) == red || colorOf(n.r) == red) {
		return 0, 0, &InvariantError{3, fmt.Sprintf("red %v has a red child", n.v)}
	}
	lh, lc, err := u.verify(n.l)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := u.verify(n.r)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, &InvariantError{4, fmt.Sprintf("black height under %v is %d on the left and %d on the right", n.v, lh, rh)}
	}
	if n.c == black {
		lh++
	}
	return lh, lc + rc + 1, nil
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *RBTree[T]) Corrupt() bool {
	return u.Verify() != nil
}
