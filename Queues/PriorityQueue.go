package Queues

import (
	"github.com/g-m-twostay/go-ordered/Trees"
)

// PriorityQueue pops the smallest item first. Items that compare equal leave
// in the order they came in.
type PriorityQueue[T any] struct {
	t *Trees.RBTree[T]
}

// NewPriorityQueue ordered by c, nil c uses Trees.Default.
func NewPriorityQueue[T any](c Trees.Comparator[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{Trees.NewWith[T](c)}
}

// Push panics if item is rejected by the tree, for example a nil pointer.
// Time: O(log n)
func (q *PriorityQueue[T]) Push(item T) {
	if err := q.t.Insert(item); err != nil {
		panic(err)
	}
}

// Pop the smallest item.
// Time: O(log n)
func (q *PriorityQueue[T]) Pop() (T, error) {
	if v, ok := q.t.PopMin(); ok {
		return v, nil
	}
	return *new(T), &EmptyQueueError{}
}

// Peek the smallest item, zero value if empty.
func (q *PriorityQueue[T]) Peek() T {
	v, _ := q.t.Minimum()
	return v
}

func (q *PriorityQueue[T]) Empty() bool {
	return q.t.IsEmpty()
}

func (q *PriorityQueue[T]) Size() uint {
	return q.t.Size()
}
