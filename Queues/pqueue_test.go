package Queues

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

var _ Queue[int] = (*PriorityQueue[int])(nil)

type job struct {
	pri, id int
}

func TestPriorityQueue_Order(t *testing.T) {
	q := NewPriorityQueue[int](nil)
	all := rg.Perm(1000)
	for _, v := range all {
		q.Push(v)
	}
	if q.Size() != 1000 || q.Peek() != 0 {
		t.Fatalf("size %d peek %d", q.Size(), q.Peek())
	}
	slices.Sort(all)
	for _, want := range all {
		if v, err := q.Pop(); err != nil || v != want {
			t.Fatalf("popped %d %v, want %d", v, err, want)
		}
	}
	if !q.Empty() {
		t.Error("queue isn't empty")
	}
	var e *EmptyQueueError
	if _, err := q.Pop(); !errors.As(err, &e) {
		t.Errorf("pop on empty queue returned %v", err)
	}
	if q.Peek() != 0 {
		t.Error("peek on empty queue isn't zero")
	}
}

func TestPriorityQueue_Stable(t *testing.T) {
	q := NewPriorityQueue[job](func(a, b job) int { return cmp.Compare(a.pri, b.pri) })
	var all []job
	for i := range 500 {
		j := job{rg.Intn(10), i}
		all = append(all, j)
		q.Push(j)
	}
	slices.SortStableFunc(all, func(a, b job) int { return cmp.Compare(a.pri, b.pri) })
	for _, want := range all {
		if j, _ := q.Pop(); j != want {
			t.Fatalf("popped %v, want %v", j, want)
		}
	}
}

func TestPriorityQueue_RejectsNil(t *testing.T) {
	q := NewPriorityQueue[*int](func(a, b *int) int { return cmp.Compare(*a, *b) })
	defer func() {
		if recover() == nil {
			t.Error("pushing nil didn't panic")
		}
	}()
	q.Push(nil)
}
