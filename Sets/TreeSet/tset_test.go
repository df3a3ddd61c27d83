package TreeSet

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-ordered/Sets"
	"github.com/google/btree"
)

var _ Sets.OrderedSet[int] = (*TreeSet[int])(nil)

func TestTreeSet_All(t *testing.T) {
	S := NewOrdered[int]()
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 5 {
		t.Errorf("wrong size %d", S.Size())
	}
}

func TestTreeSet_Oracle(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	S := NewOrdered[int]()
	oracle := btree.NewOrderedG[int](8)
	for range 5000 {
		k := rg.Intn(1000)
		if rg.Intn(3) == 0 {
			_, in := oracle.Delete(k)
			if S.Remove(k) != in {
				t.Fatalf("remove of %d disagrees with oracle", k)
			}
		} else {
			_, in := oracle.ReplaceOrInsert(k)
			if S.Put(k) == in {
				t.Fatalf("put of %d disagrees with oracle", k)
			}
		}
	}
	if int(S.Size()) != oracle.Len() {
		t.Fatalf("set size is %d, want %d", S.Size(), oracle.Len())
	}
	var want []int
	oracle.Ascend(func(item int) bool {
		want = append(want, item)
		return true
	})
	if got := S.Values(); !slices.Equal(got, want) {
		t.Fatal("set and oracle hold different elements")
	}
	for k := -1; k <= 1000; k++ {
		var succ, pred int
		var hasSucc, hasPred bool
		oracle.AscendGreaterOrEqual(k+1, func(item int) bool {
			succ, hasSucc = item, true
			return false
		})
		oracle.DescendLessOrEqual(k-1, func(item int) bool {
			pred, hasPred = item, true
			return false
		})
		if v, ok := S.Successor(k); ok != hasSucc || v != succ {
			t.Fatalf("wrong successor of %d: %d, want %d", k, v, succ)
		}
		if v, ok := S.Predecessor(k); ok != hasPred || v != pred {
			t.Fatalf("wrong predecessor of %d: %d, want %d", k, v, pred)
		}
	}
	if v, _ := S.Min(); v != want[0] {
		t.Errorf("wrong min %d", v)
	}
	if v, _ := S.Max(); v != want[len(want)-1] {
		t.Errorf("wrong max %d", v)
	}
}

func TestTreeSet_TakeRange(t *testing.T) {
	S := New[string](nil)
	for _, s := range []string{"pear", "apple", "fig", "apple"} {
		S.Put(s)
	}
	var seen []string
	S.Range(func(s string) bool {
		seen = append(seen, s)
		return s != "fig"
	})
	if !slices.Equal(seen, []string{"apple", "fig"}) {
		t.Errorf("range stopped at %v", seen)
	}
	for _, want := range []string{"apple", "fig", "pear", ""} {
		if got := S.Take(); got != want {
			t.Errorf("take gives %q, want %q", got, want)
		}
	}
	if S.Size() != 0 {
		t.Errorf("set isn't empty after taking everything")
	}
}
