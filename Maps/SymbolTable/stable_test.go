package SymbolTable

import (
	"errors"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/g-m-twostay/go-ordered/Maps"
	"github.com/tidwall/gjson"
)

var rg = *rand.New(rand.NewSource(0))

var _ Maps.Map[string, int] = (*SymbolTable[int])(nil)

func TestSymbolTable_All(t *testing.T) {
	st := New[int](0)
	for i, s := range []string{"hello", "world", "the", "earth", "says", "help"} {
		st.Put(s, i)
	}
	if old := st.Put("hello", 9); old != 0 {
		t.Errorf("old value of hello is %d", old)
	}
	if st.Size() != 6 {
		t.Fatalf("size is %d", st.Size())
	}
	if v, ok := st.Lookup("hello"); !ok || v != 9 {
		t.Errorf("hello is %d %v", v, ok)
	}
	if st.HasKey("moon") || st.Get("moon") != 0 {
		t.Error("found a missing name")
	}
	var got []string
	st.WithPrefix("hel", func(name string, _ int) bool {
		got = append(got, name)
		return true
	})
	if !slices.Equal(got, []string{"hello", "help"}) {
		t.Errorf("prefix hel gives %v", got)
	}
	got = got[:0]
	st.WithPrefix("", func(name string, _ int) bool {
		got = append(got, name)
		return len(got) < 3
	})
	if !slices.Equal(got, []string{"earth", "hello", "help"}) {
		t.Errorf("empty prefix gives %v", got)
	}
	if !st.Remove("the") || st.Remove("the") {
		t.Error("remove the")
	}
	if name, v := st.Take(); name != "earth" || v != 3 {
		t.Errorf("take returned %s %d", name, v)
	}
	if st.HasKey("earth") {
		t.Error("taken symbol is still indexed")
	}
	if err := st.Check(); err != nil {
		t.Fatal(err)
	}
	keys := st.Keys()
	for _, want := range []string{"hello", "help", "says", "world"} {
		if k, ok := keys(); !ok || k != want {
			t.Fatalf("key %s, want %s", k, want)
		}
	}
	if _, ok := keys(); ok {
		t.Error("more keys than expected")
	}
}

func TestSymbolTable_Random(t *testing.T) {
	st := New[int](64)
	o := make(map[string]int)
	for i := range 4000 {
		name := strconv.Itoa(rg.Intn(1500))
		switch rg.Intn(4) {
		case 0:
			_, had := o[name]
			if st.Remove(name) != had {
				t.Fatalf("remove %s: result doesn't match", name)
			}
			delete(o, name)
		default:
			st.Put(name, i)
			o[name] = i
		}
		if st.Size() != uint(len(o)) {
			t.Fatalf("size %d, want %d", st.Size(), len(o))
		}
	}
	if err := st.Check(); err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(o))
	for k := range o {
		names = append(names, k)
	}
	slices.Sort(names)
	next := st.Pairs()
	for _, want := range names {
		k, v, ok := next()
		if !ok || k != want || v != o[want] {
			t.Fatalf("pair %s %d, want %s %d", k, v, want, o[want])
		}
	}
}

func TestSymbolTable_ExportJSON(t *testing.T) {
	st := New[[]int](0)
	st.Put("b", []int{2, 3})
	st.Put("a", []int{1})
	st.Put("c", nil)
	b, err := st.ExportJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.ValidBytes(b) {
		t.Fatalf("invalid json %s", b)
	}
	r := gjson.ParseBytes(b)
	if r.Get("size").Int() != 3 {
		t.Errorf("size is %v", r.Get("size"))
	}
	if names := r.Get("symbols.#.name").String(); names != `["a","b","c"]` {
		t.Errorf("names are %s", names)
	}
	if v := r.Get(`symbols.#(name=="b").value.1`).Int(); v != 3 {
		t.Errorf("b[1] is %d", v)
	}
	if v := r.Get(`symbols.#(name=="c").value`); v.Type != gjson.Null {
		t.Errorf("c is %v", v)
	}

	b, err = New[func()](0).ExportJSON()
	if err != nil || gjson.GetBytes(b, "symbols.#").Int() != 0 {
		t.Errorf("empty table exported %s %v", b, err)
	}
	fs := New[func()](0)
	fs.Put("f", func() {})
	if _, err = fs.ExportJSON(); err == nil {
		t.Error("exporting a func didn't fail")
	}
}

func TestSymbolTable_EveryNameIndexed(t *testing.T) {
	st := New[int](0)
	live := make(map[string]int)
	for i := range 6000 {
		name := strconv.Itoa(rg.Intn(1500))
		if rg.Intn(4) == 0 {
			st.Remove(name)
			delete(live, name)
		} else {
			st.Put(name, i)
			live[name] = i
		}
		if st.Size() != uint(len(live)) {
			t.Fatalf("step %d: size %d, want %d", i, st.Size(), len(live))
		}
		if st.capacity < uintptr(st.Size())*indexFill {
			t.Fatalf("step %d: index capacity %d for %d symbols", i, st.capacity, st.Size())
		}
		for k, v := range live {
			if got, ok := st.Lookup(k); !ok || got != v {
				t.Fatalf("step %d: %s is %d %v, want %d", i, k, got, ok, v)
			}
		}
		if i%97 == 0 {
			if err := st.Check(); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
	}
	if err := st.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestSymbolTable_LostIndexEntry(t *testing.T) {
	st := New[int](0)
	for i, s := range []string{"a", "b", "c"} {
		st.Put(s, i)
	}
	st.index.Del("b")
	var me *MismatchError
	if err := st.Check(); !errors.As(err, &me) || me.Name != "b" {
		t.Fatalf("check returned %v, want b not indexed", err)
	}
	if old := st.Put("b", 7); old != 1 {
		t.Errorf("old value of b is %d", old)
	}
	if st.Size() != 3 {
		t.Errorf("size is %d after putting an unindexed name", st.Size())
	}
	if err := st.Check(); err != nil {
		t.Fatalf("index isn't repaired: %v", err)
	}

	st.index.Del("c")
	if !st.Remove("c") || st.HasKey("c") || st.Size() != 2 {
		t.Error("remove of an unindexed name")
	}
	if err := st.Check(); err != nil {
		t.Fatal(err)
	}

	st.index.Set("ghost", &symbol[int]{"ghost", 1})
	if err := st.Check(); !errors.As(err, &me) || me.Name != "ghost" {
		t.Fatalf("check returned %v, want ghost not stored", err)
	}
	st.index.Del("ghost")

	st.order.Insert(&symbol[int]{"a", 9})
	if err := st.Check(); !errors.As(err, &me) || me.Name != "a" {
		t.Fatalf("check returned %v, want a duplicated", err)
	}
}

func TestSymbolTable_PutOnDestroyedPanics(t *testing.T) {
	st := New[int](0)
	st.order.Destroy()
	defer func() {
		if recover() == nil {
			t.Error("put into a destroyed table didn't panic")
		}
	}()
	st.Put("x", 1)
}
