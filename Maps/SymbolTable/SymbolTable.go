// Package SymbolTable maps names to values. Lookups go through a hash index,
// iteration and prefix queries go through a red-black tree ordered by name.
package SymbolTable

import (
	"strings"

	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/go-ordered/Trees"
	"github.com/tidwall/sjson"
)

type symbol[V any] struct {
	name string
	v    V
}

func byName[V any](a, b *symbol[V]) int {
	return strings.Compare(a.name, b.name)
}

// SymbolTable isn't safe for concurrent writes even though the index is, the
// tree and the index must change together. The tree decides which names
// exist, the index only speeds up point lookups.
type SymbolTable[V any] struct {
	index    *haxmap.Map[string, *symbol[V]]
	order    *Trees.RBTree[*symbol[V]]
	capacity uintptr
}

const (
	minIndex = 8
	// the index holds at most 1/indexFill symbols per slot, far below the
	// fill rate at which haxmap resizes itself in the background.
	indexFill = 4
)

// New SymbolTable, the index is preallocated for sizeHint symbols.
func New[V any](sizeHint uintptr) *SymbolTable[V] {
	c := max(sizeHint, minIndex) * indexFill
	return &SymbolTable[V]{
		index:    haxmap.New[string, *symbol[V]](c),
		order:    Trees.NewWith[*symbol[V]](byName[V]),
		capacity: c,
	}
}

func (u *SymbolTable[V]) Size() uint {
	return u.order.Size()
}

// lookup the symbol at name. On an index miss the tree is searched, and a
// symbol found there is indexed again.
func (u *SymbolTable[V]) lookup(name string) (*symbol[V], bool) {
	if s, ok := u.index.Get(name); ok {
		return s, true
	}
	s, ok := u.order.Search(&symbol[V]{name: name})
	if ok {
		u.index.Set(name, s)
	}
	return s, ok
}

// reserve rebuilds the index from the tree with twice the capacity once it
// gets too full.
// Time: O(n) when rebuilding.
func (u *SymbolTable[V]) reserve() {
	n := uintptr(u.order.Size())
	if n*indexFill <= u.capacity {
		return
	}
	for n*indexFill > u.capacity {
		u.capacity <<= 1
	}
	u.index = haxmap.New[string, *symbol[V]](u.capacity)
	next := u.order.Ascend()
	for s, ok := next(); ok; s, ok = next() {
		u.index.Set(s.name, s)
	}
}

// Put v at name, returns the old value at name.
// Time: O(1) when name is indexed, O(log n) otherwise.
func (u *SymbolTable[V]) Put(name string, v V) (old V) {
	if s, ok := u.lookup(name); ok {
		old, s.v = s.v, v
		return
	}
	s := &symbol[V]{name, v}
	if err := u.order.Insert(s); err != nil {
		panic(err)
	}
	u.reserve()
	u.index.Set(name, s)
	return
}

func (u *SymbolTable[V]) HasKey(name string) bool {
	_, ok := u.lookup(name)
	return ok
}

func (u *SymbolTable[V]) Get(name string) V {
	v, _ := u.Lookup(name)
	return v
}

// Lookup the value at name.
// Time: O(1) when name is indexed, O(log n) otherwise.
func (u *SymbolTable[V]) Lookup(name string) (V, bool) {
	if s, ok := u.lookup(name); ok {
		return s.v, true
	}
	return *new(V), false
}

// Remove name, returns true if something was removed.
// Time: O(log n)
func (u *SymbolTable[V]) Remove(name string) bool {
	s, ok := u.lookup(name)
	if !ok {
		return false
	}
	u.index.Del(name)
	return u.order.Delete(s)
}

// Take removes and returns the symbol with the smallest name. Zero values on
// an empty table.
func (u *SymbolTable[V]) Take() (name string, v V) {
	if s, ok := u.order.PopMin(); ok {
		u.index.Del(s.name)
		return s.name, s.v
	}
	return
}

func pairs[V any](next func() (*symbol[V], bool)) func() (string, V, bool) {
	return func() (name string, v V, ok bool) {
		var s *symbol[V]
		if s, ok = next(); ok {
			name, v = s.name, s.v
		}
		return
	}
}

// Pairs sorted by name.
func (u *SymbolTable[V]) Pairs() func() (string, V, bool) {
	return pairs(u.order.Ascend())
}

// Keys sorted.
func (u *SymbolTable[V]) Keys() func() (string, bool) {
	next := u.Pairs()
	return func() (string, bool) {
		k, _, ok := next()
		return k, ok
	}
}

// Values sorted by name.
func (u *SymbolTable[V]) Values() func() (V, bool) {
	next := u.Pairs()
	return func() (V, bool) {
		_, v, ok := next()
		return v, ok
	}
}

// WithPrefix calls f on every symbol whose name starts with prefix, sorted by
// name, until f returns false.
// Time: O(log n + m) for m visited symbols.
func (u *SymbolTable[V]) WithPrefix(prefix string, f func(name string, v V) bool) {
	next := pairs(u.order.AscendFrom(&symbol[V]{name: prefix}))
	for name, v, ok := next(); ok && strings.HasPrefix(name, prefix); name, v, ok = next() {
		if !f(name, v) {
			return
		}
	}
}

type exported struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ExportJSON writes the table sorted by name:
//
//	{"size":2,"symbols":[{"name":"a","value":1},{"name":"b","value":2}]}
//
// Values are encoded with encoding/json rules.
// Time: O(n)
func (u *SymbolTable[V]) ExportJSON() ([]byte, error) {
	b, err := sjson.SetBytes([]byte(`{}`), "size", u.Size())
	if err != nil {
		return nil, err
	}
	syms := make([]exported, 0, u.Size())
	next := u.Pairs()
	for name, v, ok := next(); ok; name, v, ok = next() {
		syms = append(syms, exported{name, v})
	}
	return sjson.SetBytes(b, "symbols", syms)
}

// Check the index and the order hold the same symbols. The first name found
// on one side only is reported in a MismatchError.
func (u *SymbolTable[V]) Check() error {
	if err := u.order.Verify(); err != nil {
		return err
	}
	next := u.order.Ascend()
	for s, ok := next(); ok; s, ok = next() {
		if t, has := u.index.Get(s.name); !has || t != s {
			return &MismatchError{s.name, "is stored but not indexed"}
		}
	}
	var err error
	u.index.ForEach(func(name string, s *symbol[V]) bool {
		if t, ok := u.order.Search(&symbol[V]{name: name}); !ok || t != s {
			err = &MismatchError{name, "is indexed but not stored"}
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if n := u.index.Len(); uintptr(u.order.Size()) != n {
		return &MismatchError{msg: "index and order have different sizes"}
	}
	return nil
}

type MismatchError struct {
	Name string // empty when no single symbol is to blame.
	msg  string
}

func (e *MismatchError) Error() string {
	if e.Name == "" {
		return e.msg
	}
	return "symbol " + e.Name + " " + e.msg
}
