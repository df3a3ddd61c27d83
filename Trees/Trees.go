package Trees

import (
	"cmp"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered container implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Equal values are kept, the new one is placed after
	//all the equal ones in in-order.
	Insert(v T) error
	//Delete the first value equal to v found from the root. Returning true if
	//something was removed. Deleting a missing value doesn't touch the Tree.
	Delete(v T) bool
	//Search returns the stored value equal to v.
	Search(v T) (T, bool)
	//Has value equal to v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v. v doesn't need to be
	//in the tree.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v. v doesn't need to be
	//in the tree.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//InOrder calls f on every element in ascending order with its depth, the root
	//is at depth 0. f must not modify the Tree.
	InOrder(f func(v T, depth int))
	//PreOrder is like InOrder but visits a node before its children.
	PreOrder(f func(v T, depth int))
	//PostOrder is like InOrder but visits a node after its children.
	PostOrder(f func(v T, depth int))
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

// Comparator returns a negative number when a<b, 0 when a==b, and a positive
// number when a>b. It must be a total order.
type Comparator[T any] func(a, b T) int

// Comparable is for user-defined types that order themselves.
type Comparable[T any] interface {
	Compare(other T) int
}

// Ordered returns the natural Comparator of T.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Default derives a Comparator for T. Types implementing Comparable use
// Compare, strings compare bytewise, and numbers compare by value. Any other
// T panics with UsageError.
func Default[T any]() Comparator[T] {
	var z T
	if _, ok := any(z).(Comparable[T]); ok {
		return func(a, b T) int {
			return any(a).(Comparable[T]).Compare(b)
		}
	}
	switch reflect.TypeOf(&z).Elem().Kind() {
	case reflect.String:
		return func(a, b T) int {
			return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}
	}
	panic(UsageError{"no comparator for " + reflect.TypeOf(&z).Elem().String()})
}

// isNil reports whether v holds a nil pointer, map, slice, func, chan or interface.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
