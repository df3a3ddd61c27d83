package Trees

import (
	"fmt"
	"io"

	"github.com/tidwall/sjson"
)

type dumpNode struct {
	Value any    `json:"value"`
	Color string `json:"color"`
	Depth int    `json:"depth"`
	Side  string `json:"side"`
}

// Dump describes the shape of the tree as JSON:
//
//	{"size":3,"height":2,"nodes":[{"value":2,"color":"black","depth":0,"side":"root"},...]}
//
// nodes are in pre-order, side is one of "root", "left" and "right". Values
// are encoded with encoding/json rules, an error is returned if T can't be encoded.
// Recursive.
// Time: O(n)
func (u *RBTree[T]) Dump() ([]byte, error) {
	b, err := sjson.SetBytes([]byte(`{}`), "size", u.size)
	if err != nil {
		return nil, err
	}
	if b, err = sjson.SetBytes(b, "height", u.Height()); err != nil {
		return nil, err
	}
	nodes := make([]dumpNode, 0, u.size)
	var walk func(n *node[T], d int, side string)
	walk = func(n *node[T], d int, side string) {
		if n == nil {
			return
		}
		nodes = append(nodes, dumpNode{n.v, n.c.String(), d, side})
		walk(n.l, d+1, "left")
		walk(n.r, d+1, "right")
	}
	walk(u.root, 0, "root")
	return sjson.SetBytes(b, "nodes", nodes)
}

// Print writes one line per node in pre-order: "node <v> depth <d> <color>".
// Recursive.
func (u *RBTree[T]) Print(w io.Writer) {
	var walk func(n *node[T], d int)
	walk = func(n *node[T], d int) {
		if n == nil {
			return
		}
		fmt.Fprintln(w, "node", n.v, "depth", d, n.c)
		walk(n.l, d+1)
		walk(n.r, d+1)
	}
	walk(u.root, 0)
}
