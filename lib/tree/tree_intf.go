package tree

import (
	"iter"

	"github.com/benz9527/xdsa/lib/infra"
)

type TraverseOrder uint8

const (
	InOrder TraverseOrder = iota
	PreOrder
	PostOrder
	// BFS visits level by level from the root, left to right.
	BFS
	// DFS pops a node then pushes its right child before the left one,
	// so the visiting order equals PreOrder.
	DFS
	_traverseOrderMax
)

var traverseOrderNames = [...]string{
	InOrder:   "inorder",
	PreOrder:  "preorder",
	PostOrder: "postorder",
	BFS:       "bfs",
	DFS:       "dfs",
}

func (order TraverseOrder) String() string {
	if order >= _traverseOrderMax {
		return "unknown"
	}
	return traverseOrderNames[order]
}

func TraverseOrders() []TraverseOrder {
	return []TraverseOrder{InOrder, PreOrder, PostOrder, BFS, DFS}
}

// Node is a read-only view of a tree node.
// A view is only valid until the next mutation of its tree.
type Node[K infra.OrderedKey] interface {
	Key() K
	Height() int
	Left() Node[K]
	Right() Node[K]
}

type AVLTree[K infra.OrderedKey] interface {
	Len() int64
	Height() int
	IsDesc() bool
	Root() Node[K]
	// Insert returns false if the key is already present.
	Insert(key K) bool
	// Delete returns false if the key is absent.
	Delete(key K) bool
	Contains(key K) bool
	// First returns the first key in order.
	First() (K, bool)
	// Last returns the last key in order.
	Last() (K, bool)
	// Traverse walks the tree with explicit stacks and queues.
	Traverse(order TraverseOrder) iter.Seq[K]
	// TraverseRecursive yields the same sequences as Traverse by recursion.
	TraverseRecursive(order TraverseOrder) iter.Seq[K]
	// Rebuild reshapes the tree into a height balanced one, keeping its keys.
	Rebuild()
	Release()
}
