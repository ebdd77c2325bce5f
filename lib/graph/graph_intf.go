package graph

import (
	"errors"
	"iter"
)

// The graphs have a fixed vertex set 0..order-1, removing a vertex
// only isolates it. They are not thread safe.

var (
	ErrVertexOutOfRange = errors.New("[graph] vertex out of range")
	ErrNegativeWeight   = errors.New("[graph] negative edge weight")
)

// Unreachable is the distance reported for a vertex that no path
// from the source reaches.
const Unreachable int64 = -1

type Graph interface {
	// Order returns the number of vertices.
	Order() int
	// Degree counts the adjacency entries of v, parallel edges included.
	Degree(v int) (int, error)
	// Neighbors returns the adjacent vertices of v in insertion order.
	Neighbors(v int) ([]int, error)
	// RemoveEdge drops every edge between v and w.
	RemoveEdge(v, w int) error
	// RemoveVertex drops every edge touching v, v itself stays isolated.
	RemoveVertex(v int) error
	// DFS visits the neighbors in insertion order with an explicit stack.
	// An out of range start yields nothing.
	DFS(start int) iter.Seq[int]
	DFSRecursive(start int) iter.Seq[int]
	// BFS marks a vertex visited when it is enqueued.
	BFS(start int) iter.Seq[int]
	BFSRecursive(start int) iter.Seq[int]
	// Art draws the vertices on a circle and the edges as arrows.
	Art() []string
	// String lists the adjacency, one "v -> a b" line per vertex.
	String() string
}
