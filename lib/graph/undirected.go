package graph

import (
	"strconv"

	"go.uber.org/multierr"
)

var _ Graph = (*UndirectedGraph)(nil) // Type check assertion

// UndirectedGraph stores each edge in both endpoint lists.
type UndirectedGraph struct {
	adjacency[int]
}

func NewUndirectedGraph(order int) *UndirectedGraph {
	return &UndirectedGraph{
		adjacency: newAdjacency[int](order,
			func(w int) int { return w },
			strconv.Itoa,
		),
	}
}

// AddEdge appends w to the list of v and v to the list of w.
// Parallel edges are kept.
func (g *UndirectedGraph) AddEdge(v, w int) error {
	if err := g.checkVertex(v, w); err != nil {
		return err
	}
	g.link(v, w, w, v)
	return nil
}

// AddEdges adds every valid pair and combines the failures.
func (g *UndirectedGraph) AddEdges(pairs ...[2]int) error {
	var merr error
	for _, p := range pairs {
		merr = multierr.Append(merr, g.AddEdge(p[0], p[1]))
	}
	return merr
}

func (g *UndirectedGraph) Art() []string {
	return g.art(nil)
}
