package graph

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/queue"
)

var _ Graph = (*WeightedGraph)(nil) // Type check assertion

// Edge is a weighted edge between V and W.
type Edge struct {
	V, W   int
	Weight int64
}

// arc is the adjacency entry, one per direction of an edge.
type arc struct {
	to     int
	weight int64
}

// WeightedGraph is undirected, both directions share the weight.
type WeightedGraph struct {
	adjacency[arc]
}

func NewWeightedGraph(order int) *WeightedGraph {
	return &WeightedGraph{
		adjacency: newAdjacency[arc](order,
			func(a arc) int { return a.to },
			func(a arc) string { return fmt.Sprintf("%d(%d)", a.to, a.weight) },
		),
	}
}

func (g *WeightedGraph) AddEdge(v, w int, weight int64) error {
	if err := g.checkVertex(v, w); err != nil {
		return err
	}
	if weight < 0 {
		return infra.WrapErrorStackWithMessage(
			ErrNegativeWeight,
			fmt.Sprintf("edge %d-%d weight %d", v, w, weight),
		)
	}
	g.link(v, w, arc{to: w, weight: weight}, arc{to: v, weight: weight})
	return nil
}

// AddEdges adds every valid edge and combines the failures.
func (g *WeightedGraph) AddEdges(edges ...Edge) error {
	var merr error
	for _, e := range edges {
		merr = multierr.Append(merr, g.AddEdge(e.V, e.W, e.Weight))
	}
	return merr
}

// Edges returns the edges leaving v in insertion order, V is always v.
func (g *WeightedGraph) Edges(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	edges := make([]Edge, 0, g.lists[v].Len())
	for a := range g.lists[v].Values() {
		edges = append(edges, Edge{V: v, W: a.to, Weight: a.weight})
	}
	return edges, nil
}

func (g *WeightedGraph) Art() []string {
	return g.art(func(a arc) string {
		return strconv.FormatInt(a.weight, 10)
	})
}

// ShortestPaths runs Dijkstra from src. A stale queue entry, whose
// priority is greater than the settled distance, is skipped.
func (g *WeightedGraph) ShortestPaths(src int) ([]int64, error) {
	if err := g.checkVertex(src); err != nil {
		return nil, err
	}
	dist := make([]int64, len(g.lists))
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0

	pq := queue.NewArrayPriorityQueue[int](
		queue.WithArrayPriorityQueueCapacity[int](len(g.lists)),
	)
	pq.Push(queue.NewPriorityQueueItem[int](src, 0))
	for pq.Len() > 0 {
		item := pq.Pop()
		v, d := item.Value(), item.Priority()
		if d > dist[v] {
			continue
		}
		for a := range g.lists[v].Values() {
			if next := d + a.weight; dist[a.to] == Unreachable || next < dist[a.to] {
				dist[a.to] = next
				pq.Push(queue.NewPriorityQueueItem[int](a.to, next))
			}
		}
	}
	return dist, nil
}
