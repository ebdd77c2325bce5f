package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/benz9527/xdsa/lib/bits"
	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/list"
)

// adjacency keeps one linked list per vertex. E is the list entry,
// endpoint maps it back to the adjacent vertex.
type adjacency[E comparable] struct {
	lists    []list.LinkedList[E]
	endpoint func(e E) int
	format   func(e E) string
}

func newAdjacency[E comparable](order int, endpoint func(e E) int, format func(e E) string) adjacency[E] {
	lists := make([]list.LinkedList[E], max(order, 0))
	for i := range lists {
		lists[i] = list.NewLinkedList[E]()
	}
	return adjacency[E]{
		lists:    lists,
		endpoint: endpoint,
		format:   format,
	}
}

func (adj *adjacency[E]) Order() int {
	return len(adj.lists)
}

func (adj *adjacency[E]) contains(v int) bool {
	return v >= 0 && v < len(adj.lists)
}

func (adj *adjacency[E]) visitedSet() bits.Bitmap {
	return bits.NewX32Bitmap(uint64(len(adj.lists)))
}

func (adj *adjacency[E]) checkVertex(vertices ...int) error {
	for _, v := range vertices {
		if !adj.contains(v) {
			return infra.WrapErrorStackWithMessage(
				ErrVertexOutOfRange,
				fmt.Sprintf("vertex %d, order %d", v, len(adj.lists)),
			)
		}
	}
	return nil
}

// link appends e to the list of v and back to the list of w.
func (adj *adjacency[E]) link(v, w int, toW, toV E) {
	adj.lists[v].PushBack(toW)
	adj.lists[w].PushBack(toV)
}

func (adj *adjacency[E]) Degree(v int) (int, error) {
	if err := adj.checkVertex(v); err != nil {
		return 0, err
	}
	return int(adj.lists[v].Len()), nil
}

func (adj *adjacency[E]) Neighbors(v int) ([]int, error) {
	if err := adj.checkVertex(v); err != nil {
		return nil, err
	}
	return lo.Map(slices.Collect(adj.lists[v].Values()), func(e E, _ int) int {
		return adj.endpoint(e)
	}), nil
}

func (adj *adjacency[E]) RemoveEdge(v, w int) error {
	if err := adj.checkVertex(v, w); err != nil {
		return err
	}
	adj.lists[v].RemoveIf(func(e E) bool { return adj.endpoint(e) == w })
	adj.lists[w].RemoveIf(func(e E) bool { return adj.endpoint(e) == v })
	return nil
}

func (adj *adjacency[E]) RemoveVertex(v int) error {
	if err := adj.checkVertex(v); err != nil {
		return err
	}
	for _, l := range adj.lists {
		l.RemoveIf(func(e E) bool { return adj.endpoint(e) == v })
	}
	adj.lists[v].Clear()
	return nil
}

func (adj *adjacency[E]) String() string {
	var b strings.Builder
	for v, l := range adj.lists {
		if v > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d ->", v)
		for e := range l.Values() {
			b.WriteByte(' ')
			b.WriteString(adj.format(e))
		}
	}
	return b.String()
}
