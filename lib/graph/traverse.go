package graph

import (
	"iter"

	"github.com/benz9527/xdsa/lib/bits"
	"github.com/benz9527/xdsa/lib/list"
)

// Stack based DFS, the neighbors are pushed in reverse so the first
// neighbor pops first. A vertex is emitted when it pops unvisited.
func (adj *adjacency[E]) DFS(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !adj.contains(start) {
			return
		}
		visited := adj.visitedSet()
		stack := list.NewLinkedList[int]()
		stack.PushBack(start)
		for stack.Len() > 0 {
			v, _ := stack.PopBack()
			if visited.GetBit(uint64(v)) {
				continue
			}
			visited.SetBit(uint64(v))
			if !yield(v) {
				return
			}
			adj.lists[v].ReverseForeach(func(_ int64, e *list.NodeElement[E]) {
				if w := adj.endpoint(e.Value); !visited.GetBit(uint64(w)) {
					stack.PushBack(w)
				}
			})
		}
	}
}

func (adj *adjacency[E]) DFSRecursive(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !adj.contains(start) {
			return
		}
		adj.dfsVisit(start, adj.visitedSet(), yield)
	}
}

func (adj *adjacency[E]) dfsVisit(v int, visited bits.Bitmap, yield func(int) bool) bool {
	visited.SetBit(uint64(v))
	if !yield(v) {
		return false
	}
	for e := range adj.lists[v].Values() {
		if w := adj.endpoint(e); !visited.GetBit(uint64(w)) && !adj.dfsVisit(w, visited, yield) {
			return false
		}
	}
	return true
}

func (adj *adjacency[E]) BFS(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !adj.contains(start) {
			return
		}
		visited := adj.visitedSet()
		queue := list.NewLinkedList[int]()
		visited.SetBit(uint64(start))
		queue.PushBack(start)
		for queue.Len() > 0 {
			v, _ := queue.PopFront()
			if !yield(v) {
				return
			}
			for e := range adj.lists[v].Values() {
				if w := adj.endpoint(e); !visited.GetBit(uint64(w)) {
					visited.SetBit(uint64(w))
					queue.PushBack(w)
				}
			}
		}
	}
}

func (adj *adjacency[E]) BFSRecursive(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !adj.contains(start) {
			return
		}
		visited := adj.visitedSet()
		queue := list.NewLinkedList[int]()
		visited.SetBit(uint64(start))
		queue.PushBack(start)
		adj.bfsVisit(queue, visited, yield)
	}
}

// bfsVisit consumes the queue head, enqueues its unvisited neighbors,
// then recurses on the rest of the queue.
func (adj *adjacency[E]) bfsVisit(queue list.LinkedList[int], visited bits.Bitmap, yield func(int) bool) bool {
	v, ok := queue.PopFront()
	if !ok {
		return true
	}
	if !yield(v) {
		return false
	}
	for e := range adj.lists[v].Values() {
		if w := adj.endpoint(e); !visited.GetBit(uint64(w)) {
			visited.SetBit(uint64(w))
			queue.PushBack(w)
		}
	}
	return adj.bfsVisit(queue, visited, yield)
}
