package list

import "iter"

// Note that the doubly linked list is not thread safe.
// It backs the level queues of the tree printer, the stacks
// and queues of the graph traversals and the graph adjacency lists.

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	Len() int64
	// PushBack inserts a new element with value v at the back of list l and returns it.
	PushBack(v T) *NodeElement[T]
	// PopFront removes the first element and returns its value.
	// The bool result is false if the list is empty.
	PopFront() (T, bool)
	// PopBack removes the last element and returns its value.
	PopBack() (T, bool)
	// RemoveIf removes all elements satisfying fn and returns the removed count.
	RemoveIf(fn func(v T) bool) int64
	// ReverseForeach traverses the list l from back to front.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]))
	// Values yields the values from front to back.
	Values() iter.Seq[T]
	// Clear drops all elements.
	Clear()
}
