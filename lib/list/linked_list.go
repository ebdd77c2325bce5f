package list

import "iter"

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// The root is a sentinel element, root.next is the head and
// root.prev is the tail. An empty list links root to itself.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

// insertAfter links the new element e right after at.
func (l *doublyLinkedList[T]) insertAfter(e, at *NodeElement[T]) *NodeElement[T] {
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.len++
	return e
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) *NodeElement[T] {
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.prev = nil
	e.next = nil
	l.len--
	return e
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.insertAfter(newNodeElement(v), l.root.prev)
}

func (l *doublyLinkedList[T]) PopFront() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.unlink(l.root.next).Value, true
}

func (l *doublyLinkedList[T]) PopBack() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.unlink(l.root.prev).Value, true
}

func (l *doublyLinkedList[T]) RemoveIf(fn func(v T) bool) int64 {
	if fn == nil || l.len == 0 {
		return 0
	}
	removed := int64(0)
	for e := l.root.next; e != l.root; {
		next := e.next
		if fn(e.Value) {
			l.unlink(e)
			removed++
		}
		e = next
	}
	return removed
}

func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if fn == nil {
		return
	}
	idx := int64(0)
	for e := l.root.prev; e != l.root; idx++ {
		prev := e.prev
		fn(idx, e)
		e = prev
	}
}

func (l *doublyLinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.root.next; e != l.root; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (l *doublyLinkedList[T]) Clear() {
	for e := l.root.next; e != l.root; {
		next := e.next
		e.prev, e.next = nil, nil
		e = next
	}
	l.init()
}
