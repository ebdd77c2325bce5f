package queue

import (
	"container/heap"
)

type pqItem[E comparable] struct {
	priority int64
	index    int64
	value    E
}

func (item *pqItem[E]) Index() int64 {
	if item == nil {
		return -1
	}
	return item.index
}

func (item *pqItem[E]) Value() (val E) {
	if item == nil {
		// return empty value by default
		return
	}
	return item.value
}

func (item *pqItem[E]) Priority() int64 {
	if item == nil {
		return -1
	}
	return item.priority
}

func (item *pqItem[E]) SetIndex(idx int64) {
	if item == nil {
		return
	}
	item.index = idx
}

func (item *pqItem[E]) SetPriority(pri int64) {
	if item == nil {
		return
	}
	item.priority = pri
}

func NewPriorityQueueItem[E comparable](val E, pri int64) PQItem[E] {
	return &pqItem[E]{
		priority: pri,
		value:    val,
		index:    0,
	}
}

// arrayPQ implements the container/heap interface.
type arrayPQ[E comparable] struct {
	arr        []PQItem[E]
	comparator PQItemLessThenComparator[E]
}

func (pq *arrayPQ[E]) Len() int { return len(pq.arr) }
func (pq *arrayPQ[E]) Less(i, j int) bool {
	return pq.comparator(pq.arr[i], pq.arr[j]) == iLTj
}

func (pq *arrayPQ[E]) Swap(i, j int) {
	pq.arr[i], pq.arr[j] = pq.arr[j], pq.arr[i]
	pq.arr[i].SetIndex(int64(i))
	pq.arr[j].SetIndex(int64(j))
}

func (pq *arrayPQ[E]) Pop() any {
	n := len(pq.arr)
	if n <= 0 {
		return nil
	}
	item := pq.arr[n-1]
	item.SetIndex(-1)
	pq.arr[n-1] = nil
	pq.arr = pq.arr[:n-1]
	return item
}

func (pq *arrayPQ[E]) Push(i any) {
	item, ok := i.(PQItem[E])
	if !ok {
		return
	}
	item.SetIndex(int64(len(pq.arr)))
	pq.arr = append(pq.arr, item)
}

type ArrayPriorityQueue[E comparable] struct {
	queue    *arrayPQ[E]
	capacity int
}

func (pq *ArrayPriorityQueue[E]) Len() int64 {
	return int64(len(pq.queue.arr))
}

func (pq *ArrayPriorityQueue[E]) Pop() ReadOnlyPQItem[E] {
	if len(pq.queue.arr) == 0 {
		return nil
	}
	return heap.Pop(pq.queue).(ReadOnlyPQItem[E])
}

func (pq *ArrayPriorityQueue[E]) Push(item PQItem[E]) {
	if item == nil {
		return
	}
	heap.Push(pq.queue, item)
}

type ArrayPriorityQueueOption[E comparable] func(*ArrayPriorityQueue[E])

func NewArrayPriorityQueue[E comparable](opts ...ArrayPriorityQueueOption[E]) PriorityQueue[E] {
	pq := &ArrayPriorityQueue[E]{
		queue: new(arrayPQ[E]),
	}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}
	if pq.capacity <= 0 {
		pq.capacity = 64
	}
	if pq.queue.comparator == nil {
		pq.queue.comparator = MinPriorityComparator[E]
	}
	pq.queue.arr = make([]PQItem[E], 0, pq.capacity)
	return pq
}

func WithArrayPriorityQueueCapacity[E comparable](capacity int) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		pq.capacity = capacity
	}
}

func WithArrayPriorityQueueComparator[E comparable](fn PQItemLessThenComparator[E]) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		pq.queue.comparator = fn
	}
}
