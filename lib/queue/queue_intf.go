// Reference:
// https://github.com/nsqio/nsq/blob/master/internal/pqueue/pqueue.go

package queue

// PriorityQueue pops the item that the comparator ranks first.
// By default, the smaller priority value pops first.
type PriorityQueue[E comparable] interface {
	Len() int64
	Push(item PQItem[E])
	// Pop returns nil if the queue is empty.
	Pop() ReadOnlyPQItem[E]
}

type ReadOnlyPQItem[E comparable] interface {
	Index() int64
	Value() E
	Priority() int64
}

type CmpEnum int64

const (
	iLTj CmpEnum = -1 + iota
	iEQj
	iGTj
)

// PQItemLessThenComparator
// Priority queue item comparator
// if return 1, i > j
// if return 0, i == j
// if return -1, i < j
type PQItemLessThenComparator[E comparable] func(i, j ReadOnlyPQItem[E]) CmpEnum

type PQItem[E comparable] interface {
	ReadOnlyPQItem[E]
	SetIndex(idx int64)
	SetPriority(pri int64)
}

// MinPriorityComparator ranks the smaller priority first.
func MinPriorityComparator[E comparable](i, j ReadOnlyPQItem[E]) CmpEnum {
	res := i.Priority() - j.Priority()
	if res > 0 {
		return iGTj
	} else if res < 0 {
		return iLTj
	}
	return iEQj
}
