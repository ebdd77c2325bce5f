package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vertexDist struct {
	vertex int
	dist   int64
}

func TestPriorityQueue_MinValueAsHighPriority(t *testing.T) {
	pq := NewArrayPriorityQueue[int](
		WithArrayPriorityQueueCapacity[int](32),
	)
	for v, pri := range []int64{1, 101, 10, 200, 3, 1, 5} {
		pq.Push(NewPriorityQueueItem[int](v, pri))
	}
	require.Equal(t, int64(7), pq.Len())

	expectedPriorities := []int64{1, 1, 3, 5, 10, 101, 200}
	for i, priority := range expectedPriorities {
		item := pq.Pop()
		assert.Equal(t, priority, item.Priority(), "priority", i)
		assert.Equal(t, int64(-1), item.Index())
	}
	require.Nil(t, pq.Pop())
	require.Equal(t, int64(0), pq.Len())
}

func TestPriorityQueue_MaxValueAsHighPriority(t *testing.T) {
	pq := NewArrayPriorityQueue[vertexDist](
		WithArrayPriorityQueueComparator[vertexDist](func(i, j ReadOnlyPQItem[vertexDist]) CmpEnum {
			return MinPriorityComparator[vertexDist](j, i)
		}),
	)
	for v, pri := range []int64{1, 101, 10, 200, 3, 1, 5, 201} {
		pq.Push(NewPriorityQueueItem[vertexDist](vertexDist{vertex: v, dist: pri}, pri))
	}

	expectedPriorities := []int64{201, 200, 101, 10, 5, 3, 1, 1}
	for i, priority := range expectedPriorities {
		item := pq.Pop()
		assert.Equal(t, priority, item.Priority(), "priority", i)
		assert.Equal(t, priority, item.Value().dist)
	}
}

func TestPriorityQueue_NilItem(t *testing.T) {
	pq := NewArrayPriorityQueue[int]()
	pq.Push(nil)
	require.Equal(t, int64(0), pq.Len())

	var item *pqItem[int]
	require.Equal(t, int64(-1), item.Index())
	require.Equal(t, int64(-1), item.Priority())
	require.Equal(t, 0, item.Value())
	item.SetIndex(1)
	item.SetPriority(1)
}

func BenchmarkArrayPriorityQueue_PushPop(b *testing.B) {
	pq := NewArrayPriorityQueue[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq.Push(NewPriorityQueueItem[int](i, int64(b.N-i)))
	}
	for i := 0; i < b.N; i++ {
		_ = pq.Pop()
	}
}
