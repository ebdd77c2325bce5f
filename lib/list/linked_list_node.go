package list

type NodeElement[T comparable] struct {
	prev, next *NodeElement[T]
	Value      T
}

func newNodeElement[T comparable](v T) *NodeElement[T] {
	return &NodeElement[T]{
		Value: v,
	}
}
