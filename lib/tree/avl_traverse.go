package tree

import "iter"

// Traversals read the tree lazily, mutating the tree while
// consuming a sequence is undefined.

func (tree *avlTree[K]) Traverse(order TraverseOrder) iter.Seq[K] {
	return func(yield func(K) bool) {
		if tree.root == nilHandle {
			return
		}
		switch order {
		case InOrder:
			tree.inorder(yield)
		case PreOrder, DFS:
			tree.dfs(yield)
		case PostOrder:
			tree.postorder(yield)
		case BFS:
			tree.bfs(yield)
		default:
		}
	}
}

func (tree *avlTree[K]) TraverseRecursive(order TraverseOrder) iter.Seq[K] {
	return func(yield func(K) bool) {
		if tree.root == nilHandle {
			return
		}
		switch order {
		case InOrder:
			tree.inorderRecursive(tree.root, yield)
		case PreOrder, DFS:
			tree.preorderRecursive(tree.root, yield)
		case PostOrder:
			tree.postorderRecursive(tree.root, yield)
		case BFS:
			tree.bfsRecursive([]handle{tree.root}, yield)
		default:
		}
	}
}

func (tree *avlTree[K]) inorder(yield func(K) bool) {
	stack := make([]handle, 0, tree.Height())
	defer func() {
		clear(stack)
	}()

	for x := tree.root; x != nilHandle || len(stack) > 0; {
		for ; x != nilHandle; x = tree.nodes[x].left {
			stack = append(stack, x)
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(tree.nodes[x].key) {
			return
		}
		x = tree.nodes[x].right
	}
}

// Stack based DFS, push right before left so the left subtree
// is processed first.
func (tree *avlTree[K]) dfs(yield func(K) bool) {
	stack := make([]handle, 0, tree.Height()+1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, tree.root)

	for size := len(stack); size > 0; size = len(stack) {
		x := stack[size-1]
		stack = stack[:size-1]
		if !yield(tree.nodes[x].key) {
			return
		}
		if r := tree.nodes[x].right; r != nilHandle {
			stack = append(stack, r)
		}
		if l := tree.nodes[x].left; l != nilHandle {
			stack = append(stack, l)
		}
	}
}

func (tree *avlTree[K]) postorder(yield func(K) bool) {
	stack := make([]handle, 0, tree.Height())
	defer func() {
		clear(stack)
	}()

	lastVisited := nilHandle
	for x := tree.root; x != nilHandle || len(stack) > 0; {
		if x != nilHandle {
			stack = append(stack, x)
			x = tree.nodes[x].left
			continue
		}
		top := stack[len(stack)-1]
		if r := tree.nodes[top].right; r != nilHandle && r != lastVisited {
			x = r
			continue
		}
		if !yield(tree.nodes[top].key) {
			return
		}
		lastVisited = top
		stack = stack[:len(stack)-1]
	}
}

// Strict FIFO from the root.
func (tree *avlTree[K]) bfs(yield func(K) bool) {
	queue := make([]handle, 0, tree.count)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, tree.root)

	for head := 0; head < len(queue); head++ {
		x := queue[head]
		if !yield(tree.nodes[x].key) {
			return
		}
		if l := tree.nodes[x].left; l != nilHandle {
			queue = append(queue, l)
		}
		if r := tree.nodes[x].right; r != nilHandle {
			queue = append(queue, r)
		}
	}
}

func (tree *avlTree[K]) inorderRecursive(x handle, yield func(K) bool) bool {
	if x == nilHandle {
		return true
	}
	return tree.inorderRecursive(tree.nodes[x].left, yield) &&
		yield(tree.nodes[x].key) &&
		tree.inorderRecursive(tree.nodes[x].right, yield)
}

func (tree *avlTree[K]) preorderRecursive(x handle, yield func(K) bool) bool {
	if x == nilHandle {
		return true
	}
	return yield(tree.nodes[x].key) &&
		tree.preorderRecursive(tree.nodes[x].left, yield) &&
		tree.preorderRecursive(tree.nodes[x].right, yield)
}

func (tree *avlTree[K]) postorderRecursive(x handle, yield func(K) bool) bool {
	if x == nilHandle {
		return true
	}
	return tree.postorderRecursive(tree.nodes[x].left, yield) &&
		tree.postorderRecursive(tree.nodes[x].right, yield) &&
		yield(tree.nodes[x].key)
}

// bfsRecursive consumes the queue head, enqueues its children,
// then recurses on the rest of the queue.
func (tree *avlTree[K]) bfsRecursive(queue []handle, yield func(K) bool) bool {
	if len(queue) == 0 {
		return true
	}
	x := queue[0]
	if !yield(tree.nodes[x].key) {
		return false
	}
	queue = queue[1:]
	if l := tree.nodes[x].left; l != nilHandle {
		queue = append(queue, l)
	}
	if r := tree.nodes[x].right; r != nilHandle {
		queue = append(queue, r)
	}
	return tree.bfsRecursive(queue, yield)
}
