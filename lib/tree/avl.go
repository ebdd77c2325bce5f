package tree

import (
	"slices"

	"github.com/benz9527/xdsa/lib/infra"
)

// handle indexes a node in the tree arena.
type handle int32

const nilHandle handle = -1

type avlNode[K infra.OrderedKey] struct {
	key    K
	left   handle
	right  handle
	height int32
}

// nodeRef is the read-only view of an arena slot.
type nodeRef[K infra.OrderedKey] struct {
	tree *avlTree[K]
	h    handle
}

func (ref nodeRef[K]) Key() K {
	return ref.tree.nodes[ref.h].key
}

func (ref nodeRef[K]) Height() int {
	return int(ref.tree.nodes[ref.h].height)
}

func (ref nodeRef[K]) Left() Node[K] {
	return ref.tree.view(ref.tree.nodes[ref.h].left)
}

func (ref nodeRef[K]) Right() Node[K] {
	return ref.tree.view(ref.tree.nodes[ref.h].right)
}

var _ AVLTree[int] = (*avlTree[int])(nil) // Type check assertion

// avlTree keeps all nodes in one arena. Rotations only swap
// handles, a removed slot is recycled by the next insertion.
type avlTree[K infra.OrderedKey] struct {
	nodes               []avlNode[K]
	free                []handle
	root                handle
	count               int64
	cmp                 infra.OrderedKeyComparator[K]
	isDesc              bool
	isRmBorrowPred      bool
	isRebalanceDisabled bool
	// rotation counters, read by tests.
	leftRotations  int64
	rightRotations int64
}

func (tree *avlTree[K]) view(h handle) Node[K] {
	if h == nilHandle {
		return nil
	}
	return nodeRef[K]{tree: tree, h: h}
}

func (tree *avlTree[K]) alloc(key K) handle {
	n := avlNode[K]{
		key:    key,
		left:   nilHandle,
		right:  nilHandle,
		height: 1,
	}
	if size := len(tree.free); size > 0 {
		h := tree.free[size-1]
		tree.free = tree.free[:size-1]
		tree.nodes[h] = n
		return h
	}
	tree.nodes = append(tree.nodes, n)
	return handle(len(tree.nodes) - 1)
}

func (tree *avlTree[K]) dealloc(h handle) {
	tree.nodes[h] = avlNode[K]{left: nilHandle, right: nilHandle}
	tree.free = append(tree.free, h)
}

func (tree *avlTree[K]) height(h handle) int32 {
	if h == nilHandle {
		return 0
	}
	return tree.nodes[h].height
}

func (tree *avlTree[K]) updateHeight(h handle) {
	n := &tree.nodes[h]
	n.height = 1 + max(tree.height(n.left), tree.height(n.right))
}

func (tree *avlTree[K]) balanceFactor(h handle) int32 {
	if h == nilHandle {
		return 0
	}
	return tree.height(tree.nodes[h].left) - tree.height(tree.nodes[h].right)
}

func (tree *avlTree[K]) Len() int64 {
	return tree.count
}

func (tree *avlTree[K]) Height() int {
	return int(tree.height(tree.root))
}

func (tree *avlTree[K]) IsDesc() bool {
	return tree.isDesc
}

func (tree *avlTree[K]) Root() Node[K] {
	return tree.view(tree.root)
}

/*
		 |                         |
		 X                         Y
		/ \     rotateLeft(X)     / \
	   L   Y    ============>    X   Yr
		  / \                   / \
		Yl   Yr                L   Yl
*/
func (tree *avlTree[K]) rotateLeft(x handle) handle {
	y := tree.nodes[x].right
	if y == nilHandle {
		// impossible run to here
		panic( /* debug assertion */ "[avltree] left rotate node x.right is nil")
	}
	tree.nodes[x].right = tree.nodes[y].left
	tree.nodes[y].left = x
	// x is the child now, it must be fresh before y.
	tree.updateHeight(x)
	tree.updateHeight(y)
	tree.leftRotations++
	return y
}

/*
			 |                         |
			 Y                         X
			/ \     rotateRight(Y)    / \
		   X   R    ============>    Xl  Y
		  / \                           / \
		Xl   Xr                       Xr   R
*/
func (tree *avlTree[K]) rotateRight(y handle) handle {
	x := tree.nodes[y].left
	if x == nilHandle {
		// impossible run to here
		panic( /* debug assertion */ "[avltree] right rotate node y.left is nil")
	}
	tree.nodes[y].left = tree.nodes[x].right
	tree.nodes[x].right = y
	tree.updateHeight(y)
	tree.updateHeight(x)
	tree.rightRotations++
	return x
}

/*
i1 (LL): bf > 1 and key < left.key, rotateRight(X).
i2 (RR): bf < -1 and key > right.key, rotateLeft(X).
i3 (LR): bf > 1 and key > left.key, rotateLeft(X.left) then rotateRight(X).
i4 (RL): bf < -1 and key < right.key, rotateRight(X.right) then rotateLeft(X).
*/
func (tree *avlTree[K]) insertRebalance(x handle, key K) handle {
	tree.updateHeight(x)
	if tree.isRebalanceDisabled {
		return x
	}

	bf := tree.balanceFactor(x)
	l, r := tree.nodes[x].left, tree.nodes[x].right
	switch {
	case /* i1 */ bf > 1 && tree.cmp(key, tree.nodes[l].key) < 0:
		return tree.rotateRight(x)
	case /* i2 */ bf < -1 && tree.cmp(key, tree.nodes[r].key) > 0:
		return tree.rotateLeft(x)
	case /* i3 */ bf > 1 && tree.cmp(key, tree.nodes[l].key) > 0:
		tree.nodes[x].left = tree.rotateLeft(l)
		return tree.rotateRight(x)
	case /* i4 */ bf < -1 && tree.cmp(key, tree.nodes[r].key) < 0:
		tree.nodes[x].right = tree.rotateRight(r)
		return tree.rotateLeft(x)
	default:
	}
	return x
}

/*
There is no inserted key after a removal, so the rotation case
is selected by the heavier child's own balance factor.

rm1: bf > 1 and bf(left) >= 0, rotateRight(X).
rm2: bf > 1 and bf(left) < 0, rotateLeft(X.left) then rotateRight(X).
rm3: bf < -1 and bf(right) <= 0, rotateLeft(X).
rm4: bf < -1 and bf(right) > 0, rotateRight(X.right) then rotateLeft(X).
*/
func (tree *avlTree[K]) removeRebalance(x handle) handle {
	tree.updateHeight(x)
	if tree.isRebalanceDisabled {
		return x
	}

	bf := tree.balanceFactor(x)
	l, r := tree.nodes[x].left, tree.nodes[x].right
	switch {
	case bf > 1:
		if /* rm2 */ tree.balanceFactor(l) < 0 {
			tree.nodes[x].left = tree.rotateLeft(l)
		}
		return /* rm1 */ tree.rotateRight(x)
	case bf < -1:
		if /* rm4 */ tree.balanceFactor(r) > 0 {
			tree.nodes[x].right = tree.rotateRight(r)
		}
		return /* rm3 */ tree.rotateLeft(x)
	default:
	}
	return x
}

// retrace walks the search path bottom-up. fix may return a new
// subtree root, which is linked back into its parent.
func (tree *avlTree[K]) retrace(path []handle, fix func(handle) handle) {
	for i := len(path) - 1; i >= 0; i-- {
		x := path[i]
		sub := fix(x)
		if sub == x {
			continue
		}
		if i == 0 {
			tree.root = sub
			continue
		}
		p := path[i-1]
		if tree.nodes[p].left == x {
			tree.nodes[p].left = sub
		} else {
			tree.nodes[p].right = sub
		}
	}
}

func (tree *avlTree[K]) Insert(key K) bool {
	if tree.root == nilHandle {
		tree.root = tree.alloc(key)
		tree.count++
		return true
	}

	path := make([]handle, 0, tree.Height()+1)
	for x := tree.root; x != nilHandle; {
		res := tree.cmp(key, tree.nodes[x].key)
		if /* duplicated */ res == 0 {
			return false
		}
		path = append(path, x)
		if res < 0 {
			x = tree.nodes[x].left
		} else {
			x = tree.nodes[x].right
		}
	}

	// The arena may grow here, do not keep node pointers across alloc.
	z := tree.alloc(key)
	if p := path[len(path)-1]; tree.cmp(key, tree.nodes[p].key) < 0 {
		tree.nodes[p].left = z
	} else {
		tree.nodes[p].right = z
	}
	tree.count++

	tree.retrace(path, func(x handle) handle {
		return tree.insertRebalance(x, key)
	})
	return true
}

/*
r1: Z has at most one child, the child (or nil) replaces Z.

r2: Z has two children. Borrow the in-order successor S (or the
predecessor with WithAVLTreeRemoveBorrowPred). Only the key is copied
into Z, then S is unlinked as in r1. S never has two children.

	  |                    |
	  Z                    S
	 / \                  / \
	L   R   swap(Z, S)   L   R
	   /    =========>      /
	  S                    Z  <- unlink
	   \                    \
	    Sr                   Sr
*/
func (tree *avlTree[K]) Delete(key K) bool {
	path := make([]handle, 0, tree.Height()+1)
	z := tree.root
	for z != nilHandle {
		res := tree.cmp(key, tree.nodes[z].key)
		if res == 0 {
			break
		}
		path = append(path, z)
		if res < 0 {
			z = tree.nodes[z].left
		} else {
			z = tree.nodes[z].right
		}
	}
	if /* not found */ z == nilHandle {
		return false
	}

	y := z
	if /* r2 */ tree.nodes[z].left != nilHandle && tree.nodes[z].right != nilHandle {
		path = append(path, z)
		if tree.isRmBorrowPred {
			for y = tree.nodes[z].left; tree.nodes[y].right != nilHandle; y = tree.nodes[y].right {
				path = append(path, y)
			}
		} else {
			for y = tree.nodes[z].right; tree.nodes[y].left != nilHandle; y = tree.nodes[y].left {
				path = append(path, y)
			}
		}
		tree.nodes[z].key = tree.nodes[y].key
	}

	// r1
	child := tree.nodes[y].left
	if child == nilHandle {
		child = tree.nodes[y].right
	}
	if len(path) == 0 {
		tree.root = child
	} else if p := path[len(path)-1]; tree.nodes[p].left == y {
		tree.nodes[p].left = child
	} else {
		tree.nodes[p].right = child
	}
	tree.dealloc(y)
	tree.count--

	tree.retrace(path, tree.removeRebalance)
	return true
}

func (tree *avlTree[K]) search(key K) handle {
	for x := tree.root; x != nilHandle; {
		res := tree.cmp(key, tree.nodes[x].key)
		if res == 0 {
			return x
		} else if res < 0 {
			x = tree.nodes[x].left
		} else {
			x = tree.nodes[x].right
		}
	}
	return nilHandle
}

func (tree *avlTree[K]) Contains(key K) bool {
	return tree.search(key) != nilHandle
}

func (tree *avlTree[K]) First() (key K, ok bool) {
	x := tree.root
	if x == nilHandle {
		return key, false
	}
	for ; tree.nodes[x].left != nilHandle; x = tree.nodes[x].left {
	}
	return tree.nodes[x].key, true
}

func (tree *avlTree[K]) Last() (key K, ok bool) {
	x := tree.root
	if x == nilHandle {
		return key, false
	}
	for ; tree.nodes[x].right != nilHandle; x = tree.nodes[x].right {
	}
	return tree.nodes[x].key, true
}

// Release drops the whole arena at once, nodes hold no outer references.
func (tree *avlTree[K]) Release() {
	clear(tree.nodes)
	tree.nodes = nil
	tree.free = nil
	tree.root = nilHandle
	tree.count = 0
}

// Rebuild reshapes the tree into a height balanced one from its
// in-order keys. Each subtree root is the middle key of its range.
// The arena is compacted, existing node views become invalid.
func (tree *avlTree[K]) Rebuild() {
	if tree.count <= 2 {
		return
	}
	keys := slices.Collect(tree.Traverse(InOrder))
	clear(tree.nodes)
	tree.nodes = tree.nodes[:0]
	tree.free = tree.free[:0]
	tree.root = tree.build(keys)
}

func (tree *avlTree[K]) build(keys []K) handle {
	if len(keys) == 0 {
		return nilHandle
	}
	mid := (len(keys) - 1) / 2
	x := tree.alloc(keys[mid])
	l := tree.build(keys[:mid])
	r := tree.build(keys[mid+1:])
	tree.nodes[x].left, tree.nodes[x].right = l, r
	tree.updateHeight(x)
	return x
}

type AVLTreeOpt[K infra.OrderedKey] func(*avlTree[K])

func WithAVLTreeDesc[K infra.OrderedKey]() AVLTreeOpt[K] {
	return func(tree *avlTree[K]) {
		tree.isDesc = true
	}
}

func WithAVLTreeRemoveBorrowPred[K infra.OrderedKey]() AVLTreeOpt[K] {
	return func(tree *avlTree[K]) {
		tree.isRmBorrowPred = true
	}
}

// WithAVLTreeRebalanceDisabled turns the tree into a plain BST.
// The shape then depends on the insertion order only.
func WithAVLTreeRebalanceDisabled[K infra.OrderedKey]() AVLTreeOpt[K] {
	return func(tree *avlTree[K]) {
		tree.isRebalanceDisabled = true
	}
}

func NewAVLTree[K infra.OrderedKey](opts ...AVLTreeOpt[K]) AVLTree[K] {
	return newAVLTree[K](opts...)
}

func newAVLTree[K infra.OrderedKey](opts ...AVLTreeOpt[K]) *avlTree[K] {
	tree := &avlTree[K]{
		root: nilHandle,
	}
	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	if tree.isDesc {
		tree.cmp = infra.DescCompare[K]
	} else {
		tree.cmp = infra.AscCompare[K]
	}
	return tree
}
