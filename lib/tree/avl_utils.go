package tree

import (
	"errors"

	"github.com/benz9527/xdsa/lib/infra"
)

// avltree rule validation utilities.
// They walk the read-only node views only, so any AVLTree
// implementation can be checked.

var (
	ErrOrderViolation   = errors.New("[avltree] bst order violation")
	ErrBalanceViolation = errors.New("[avltree] balance violation")
	ErrHeightViolation  = errors.New("[avltree] cached height violation")
)

// Inorder traversal to validate every key strictly follows its
// predecessor under the tree comparator.
func OrderViolationValidate[K infra.OrderedKey](tree AVLTree[K]) error {
	aux := tree.Root()
	if aux == nil {
		return nil
	}
	cmp := infra.AscCompare[K]
	if tree.IsDesc() {
		cmp = infra.DescCompare[K]
	}

	stack := make([]Node[K], 0, tree.Height())
	defer func() {
		clear(stack)
	}()

	var (
		prev    K
		hasPrev bool
	)
	for aux != nil || len(stack) > 0 {
		for ; aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if hasPrev && cmp(prev, aux.Key()) >= 0 {
			return infra.WrapErrorStack(ErrOrderViolation)
		}
		prev, hasPrev = aux.Key(), true
		aux = aux.Right()
	}
	return nil
}

/*
Every node satisfies |height(left) - height(right)| <= 1.

	    [30]  bf = 2 - 0 = 2, violation
	    /
	  [20]
	  /
	[10]
*/
func BalanceViolationValidate[K infra.OrderedKey](tree AVLTree[K]) error {
	if _, err := measure[K](tree.Root(), func(node Node[K], lh, rh int) error {
		if diff := lh - rh; diff > 1 || diff < -1 {
			return infra.WrapErrorStack(ErrBalanceViolation)
		}
		return nil
	}); err != nil {
		return err
	}
	return nil
}

// The cached height of each node equals 1 + max(height(left), height(right)).
func HeightViolationValidate[K infra.OrderedKey](tree AVLTree[K]) error {
	if _, err := measure[K](tree.Root(), func(node Node[K], lh, rh int) error {
		if node.Height() != 1+max(lh, rh) {
			return infra.WrapErrorStack(ErrHeightViolation)
		}
		return nil
	}); err != nil {
		return err
	}
	return nil
}

// measure computes the real subtree heights in post order and
// reports them to check on the way up.
func measure[K infra.OrderedKey](node Node[K], check func(node Node[K], lh, rh int) error) (int, error) {
	if node == nil {
		return 0, nil
	}
	lh, err := measure[K](node.Left(), check)
	if err != nil {
		return 0, err
	}
	rh, err := measure[K](node.Right(), check)
	if err != nil {
		return 0, err
	}
	if err = check(node, lh, rh); err != nil {
		return 0, err
	}
	return 1 + max(lh, rh), nil
}
