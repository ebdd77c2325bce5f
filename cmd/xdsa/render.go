package main

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/tree"
	"github.com/benz9527/xdsa/lib/treeprint"
)

var ErrTreeTooTall = treeprint.ErrTreeTooTall

func joinKeys[K any](seq iter.Seq[K]) string {
	return strings.Join(lo.Map(slices.Collect(seq), func(key K, _ int) string {
		return fmt.Sprint(key)
	}), " ")
}

func renderTree[K infra.OrderedKey](a *app, title string, t tree.AVLTree[K]) error {
	fmt.Fprintf(a.out, "%s:\n", title)
	if h := t.Height(); h > a.maxRenderHeight {
		err := infra.WrapErrorStackWithMessage(ErrTreeTooTall,
			fmt.Sprintf("height %d, max %d", h, a.maxRenderHeight))
		a.logger.ErrorStack(err, "render refused", zap.Int("height", h))
		return err
	}
	if err := treeprint.Fprint[K](a.out, t.Root()); err != nil {
		return err
	}
	a.logger.Debug("tree rendered",
		zap.Int64("nodes", t.Len()),
		zap.Int("height", t.Height()),
	)
	if a.spew {
		cfg := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		cfg.Fdump(a.out, treeprint.Snap[K](t.Root()))
	}
	return nil
}

func printTraversals[K infra.OrderedKey](a *app, t tree.AVLTree[K]) {
	for _, order := range tree.TraverseOrders() {
		fmt.Fprintf(a.out, "%-9s iterative: %s\n", order, joinKeys(t.Traverse(order)))
		fmt.Fprintf(a.out, "%-9s recursive: %s\n", order, joinKeys(t.TraverseRecursive(order)))
	}
}

// demoTree prints the tree, its traversals, then every deletion
// followed by a new render.
func demoTree[K infra.OrderedKey](a *app, name string, t tree.AVLTree[K], deletes ...K) error {
	if err := renderTree(a, name, t); err != nil {
		return err
	}
	printTraversals(a, t)
	for _, key := range deletes {
		if !t.Delete(key) {
			a.logger.Warn("key not found", zap.Any("key", key))
			continue
		}
		if err := renderTree(a, fmt.Sprintf("%s after deleting %v", name, key), t); err != nil {
			return err
		}
		printTraversals(a, t)
	}
	return nil
}
