package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/tree"
)

var ErrUnknownVariant = errors.New("[xdsa] unknown variant")

type bstVariant struct {
	keys []int
	del  int
}

// The insertion orders produce the named shape with a plain BST insert.
var bstVariants = map[string]bstVariant{
	"balanced":   {keys: []int{4, 2, 6, 1, 3, 5, 7}, del: 3},
	"complete":   {keys: []int{4, 2, 6, 1, 3, 5}, del: 3},
	"degenerate": {keys: []int{1, 2, 3, 4, 5}, del: 3},
	"full":       {keys: []int{10, 5, 20, 3, 7, 15, 25}, del: 20},
	"perfect":    {keys: []int{40, 20, 60, 10, 30, 50, 70}, del: 30},
	"unbalanced": {keys: []int{10, 5, 15, 8, 20, 25}, del: 15},
}

func bstVariantNames() []string {
	names := lo.Keys(bstVariants)
	sort.Strings(names)
	return names
}

func init() {
	subcommands = append(subcommands, func(a *app) *cobra.Command {
		var rebuild bool
		cmd := &cobra.Command{
			Use:       "bst VARIANT",
			Short:     "Build one of the unbalanced binary search tree demos",
			Args:      cobra.ExactArgs(1),
			ValidArgs: bstVariantNames(),
			RunE: func(_ *cobra.Command, args []string) error {
				variant, ok := bstVariants[args[0]]
				if !ok {
					return infra.WrapErrorStackWithMessage(ErrUnknownVariant,
						fmt.Sprintf("%q, want one of %v", args[0], bstVariantNames()))
				}
				t := tree.NewAVLTree[int](tree.WithAVLTreeRebalanceDisabled[int]())
				for _, key := range variant.keys {
					t.Insert(key)
				}
				a.logger.Info("bst built",
					zap.String("variant", args[0]),
					zap.Ints("keys", variant.keys),
				)
				name := args[0] + " tree"
				if err := demoTree(a, name, t, variant.del); err != nil {
					return err
				}
				if !rebuild {
					return nil
				}
				before := t.Height()
				t.Rebuild()
				a.logger.Info("bst rebuilt", zap.Int("height", t.Height()), zap.Int("before", before))
				if err := renderTree(a, name+" rebuilt", t); err != nil {
					return err
				}
				printTraversals(a, t)
				return nil
			},
		}
		cmd.Flags().BoolVar(&rebuild, "rebuild", false, "rebuild a balanced tree from the in-order keys at the end")
		return cmd
	})
}
