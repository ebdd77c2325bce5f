package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/tree"
)

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	var merr error
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			merr = multierr.Append(merr, fmt.Errorf("invalid key %q: %w", arg, err))
			continue
		}
		keys = append(keys, key)
	}
	return keys, merr
}

func init() {
	subcommands = append(subcommands, func(a *app) *cobra.Command {
		var (
			deletes    []int
			desc       bool
			borrowPred bool
		)
		cmd := &cobra.Command{
			Use:   "avl [KEY...]",
			Short: "Insert the keys into an AVL tree, then delete some of them",
			Long: "Insert the keys into an AVL tree, then delete some of them.\n" +
				"Without keys the demo inserts 10 20 30 and deletes 20.",
			RunE: func(cmd *cobra.Command, args []string) error {
				keys, err := parseKeys(args)
				if err != nil {
					return err
				}
				if len(keys) == 0 {
					keys = []int{10, 20, 30}
					if !cmd.Flags().Changed("delete") {
						deletes = []int{20}
					}
				}

				opts := make([]tree.AVLTreeOpt[int], 0, 2)
				if desc {
					opts = append(opts, tree.WithAVLTreeDesc[int]())
				}
				if borrowPred {
					opts = append(opts, tree.WithAVLTreeRemoveBorrowPred[int]())
				}
				t := tree.NewAVLTree[int](opts...)
				for _, key := range keys {
					if !t.Insert(key) {
						a.logger.Warn("duplicated key ignored", zap.Int("key", key))
					}
				}
				a.logger.Info("avl built",
					zap.Int64("nodes", t.Len()),
					zap.Int("height", t.Height()),
					zap.Bool("desc", t.IsDesc()),
				)
				return demoTree(a, "avl tree", t, deletes...)
			},
		}
		cmd.Flags().IntSliceVar(&deletes, "delete", nil, "delete the `keys` after the insertions")
		cmd.Flags().BoolVar(&desc, "desc", false, "order the keys descending")
		cmd.Flags().BoolVar(&borrowPred, "borrow-pred", false, "replace a deleted inner node by its predecessor")
		return cmd
	})
}
