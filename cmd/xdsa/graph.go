package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/graph"
	"github.com/benz9527/xdsa/lib/infra"
)

const demoGraphOrder = 6

// The demo graphs are a ring 0-1-2-3-4-5-0.
var demoWeightedEdges = []graph.Edge{
	{V: 0, W: 1, Weight: 4},
	{V: 1, W: 2, Weight: 3},
	{V: 2, W: 3, Weight: 2},
	{V: 3, W: 4, Weight: 6},
	{V: 4, W: 5, Weight: 5},
	{V: 5, W: 0, Weight: 7},
}

func printGraph(a *app, title string, g graph.Graph) {
	fmt.Fprintf(a.out, "%s:\n%s\n", title, g.String())
	for _, line := range g.Art() {
		fmt.Fprintln(a.out, line)
	}
}

func printGraphTraversals(a *app, g graph.Graph, start int) {
	fmt.Fprintf(a.out, "DFS (iterative) from %d: %s\n", start, joinKeys(g.DFS(start)))
	fmt.Fprintf(a.out, "DFS (recursive) from %d: %s\n", start, joinKeys(g.DFSRecursive(start)))
	fmt.Fprintf(a.out, "BFS (iterative) from %d: %s\n", start, joinKeys(g.BFS(start)))
	fmt.Fprintf(a.out, "BFS (recursive) from %d: %s\n", start, joinKeys(g.BFSRecursive(start)))
}

func printShortestPaths(a *app, g *graph.WeightedGraph, src int) error {
	dist, err := g.ShortestPaths(src)
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(dist))
	for v, d := range dist {
		if d == graph.Unreachable {
			parts = append(parts, fmt.Sprintf("%d:-", v))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d:%d", v, d))
	}
	fmt.Fprintf(a.out, "Shortest paths from %d: %s\n", src, strings.Join(parts, " "))
	return nil
}

// demoGraph traverses, then removes the edge 2-3 and the vertex 3.
func demoGraph(a *app, g graph.Graph, afterEach func() error) error {
	printGraphTraversals(a, g, 0)
	printGraph(a, "Graph adjacency list", g)
	if err := afterEach(); err != nil {
		return err
	}

	if err := g.RemoveEdge(2, 3); err != nil {
		return err
	}
	a.logger.Debug("edge removed", zap.Int("v", 2), zap.Int("w", 3))
	printGraph(a, "Graph after removing edge 2 -> 3", g)
	if err := afterEach(); err != nil {
		return err
	}

	if err := g.RemoveVertex(3); err != nil {
		return err
	}
	a.logger.Debug("vertex removed", zap.Int("v", 3))
	printGraph(a, "Graph after removing vertex 3", g)
	printGraphTraversals(a, g, 0)
	return afterEach()
}

func init() {
	subcommands = append(subcommands, func(a *app) *cobra.Command {
		return &cobra.Command{
			Use:       "graph {undirected|weighted}",
			Short:     "Replay the six vertex ring graph demo",
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{"undirected", "weighted"},
			RunE: func(_ *cobra.Command, args []string) error {
				switch args[0] {
				case "undirected":
					g := graph.NewUndirectedGraph(demoGraphOrder)
					pairs := make([][2]int, 0, len(demoWeightedEdges))
					for _, e := range demoWeightedEdges {
						pairs = append(pairs, [2]int{e.V, e.W})
					}
					if err := g.AddEdges(pairs...); err != nil {
						return err
					}
					a.logger.Info("graph built", zap.String("kind", args[0]), zap.Int("order", g.Order()))
					return demoGraph(a, g, func() error { return nil })
				case "weighted":
					g := graph.NewWeightedGraph(demoGraphOrder)
					if err := g.AddEdges(demoWeightedEdges...); err != nil {
						return err
					}
					a.logger.Info("graph built", zap.String("kind", args[0]), zap.Int("order", g.Order()))
					return demoGraph(a, g, func() error { return printShortestPaths(a, g, 0) })
				default:
				}
				return infra.WrapErrorStackWithMessage(ErrUnknownVariant, fmt.Sprintf("%q", args[0]))
			},
		}
	})
}
