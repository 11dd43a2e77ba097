package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/internal/config"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func mstCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "mst",
		Short: "Print one minimum spanning tree",
		Args:  cobra.NoArgs,
		RunE:  cmdMST,
	}
	addInputFlags(c)
	c.Flags().StringP(config.KeyMethod, "m", config.Defaults.Method, "algorithm: prim or kruskal")

	return c
}

func cmdMST(cmd *cobra.Command, _ []string) error {
	conf, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := loadGraph(conf.Input, log)
	if err != nil {
		return err
	}

	tree, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: conf.Method, Root: conf.Root})
	if err != nil {
		return err
	}
	log.Debug("mst computed", zap.String("method", conf.Method), zap.Int64("weight", tree.Weight))

	var b strings.Builder
	fmt.Fprintf(&b, "%s: weight %d\n", conf.Method, tree.Weight)
	writeEdges(&b, tree.Edges, tree.Root >= 0)
	_, err = io.WriteString(cmd.OutOrStdout(), b.String())

	return err
}

// writeEdges prints one "parent - child" line per tree edge. Unrooted trees
// (Kruskal) print "u - v" with u < v instead.
func writeEdges(b *strings.Builder, edges []core.Edge, rooted bool) {
	for _, e := range edges {
		if rooted {
			fmt.Fprintf(b, "%d - %d\n", e.To, e.From)
			continue
		}
		fmt.Fprintf(b, "%d - %d\n", e.From, e.To)
	}
}
