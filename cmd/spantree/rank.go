package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spantree/internal/config"
	"github.com/katalvlaran/spantree/nextbest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func rankCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "rank",
		Short: "Rank spanning trees by distinct weight",
		Long: "Computes the MST and then, round after round, the cheapest tree obtained by " +
			"excluding one edge of the previous winner whose weight has not been seen yet.",
		Args: cobra.NoArgs,
		RunE: cmdRank,
	}
	addInputFlags(c)
	c.Flags().IntP(config.KeyRounds, "k", config.Defaults.Rounds, "number of rounds, MST included")

	return c
}

func cmdRank(cmd *cobra.Command, _ []string) error {
	conf, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := loadGraph(conf.Input, log)
	if err != nil {
		return err
	}

	s, err := nextbest.New(g,
		nextbest.WithRoot(conf.Root),
		nextbest.WithRounds(conf.Rounds),
		nextbest.WithLogger(log))
	if err != nil {
		return err
	}
	ranking, err := s.Run()
	if err != nil {
		return err
	}
	if ranking.Exhausted {
		log.Info("no further distinct-weight tree",
			zap.Int("requested", conf.Rounds),
			zap.Int("found", len(ranking.Rounds)))
	}

	return printRanking(cmd.OutOrStdout(), ranking, conf.Rounds)
}

func printRanking(w io.Writer, ranking nextbest.Ranking, requested int) error {
	var b strings.Builder
	for _, rd := range ranking.Rounds {
		fmt.Fprintf(&b, "round %d: weight %d\n", rd.Index, rd.Weight())
		if rd.Excluded != nil {
			fmt.Fprintf(&b, "excluded %d - %d\n", rd.Excluded.To, rd.Excluded.From)
		}
		writeEdges(&b, rd.Tree.Edges, true)
	}

	weights := ranking.Weights()
	parts := make([]string, len(weights))
	for i, wt := range weights {
		parts[i] = fmt.Sprint(wt)
	}
	fmt.Fprintf(&b, "weights: %s\n", strings.Join(parts, " "))
	if ranking.Exhausted {
		fmt.Fprintf(&b, "exhausted after %d of %d rounds\n", len(ranking.Rounds), requested)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
