package main

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/internal/config"
	"github.com/katalvlaran/spantree/internal/logger"
	"github.com/katalvlaran/spantree/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// These variables are set using -ldflags
var (
	version = "dev"
	commit  string
)

const flagConfig = "config"

func newRootCmd() *cobra.Command {
	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:           "spantree",
		Short:         "Minimum spanning trees and next-best rankings",
		Version:       buildDetails(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flagConfig, "", "path to a config file (yaml, json or toml)")
	pf.Bool(config.KeyLogJSON, config.Defaults.LogJSON, "emit logs as JSON")
	pf.String(config.KeyLogLevel, config.Defaults.LogLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(rankCmd())
	rootCmd.AddCommand(mstCmd())

	return rootCmd
}

func buildDetails() string {
	if commit == "" {
		return version
	}

	return fmt.Sprintf("%s (%s)", version, commit)
}

// addInputFlags registers the flags shared by every subcommand.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(config.KeyInput, "i", "", "adjacency matrix file")
	cmd.Flags().IntP(config.KeyRoot, "r", config.Defaults.Root, "root vertex for Prim")
}

// setup resolves configuration and the logger for cmd once its flags are parsed.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cpath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	conf, err := config.Load(cpath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(conf.LogJSON, conf.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return conf, log, nil
}

// loadGraph reads the matrix at path. It warns when the matrix is not
// symmetric, since only its lower triangle is used, and when the graph
// splits into several components.
func loadGraph(path string, log *zap.Logger) (*core.Graph, error) {
	adj, err := matrix.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug("matrix loaded", zap.String("path", path), zap.Int("vertices", adj.Order()))

	if pairs := adj.Asymmetries(); len(pairs) > 0 {
		log.Warn("matrix is not symmetric, using lower triangle",
			zap.Int("pairs", len(pairs)),
			zap.Ints("first", pairs[0][:]))
	}

	g, err := adj.Graph()
	if err != nil {
		return nil, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		sizes := make([]int, len(comps))
		for i, c := range comps {
			sizes[i] = len(c)
		}
		log.Warn("graph is disconnected, no spanning tree exists",
			zap.Int("components", len(comps)),
			zap.Ints("sizes", sizes))
	}

	return g, nil
}
