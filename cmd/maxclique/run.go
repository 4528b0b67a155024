package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/maxclique/clique"
	"github.com/katalvlaran/maxclique/loader"
	"github.com/katalvlaran/maxclique/report"
	"github.com/katalvlaran/maxclique/seed"
)

var variantsByName = map[string]clique.Variant{
	"bk-basic":          clique.BKBasic,
	"tomita":            clique.Tomita,
	"degeneracy-tomita": clique.DegeneracyTomita,
	"ostergard":         clique.Ostergard,
	"bbmc":              clique.BBMC,
}

var allVariantNames = []string{"bk-basic", "tomita", "degeneracy-tomita", "ostergard", "bbmc"}

func runCmd() *cobra.Command {
	var (
		algos     []string
		csvPath   string
		timeout   time.Duration
		seedOnly  bool
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "run <graph-file>",
		Short: "Run one or more exact maximum-clique solvers on a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel, logFormat)
			if err != nil {
				return fmt.Errorf("maxclique: build logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			return runAlgorithms(cmd, logger, args[0], algos, csvPath, timeout, seedOnly)
		},
	}

	cmd.Flags().StringSliceVar(&algos, "algo", []string{"all"},
		"algorithm to run (repeatable): bk-basic, tomita, degeneracy-tomita, ostergard, bbmc, all")
	cmd.Flags().StringVar(&csvPath, "csv", "", "optional CSV output path")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-algorithm cancellation deadline (0 = no deadline)")
	cmd.Flags().BoolVar(&seedOnly, "seed-only", false, "run only the two seed producers and report their clique sizes")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "log format: json, console")

	return cmd
}

func resolveVariants(names []string) ([]clique.Variant, error) {
	expanded := names
	for _, n := range names {
		if n == "all" {
			expanded = allVariantNames
			break
		}
	}

	variants := make([]clique.Variant, 0, len(expanded))
	for _, n := range expanded {
		v, ok := variantsByName[n]
		if !ok {
			return nil, fmt.Errorf("maxclique: unknown algorithm %q", n)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func runAlgorithms(cmd *cobra.Command, logger *zap.Logger, path string, algoNames []string, csvPath string, timeout time.Duration, seedOnly bool) error {
	result, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("maxclique: load %q: %w", path, err)
	}
	g := result.Graph
	logger.Info("loaded graph",
		zap.String("path", path),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("ignored_self_loops", result.IgnoredSelfLoops),
		zap.Int("ignored_duplicates", result.IgnoredDuplicates),
	)

	if seedOnly {
		commonNeighbor := seed.Produce(g)
		degreeSorted := seed.GreedyDegreeClique(g)
		fmt.Fprintf(cmd.OutOrStdout(), "common-neighbor,%d,%v\n", len(commonNeighbor), g.IsClique(commonNeighbor))
		fmt.Fprintf(cmd.OutOrStdout(), "greedy-degree,%d,%v\n", len(degreeSorted), g.IsClique(degreeSorted))
		return nil
	}

	variants, err := resolveVariants(algoNames)
	if err != nil {
		return err
	}

	var csvWriter *report.Writer
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("maxclique: create %q: %w", csvPath, err)
		}
		defer f.Close()
		csvWriter = report.NewWriter(f)
	}

	dataset := path
	for _, v := range variants {
		ctx := context.Background()
		var cancel context.CancelFunc
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
		}

		start := time.Now()
		res, err := clique.FindMaximumClique(g, v, clique.Options{Ctx: ctx})
		if cancel != nil {
			cancel()
		}
		if err != nil {
			return fmt.Errorf("maxclique: %s: %w", v, err)
		}
		elapsed := time.Since(start)

		valid := g.IsClique(res.Clique)
		logger.Info("algorithm finished",
			zap.String("algo", v.String()),
			zap.Int("clique_size", len(res.Clique)),
			zap.Int64("nodes", res.Nodes),
			zap.Bool("proven", res.Proven),
			zap.Duration("elapsed", elapsed),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "%s,%d,%s,%v\n", v, len(res.Clique), elapsed, valid)

		if csvWriter != nil {
			if err := csvWriter.Write(report.Row{
				Dataset:     dataset,
				Algorithm:   v.String(),
				Elapsed:     elapsed,
				CliqueSize:  len(res.Clique),
				NumVertices: g.VertexCount(),
				NumEdges:    g.EdgeCount(),
				Density:     g.Density(),
				Valid:       valid,
			}); err != nil {
				return err
			}
		}
	}

	if csvWriter != nil {
		if err := csvWriter.Flush(); err != nil {
			return fmt.Errorf("maxclique: flush csv: %w", err)
		}
	}

	return nil
}
