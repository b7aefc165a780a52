package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	corpusquery "github.com/holmqvist/corpusquery"
	"github.com/holmqvist/corpusquery/internal/bench"
	"github.com/holmqvist/corpusquery/internal/config"
	"github.com/holmqvist/corpusquery/internal/observability"
	"github.com/holmqvist/corpusquery/internal/queryparse"
)

func newBenchCmd() *cobra.Command {
	var runs int
	cmd := &cobra.Command{
		Use:   "bench <corpus-file> <query-text>",
		Short: "Time repeated evaluations of a query against a corpus file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger := observability.NewLogger("corpusquery", cfg.LogFormat, os.Stderr)

			eng, err := corpusquery.LoadFile(args[0])
			if err != nil {
				return err
			}

			q, err := queryparse.Parse(args[1], eng.Corpus)
			if err != nil {
				return err
			}

			result, err := bench.Run(cmd.Context(), eng.Corpus, q, runs)
			if err != nil {
				return err
			}

			logger.Info("benchmark complete",
				"runs", result.Runs,
				"matches", result.Matches,
				"mean_seconds", result.MeanSeconds,
				"stddev_seconds", result.StdDevSeconds,
				"ci95_low", result.CI95Low,
				"ci95_high", result.CI95High,
				"tokens_per_second", result.TokensPerSecond)

			fmt.Printf("runs=%d matches=%d mean=%.6gs stddev=%.6gs ci95=[%.6g,%.6g] tokens/sec=%.0f\n",
				result.Runs, result.Matches, result.MeanSeconds, result.StdDevSeconds,
				result.CI95Low, result.CI95High, result.TokensPerSecond)
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 1000, "number of timed runs after warmup")
	return cmd
}
