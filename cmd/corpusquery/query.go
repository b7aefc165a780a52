package main

import (
	"os"

	"github.com/spf13/cobra"

	corpusquery "github.com/holmqvist/corpusquery"
	"github.com/holmqvist/corpusquery/internal/config"
	"github.com/holmqvist/corpusquery/internal/observability"
	"github.com/holmqvist/corpusquery/internal/present"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <corpus-file> <query-text>",
		Short: "Evaluate a single query against a corpus file and print the matches",
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
			if len(eng.Report.SkippedLines) > 0 {
				logger.Warn("skipped malformed lines while loading corpus",
					"path", args[0], "skipped", len(eng.Report.SkippedLines))
			}

			matches, err := eng.Query(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			present.WriteMatches(os.Stdout, eng.Corpus, matches)
			return nil
		},
	}
	return cmd
}
