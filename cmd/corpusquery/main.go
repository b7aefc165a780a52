// Command corpusquery is the interactive client over the query engine:
// a REPL, a one-shot query runner, and a benchmark harness.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "corpusquery",
		Short: "Query a positionally-indexed linguistic corpus",
	}

	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.PersistentFlags().String("log_format", "", "log format: json or text")

	root.AddCommand(newReplCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newBenchCmd())

	return root
}
