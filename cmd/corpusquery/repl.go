package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	corpusquery "github.com/holmqvist/corpusquery"
	"github.com/holmqvist/corpusquery/internal/config"
	"github.com/holmqvist/corpusquery/internal/observability"
	"github.com/holmqvist/corpusquery/internal/present"
)

const replHelpText = `corpusquery interactive REPL

Commands:
  load <name> <file>   Load a corpus from a file
  unload <name>        Remove a loaded corpus
  list                 List all loaded corpora
  use <name>           Set the active corpus for queries
  help                 Show this help message
  exit / quit          Exit the REPL

Any other input is treated as a query against the active corpus.

Query examples:
  [word="dog"]
  [pos="VERB"][word="quickly"]
  []
`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive query REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.Context(), cmd.Flags())
		},
	}
}

func runRepl(ctx context.Context, flags *pflag.FlagSet) error {
	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath, flags)
	if err != nil {
		return err
	}
	logger := observability.NewLogger("corpusquery", cfg.LogFormat, os.Stderr)

	corpora := make(map[string]*corpusquery.Engine)
	var active string

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("corpusquery — positional corpus query engine")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		if active != "" {
			fmt.Printf("[%s]> ", active)
		} else {
			fmt.Print("> ")
		}

		if !scanner.Scan() {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmdName := strings.ToLower(parts[0])

		switch cmdName {
		case "exit", "quit":
			return nil

		case "help":
			fmt.Print(replHelpText)

		case "list":
			if len(corpora) == 0 {
				fmt.Println("(no corpora loaded)")
				continue
			}
			for name := range corpora {
				marker := " "
				if name == active {
					marker = "*"
				}
				fmt.Printf("  %s %s\n", marker, name)
			}

		case "use":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: use <name>")
				continue
			}
			name := parts[1]
			if _, ok := corpora[name]; !ok {
				fmt.Fprintf(os.Stderr, "no corpus named %q\n", name)
				continue
			}
			active = name
			fmt.Printf("active corpus set to %q\n", name)

		case "load":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: load <name> <file>")
				continue
			}
			name, path := parts[1], parts[2]
			eng, err := corpusquery.LoadFile(path)
			if err != nil {
				logger.Warn("failed to load corpus", "path", path, "error", err)
				fmt.Fprintf(os.Stderr, "error loading %q: %v\n", path, err)
				continue
			}
			if len(eng.Report.SkippedLines) > 0 {
				logger.Warn("skipped malformed lines while loading corpus",
					"path", path, "skipped", len(eng.Report.SkippedLines))
			}
			corpora[name] = eng
			if active == "" {
				active = name
			}
			fmt.Printf("loaded %q (%d tokens, %d sentences)\n", name, eng.Corpus.Len(), eng.Report.Sentences)

		case "unload":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: unload <name>")
				continue
			}
			name := parts[1]
			if _, ok := corpora[name]; !ok {
				fmt.Fprintf(os.Stderr, "no corpus named %q\n", name)
				continue
			}
			delete(corpora, name)
			if active == name {
				active = ""
			}
			fmt.Printf("unloaded %q\n", name)

		default:
			if active == "" {
				fmt.Fprintln(os.Stderr, "no active corpus — use 'load' or 'use' first")
				continue
			}
			matches, err := corpora[active].Query(ctx, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "query error: %v\n", err)
				continue
			}
			present.WriteMatches(os.Stdout, corpora[active].Corpus, matches)
		}
	}
}
