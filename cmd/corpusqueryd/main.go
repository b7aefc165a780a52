// Command corpusqueryd is the HTTP query service: a JSON /query endpoint
// in front of a server-side-loaded corpus, and a Prometheus /metrics
// endpoint.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	corpusquery "github.com/holmqvist/corpusquery"
	"github.com/holmqvist/corpusquery/internal/config"
	"github.com/holmqvist/corpusquery/internal/observability"
)

func main() {
	flags := pflag.NewFlagSet("corpusqueryd", pflag.ExitOnError)
	cfgPath := flags.String("config", "", "path to a YAML config file")
	flags.String("corpus_path", "", "path to the corpus file to serve")
	flags.String("listen_addr", "", "address to listen on")
	flags.String("log_format", "", "log format: json or text")
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := observability.NewLogger("corpusqueryd", cfg.LogFormat, os.Stderr)

	if cfg.CorpusPath == "" {
		logger.Error("no corpus_path configured")
		os.Exit(1)
	}

	eng, err := corpusquery.LoadFile(cfg.CorpusPath)
	if err != nil {
		logger.Error("failed to load corpus", "path", cfg.CorpusPath, "error", err)
		os.Exit(1)
	}
	if len(eng.Report.SkippedLines) > 0 {
		logger.Warn("skipped malformed lines while loading corpus",
			"path", cfg.CorpusPath, "skipped", len(eng.Report.SkippedLines))
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	svc := &server{engine: eng, logger: logger, metrics: metrics}

	mux := http.NewServeMux()
	mux.HandleFunc("/query", svc.handleQuery)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	logger.Info("corpusqueryd listening", "addr", cfg.ListenAddr, "corpus", cfg.CorpusPath, "tokens", eng.Corpus.Len())
	if err := http.ListenAndServe(cfg.ListenAddr, corsMiddleware(mux)); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
