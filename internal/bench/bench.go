// Package bench times repeated evaluations of a single query against a
// loaded corpus and summarizes the distribution of run times.
package bench

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/holmqvist/corpusquery/internal/corpus"
	"github.com/holmqvist/corpusquery/internal/query"
)

// warmupRuns mirrors the reference benchmark harness's fixed 100-iteration
// warmup before any timed run is recorded.
const warmupRuns = 100

// Result summarizes one benchmark run.
type Result struct {
	Runs            int
	Matches         int
	SecondsPerRun   []float64
	MeanSeconds     float64
	StdDevSeconds   float64
	CI95Low         float64
	CI95High        float64
	TokensPerSecond float64
}

// Run evaluates q against c once per warmup iteration (discarded), then
// runs timed iterations, and summarizes the per-run wall-clock time.
func Run(ctx context.Context, c *corpus.Corpus, q query.Query, runs int) (Result, error) {
	for i := 0; i < warmupRuns; i++ {
		if _, err := query.Evaluate(ctx, c, q); err != nil {
			return Result{}, err
		}
	}

	var matches []query.Match
	times := make([]float64, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		m, err := query.Evaluate(ctx, c, q)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, err
		}
		matches = m
		times[i] = elapsed.Seconds()
	}

	mean, stddev := stat.MeanStdDev(times, nil)
	stderr := stddev / math.Sqrt(float64(runs))

	return Result{
		Runs:            runs,
		Matches:         len(matches),
		SecondsPerRun:   times,
		MeanSeconds:     mean,
		StdDevSeconds:   stddev,
		CI95Low:         mean - 1.96*stderr,
		CI95High:        mean + 1.96*stderr,
		TokensPerSecond: float64(c.Len()) / mean,
	}, nil
}
