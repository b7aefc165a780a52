package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments cmd/corpusqueryd exposes on
// /metrics.
type Metrics struct {
	QueriesTotal    *prometheus.CounterVec
	QueryDuration   prometheus.Histogram
	MatchesReturned prometheus.Histogram
}

// NewMetrics registers and returns the query-service metrics against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "corpusquery_queries_total",
			Help: "Total number of queries evaluated, by outcome.",
		}, []string{"outcome"}),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "corpusquery_query_duration_seconds",
			Help:    "Query evaluation latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		MatchesReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "corpusquery_matches_returned",
			Help:    "Number of matches returned per query.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

// Outcome labels for QueriesTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
