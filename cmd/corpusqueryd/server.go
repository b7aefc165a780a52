package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	corpusquery "github.com/holmqvist/corpusquery"
	"github.com/holmqvist/corpusquery/internal/observability"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

type server struct {
	engine  *corpusquery.Engine
	logger  *slog.Logger
	metrics *observability.Metrics
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Matches []corpusquery.Match `json:"matches"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body queryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Query == "" {
		writeError(w, http.StatusBadRequest, "missing field: query")
		return
	}

	start := time.Now()
	matches, err := s.engine.Query(r.Context(), body.Query)
	s.metrics.QueryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.QueriesTotal.WithLabelValues(observability.OutcomeError).Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.metrics.QueriesTotal.WithLabelValues(observability.OutcomeOK).Inc()
	s.metrics.MatchesReturned.Observe(float64(len(matches)))

	writeJSON(w, http.StatusOK, queryResponse{Matches: matches})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
