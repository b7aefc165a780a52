// Package corpusquery is the root facade over the positional corpus
// query engine: loading a corpus, parsing query text, and evaluating it.
package corpusquery

import (
	"context"
	"encoding/json"
	"io"

	"github.com/holmqvist/corpusquery/internal/corpus"
	"github.com/holmqvist/corpusquery/internal/loader"
	"github.com/holmqvist/corpusquery/internal/query"
	"github.com/holmqvist/corpusquery/internal/queryparse"
)

type (
	Match  = query.Match
	Report = loader.Report
)

// Engine wraps a loaded corpus with the query operations available
// against it, mirroring the teacher's root PGraph facade.
type Engine struct {
	Corpus *corpus.Corpus
	Report *Report
}

// New returns an Engine over an empty corpus, ready to accept tokens
// through its Corpus field directly (mainly useful for tests).
func New() *Engine {
	return &Engine{Corpus: corpus.New()}
}

// Load reads the corpus file format from r.
func Load(r io.Reader) (*Engine, error) {
	c, report, err := loader.Load(r)
	if err != nil {
		return nil, err
	}
	return &Engine{Corpus: c, Report: report}, nil
}

// LoadFile reads the corpus file format from the file at path.
func LoadFile(path string) (*Engine, error) {
	c, report, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Engine{Corpus: c, Report: report}, nil
}

// Query parses text against the engine's corpus and evaluates it.
func (e *Engine) Query(ctx context.Context, text string) ([]Match, error) {
	q, err := queryparse.Parse(text, e.Corpus)
	if err != nil {
		return nil, err
	}
	return query.Evaluate(ctx, e.Corpus, q)
}

// MarshalMatchesJSON renders matches as a JSON array, mirroring the
// teacher's MarshalResultJSON entry point.
func MarshalMatchesJSON(matches []Match) ([]byte, error) {
	return json.Marshal(matches)
}
