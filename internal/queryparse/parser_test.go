package queryparse

import (
	"testing"

	"github.com/holmqvist/corpusquery/internal/corpus"
)

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c := corpus.New()
	c.Interner.Intern("cat")
	c.Interner.Intern("VERB")
	return c
}

func TestParseBasicClause(t *testing.T) {
	c := testCorpus(t)
	q, err := Parse(`[word="cat"]`, c)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(q.Clauses) != 1 || len(q.Clauses[0].Literals) != 1 {
		t.Fatalf("unexpected query shape: %+v", q)
	}
}

func TestParseWildcardClause(t *testing.T) {
	c := testCorpus(t)
	q, err := Parse(`[]`, c)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(q.Clauses) != 1 || !q.Clauses[0].Wildcard {
		t.Fatalf("expected a single wildcard clause, got %+v", q)
	}
}

func TestParseSingleSpaceBetweenClausesAndLiterals(t *testing.T) {
	c := testCorpus(t)
	if _, err := Parse(`[word="cat"] [pos="VERB"]`, c); err != nil {
		t.Fatalf("Parse with one space between clauses: %v", err)
	}
	if _, err := Parse(`[pos="VERB" word="cat"]`, c); err != nil {
		t.Fatalf("Parse with one space between literals: %v", err)
	}
}

func TestParseRejectsDoubleSpaceBetweenClauses(t *testing.T) {
	c := testCorpus(t)
	if _, err := Parse(`[word="cat"]  [pos="VERB"]`, c); err == nil {
		t.Fatal("expected a syntax error for two spaces between clauses")
	}
}

func TestParseRejectsDoubleSpaceBetweenLiterals(t *testing.T) {
	c := testCorpus(t)
	if _, err := Parse(`[pos="VERB"  word="cat"]`, c); err == nil {
		t.Fatal("expected a syntax error for two spaces between literals")
	}
}

func TestParseRejectsTabAsSeparator(t *testing.T) {
	c := testCorpus(t)
	if _, err := Parse("[word=\"cat\"]\t[pos=\"VERB\"]", c); err == nil {
		t.Fatal("expected a syntax error for a tab used as a separator")
	}
}

func TestParseUnknownAttribute(t *testing.T) {
	c := testCorpus(t)
	_, err := Parse(`[nope="cat"]`, c)
	if err == nil {
		t.Fatal("expected an error for an unknown attribute")
	}
	var synErr SyntaxError
	if !asSyntaxError(err, &synErr) {
		t.Fatalf("expected a SyntaxError, got %T: %v", err, err)
	}
	if synErr.Kind != "UnknownAttribute" {
		t.Fatalf("expected Kind UnknownAttribute, got %q", synErr.Kind)
	}
}

func TestParseUnknownValueResolvesToNone(t *testing.T) {
	c := testCorpus(t)
	q, err := Parse(`[word="dog"]`, c)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if q.Clauses[0].Literals[0].Value != corpus.None {
		t.Fatalf("expected corpus.None for an un-interned value, got %v", q.Clauses[0].Literals[0].Value)
	}
}

func asSyntaxError(err error, target *SyntaxError) bool {
	se, ok := err.(SyntaxError)
	if !ok {
		return false
	}
	*target = se
	return true
}
