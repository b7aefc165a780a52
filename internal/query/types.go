// Package query holds the compiled query representation and the
// evaluator that folds it into a list of matches using internal/setalg.
package query

import "github.com/holmqvist/corpusquery/internal/corpus"

// Literal is one `attribute="value"` or `attribute!="value"` test inside
// a clause. Value is corpus.None when the literal's string was never
// interned into the corpus, which makes the literal unsatisfiable for an
// equality test and vacuously true for an inequality test.
type Literal struct {
	Attribute corpus.Attribute
	Value     corpus.Identifier
	Equality  bool
}

// Clause is one bracketed position in the query, `[literal literal ...]`.
// A Wildcard clause (the bare `[]`) matches any single token and carries
// no literals.
type Clause struct {
	Wildcard bool
	Literals []Literal
}

// Query is an ordered sequence of clauses; a match is a run of
// len(Clauses) consecutive tokens, one per clause, all within the same
// sentence.
type Query struct {
	Clauses []Clause
}

// Match is one matched span: Pos is the offset of its first token
// within sentence Sentence, and Len is the number of tokens it spans
// (always len(Query.Clauses)).
type Match struct {
	Sentence int
	Pos      int
	Len      int
}
