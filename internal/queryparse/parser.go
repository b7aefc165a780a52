// Package queryparse turns query text into an internal/query.Query
// using a participle grammar, resolving literal values against a
// corpus's interner.
package queryparse

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/holmqvist/corpusquery/internal/corpus"
	"github.com/holmqvist/corpusquery/internal/query"
)

// Parse parses text as a query against c, resolving every literal value
// through c's interner. A value absent from the interner resolves to
// corpus.None rather than failing the parse.
func Parse(text string, c *corpus.Corpus) (query.Query, error) {
	ast, err := queryGrammar.ParseString("", text)
	if err != nil {
		return query.Query{}, translateParseError(err)
	}
	return convertGrammar(ast, c)
}

// translateParseError wraps a participle error in a SyntaxError so
// callers never need to import participle themselves.
func translateParseError(err error) error {
	if perr, ok := err.(participle.Error); ok {
		return SyntaxError{Kind: "Malformed", Message: perr.Message()}
	}
	return SyntaxError{Kind: "Malformed", Message: err.Error()}
}

func convertGrammar(ast *grammarAST, c *corpus.Corpus) (query.Query, error) {
	clauses := make([]query.Clause, 0, len(ast.Clauses))
	for _, clauseAST := range ast.Clauses {
		clause, err := convertClause(clauseAST, c)
		if err != nil {
			return query.Query{}, err
		}
		clauses = append(clauses, clause)
	}
	return query.Query{Clauses: clauses}, nil
}

func convertClause(ast *clauseAST, c *corpus.Corpus) (query.Clause, error) {
	if len(ast.Literals) == 0 {
		return query.Clause{Wildcard: true}, nil
	}
	literals := make([]query.Literal, 0, len(ast.Literals))
	for _, litAST := range ast.Literals {
		lit, err := convertLiteral(litAST, c)
		if err != nil {
			return query.Clause{}, err
		}
		literals = append(literals, lit)
	}
	return query.Clause{Literals: literals}, nil
}

func convertLiteral(ast *literalAST, c *corpus.Corpus) (query.Literal, error) {
	attr, ok := attributeByName(ast.Attribute)
	if !ok {
		return query.Literal{}, SyntaxError{
			Kind:    "UnknownAttribute",
			Message: "unknown attribute " + ast.Attribute + ", expected one of word, c5, lemma, pos",
		}
	}

	value := strings.Trim(ast.Value, `"`)
	id, known := c.Interner.Lookup(value)
	if !known {
		id = corpus.None
	}

	return query.Literal{
		Attribute: attr,
		Value:     id,
		Equality:  ast.Op == "=",
	}, nil
}

func attributeByName(name string) (corpus.Attribute, bool) {
	switch name {
	case "word":
		return corpus.Word, true
	case "c5":
		return corpus.C5, true
	case "lemma":
		return corpus.Lemma, true
	case "pos":
		return corpus.Pos, true
	default:
		return 0, false
	}
}
