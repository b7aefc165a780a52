package queryparse

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Space matches exactly one separating space, never a run of them and
// never a tab or newline — the reference parser (original_source's
// read loop) only ever skips a single ' ' character between clauses and
// between literals, so a doubled space or any other whitespace byte has
// no token to lex into and is rejected as trailing garbage rather than
// silently collapsed the way a `\s+` rule with Elide would accept it.
var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
	{Name: "NotEq", Pattern: `!=`},
	{Name: "Eq", Pattern: `=`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Space", Pattern: ` `},
})

// grammarAST is the top-level AST node: one or more clauses, each
// optionally separated by a single Space.
type grammarAST struct {
	Clauses []*clauseAST `parser:"@@ (Space? @@)*"`
}

// clauseAST is a bracketed clause: either empty (wildcard) or a run of
// literals separated by exactly one Space each.
type clauseAST struct {
	Literals []*literalAST `parser:"\"[\" (@@ (Space @@)*)? \"]\""`
}

// literalAST is one `attribute op "value"` test.
type literalAST struct {
	Attribute string `parser:"@Ident"`
	Op        string `parser:"@( NotEq | Eq )"`
	Value     string `parser:"@String"`
}

// queryGrammar does not elide Space: every separating space must be
// consumed by an explicit Space reference in the grammar above, so a
// second consecutive space (or a tab/newline, which no rule lexes at
// all) is left over as an unconsumed token and rejected as a syntax
// error instead of silently swallowed.
var queryGrammar = participle.MustBuild[grammarAST](
	participle.Lexer(queryLexer),
)
