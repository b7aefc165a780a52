package query

import "fmt"

// ErrorKind categorizes an EvalError, following the Kind+Message
// error shape used throughout this module's internal packages.
type ErrorKind string

const (
	// InvalidQuery means the query itself is malformed at evaluation
	// time (e.g. zero clauses) — something internal/queryparse should
	// already have rejected, checked here defensively.
	InvalidQuery ErrorKind = "InvalidQuery"
	// InternalInvariant means a set-algebra or corpus invariant the
	// evaluator relies on was violated. This should never happen
	// against a corpus produced by internal/loader.
	InternalInvariant ErrorKind = "InternalInvariant"
)

// EvalError reports a failure to evaluate a Query against a Corpus.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

func (e EvalError) Error() string {
	return e.Message
}

func invalidQueryf(format string, args ...any) EvalError {
	return EvalError{Kind: InvalidQuery, Message: fmt.Sprintf(format, args...)}
}
