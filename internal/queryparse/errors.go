package queryparse

import "fmt"

// SyntaxError reports a failure to parse query text: an unrecognized
// attribute name, a missing operator, an unterminated string, unbalanced
// brackets, or trailing garbage after the last clause.
type SyntaxError struct {
	Kind    string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error (%v): %v", e.Kind, e.Message)
}
