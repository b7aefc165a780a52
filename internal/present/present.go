// Package present renders query.Match results as highlighted sentence
// text, the same terminal presentation the reference implementation's
// interactive tool produces.
package present

import (
	"fmt"
	"io"

	"github.com/holmqvist/corpusquery/internal/corpus"
	"github.com/holmqvist/corpusquery/internal/query"
)

const (
	highlightOn = "\033[1;37;43m"
	reset       = "\033[0m"
)

// previewLimit caps how many matches WriteMatches renders in full; past
// this it still reports the total count but stops printing sentences.
const previewLimit = 10

// FormatSentence renders the sentence containing m, wrapping the
// matched span of tokens in the highlight escape sequence.
func FormatSentence(c *corpus.Corpus, m query.Match) string {
	start := c.Sentences[m.Sentence]
	end := c.SentenceEnd(m.Sentence)

	out := make([]byte, 0, (end-start)*8)
	for tok := start; tok < end; tok++ {
		inSpan := tok-start >= m.Pos && tok-start < m.Pos+m.Len
		if inSpan {
			out = append(out, highlightOn...)
		}
		out = append(out, c.Interner.Resolve(c.Tokens[tok].Word)...)
		out = append(out, reset...)
		out = append(out, ' ')
	}
	return string(out)
}

// WriteMatches writes a human-readable listing of matches to w: the
// first previewLimit sentences rendered in full, a count line, and a
// trailing total. Writes "No matches found." for an empty list.
func WriteMatches(w io.Writer, c *corpus.Corpus, matches []query.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}

	shown := matches
	if len(shown) > previewLimit {
		fmt.Fprintf(w, "\nListing first %d matches:\n", previewLimit)
		shown = shown[:previewLimit]
	} else {
		fmt.Fprintf(w, "\nListing %d matches:\n", len(shown))
	}

	for _, m := range shown {
		fmt.Fprintln(w, FormatSentence(c, m))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "------ Total matches: %d ------\n", len(matches))
}
