// Package loader parses the corpus file format into an
// internal/corpus.Corpus and builds its attribute postings.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/holmqvist/corpusquery/internal/corpus"
	"github.com/holmqvist/corpusquery/internal/postings"
)

// Report summarizes a load: how many tokens and sentences were read, and
// which lines were skipped because they did not carry exactly four
// whitespace-separated fields. A non-empty SkippedLines is not an error —
// load_corpus in the reference implementation has always been lenient
// about trailing junk lines, so this keeps that behavior rather than
// failing the whole load over one bad line.
type Report struct {
	Tokens       int
	Sentences    int
	SkippedLines []SkippedLine
}

// SkippedLine records one line of the corpus file that could not be
// parsed as a token.
type SkippedLine struct {
	Line   int
	Reason string
}

// LoadError reports a failure to open or read a corpus file.
type LoadError struct {
	Kind    string
	Message string
}

func (e LoadError) Error() string {
	return e.Message
}

// LoadFile opens path and loads it as a corpus file.
func LoadFile(path string) (*corpus.Corpus, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, LoadError{Kind: "OpenFailed", Message: err.Error()}
	}
	defer f.Close()
	return Load(f)
}

// Load reads the corpus file format from r: a header line (skipped), then
// one token per line as four whitespace-separated fields (word, c5,
// lemma, pos), blank lines marking sentence boundaries, and lines
// starting with '#' treated as comments.
func Load(r io.Reader) (*corpus.Corpus, *Report, error) {
	c := corpus.New()
	report := &Report{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	if scanner.Scan() {
		lineNo++
		// header line, discarded
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case line == "":
			c.BreakSentence()
			report.Sentences++
		default:
			fields := strings.Fields(line)
			if len(fields) != 4 {
				report.SkippedLines = append(report.SkippedLines, SkippedLine{
					Line:   lineNo,
					Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields)),
				})
				continue
			}
			c.AppendToken(corpus.Token{
				Word:  c.Interner.Intern(fields[0]),
				C5:    c.Interner.Intern(fields[1]),
				Lemma: c.Interner.Intern(fields[2]),
				Pos:   c.Interner.Intern(fields[3]),
			})
			report.Tokens++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, LoadError{Kind: "ReadFailed", Message: err.Error()}
	}

	c.Freeze()
	c.Postings = postings.Build(c.Tokens)

	return c, report, nil
}
