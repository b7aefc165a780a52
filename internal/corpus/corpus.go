package corpus

import "sort"

// Corpus is the immutable, loaded dataset: the interned strings, the
// flat token sequence, the sentence boundaries, and the four attribute
// postings arrays built over them. Once Freeze has been called (which
// the loader always does before handing a Corpus back), every field is
// read-only.
type Corpus struct {
	Interner  *Interner
	Tokens    []Token
	Sentences []int // non-decreasing (consecutive blank lines record an empty sentence), Sentences[0] == 0, last == len(Tokens)

	// Postings holds one sorted-by-attribute permutation of [0, N) per
	// attribute. Set by the loader (postings.Build) once loading is done;
	// internal/postings owns the type but Corpus stores the instance so
	// every lookup shares a single immutable copy.
	Postings Postings
}

// Postings is implemented by internal/postings.Index; declared here as
// an interface so internal/corpus does not import internal/postings
// (which in turn needs Corpus.Tokens) and create an import cycle.
type Postings interface {
	EqualRange(a Attribute, v Identifier) (lo, hi int)
	Slice(a Attribute) []int
}

// New returns a Corpus with no tokens and a single empty sentence,
// ready for a loader to populate via AppendToken / BreakSentence.
func New() *Corpus {
	return &Corpus{
		Interner:  NewInterner(),
		Sentences: []int{0},
	}
}

// AppendToken appends a token at the next offset.
func (c *Corpus) AppendToken(t Token) {
	c.Tokens = append(c.Tokens, t)
}

// BreakSentence records a sentence boundary at the current token offset.
// The loader calls this on every blank line.
func (c *Corpus) BreakSentence() {
	c.Sentences = append(c.Sentences, len(c.Tokens))
}

// Freeze terminates the sentence index with a final offset equal to
// len(Tokens), so SentenceOf is well-defined for the last sentence, and
// drops a spurious empty trailing sentence if the file ended with a
// blank line.
func (c *Corpus) Freeze() {
	last := len(c.Tokens)
	if n := len(c.Sentences); n > 0 && c.Sentences[n-1] == last {
		return
	}
	c.Sentences = append(c.Sentences, last)
}

// Len is the number of tokens in the corpus, N in the specification.
func (c *Corpus) Len() int {
	return len(c.Tokens)
}

// SentenceOf returns the unique sentence index k with
// Sentences[k] <= p < Sentences[k+1].
func (c *Corpus) SentenceOf(p int) int {
	k := sort.Search(len(c.Sentences), func(i int) bool {
		return c.Sentences[i] > p
	})
	return k - 1
}

// SentenceEnd returns Sentences[k+1], the exclusive end offset of
// sentence k.
func (c *Corpus) SentenceEnd(k int) int {
	return c.Sentences[k+1]
}
