package query

import (
	"context"
	"sort"

	"github.com/holmqvist/corpusquery/internal/corpus"
	"github.com/holmqvist/corpusquery/internal/setalg"
)

// Evaluate compiles q against c and returns every match, in ascending
// sentence/position order. It takes a context so a caller serving
// concurrent requests (cmd/corpusqueryd) can cancel or trace a query the
// same way the rest of this module's blocking operations do; the fold
// itself is synchronous and single-threaded, so the context is checked
// once up front rather than polled mid-fold.
//
// The algorithm:
//  1. Build one setalg.MatchSet per literal across every clause, each
//     carrying the shift -j of its clause j, so that intersecting any
//     combination of them yields valid match-start offsets directly.
//  2. Sort those MatchSets ascending by logical size.
//  3. Fold them together with setalg.IntersectMatchSet.
//  4. If any clause was a wildcard, intersect the fold with the dense
//     universe mask (a wildcard clause carries no literal, so an
//     all-wildcard query starts its fold from the universe itself).
//  5. If the fold is still complemented, resolve it against the
//     universe.
//  6. Enumerate the resulting set and validate each candidate start
//     position against sentence boundaries.
func Evaluate(ctx context.Context, c *corpus.Corpus, q Query) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(q.Clauses) == 0 {
		return nil, invalidQueryf("query has no clauses")
	}

	n := c.Len()
	matchLen := len(q.Clauses)

	var sets []setalg.MatchSet
	hasWildcard := false

	for j, clause := range q.Clauses {
		shift := -j
		if clause.Wildcard {
			hasWildcard = true
			continue
		}
		for _, lit := range clause.Literals {
			sets = append(sets, literalMatchSet(c, lit, shift))
		}
	}

	var folded setalg.MatchSet
	switch {
	case len(sets) > 0:
		sort.SliceStable(sets, func(i, j int) bool {
			return sets[i].Size(n) < sets[j].Size(n)
		})
		folded = sets[0]
		for _, s := range sets[1:] {
			folded = setalg.IntersectMatchSet(s, folded)
		}
	default:
		// every clause was a wildcard: the fold starts as the full
		// universe so the mask step below leaves it unchanged.
		folded = setalg.MatchSet{Set: setalg.Universe(n)}
	}

	if hasWildcard {
		folded = setalg.IntersectMatchSet(setalg.MatchSet{Set: setalg.Universe(n)}, folded)
	}

	resolved := setalg.Resolve(folded, n)

	return enumerate(c, resolved, matchLen), nil
}

// literalMatchSet builds the per-literal MatchSet: the postings
// equal-range for the literal's attribute and value, shifted into the
// clause's coordinate space, complemented when the literal is a
// negated ("!=") test.
func literalMatchSet(c *corpus.Corpus, lit Literal, shift int) setalg.MatchSet {
	lo, hi := c.Postings.EqualRange(lit.Attribute, lit.Value)
	elems := c.Postings.Slice(lit.Attribute)[lo:hi]
	return setalg.MatchSet{
		Set:        setalg.Indexed{Elems: elems, Shift: shift},
		Complement: !lit.Equality,
	}
}

// enumerate walks the resolved set's elements in ascending order and
// keeps the ones whose span of matchLen tokens starting at that offset
// stays inside a single sentence.
func enumerate(c *corpus.Corpus, s setalg.Set, matchLen int) []Match {
	var matches []Match
	visit := func(pos int) {
		if pos < 0 {
			return
		}
		sentence := c.SentenceOf(pos)
		if sentence < 0 {
			return
		}
		if pos+matchLen > c.SentenceEnd(sentence) {
			return
		}
		matches = append(matches, Match{
			Sentence: sentence,
			Pos:      pos - c.Sentences[sentence],
			Len:      matchLen,
		})
	}

	switch set := s.(type) {
	case setalg.Dense:
		for pos := set.First; pos < set.Last; pos++ {
			visit(pos)
		}
	case setalg.Indexed:
		for _, e := range set.Elems {
			visit(e + set.Shift)
		}
	case setalg.Explicit:
		for _, e := range set.Elems {
			visit(e)
		}
	}
	return matches
}
