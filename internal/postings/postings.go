// Package postings builds and queries the per-attribute sorted position
// arrays ("attribute indices") that the set algebra and query evaluator
// read from.
package postings

import (
	"sort"

	"github.com/holmqvist/corpusquery/internal/corpus"
)

// Index holds, for each of the four attributes, a permutation of
// [0, N) stable-sorted by that attribute's identifier. It satisfies
// corpus.Postings.
type Index struct {
	tokens []corpus.Token
	byAttr [4][]int
}

// Build constructs an Index over tokens. Each of the four permutations
// is a stable sort so that ties (equal attribute value) preserve
// position order, which the set algebra relies on when it treats a
// postings slice as a position-sorted set.
func Build(tokens []corpus.Token) *Index {
	idx := &Index{tokens: tokens}
	for a := corpus.Word; a <= corpus.Pos; a++ {
		idx.byAttr[a] = buildOne(tokens, a)
	}
	return idx
}

func buildOne(tokens []corpus.Token, a corpus.Attribute) []int {
	perm := make([]int, len(tokens))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return tokens[perm[i]].Attr(a) < tokens[perm[j]].Attr(a)
	})
	return perm
}

// Slice returns the full sorted-by-attribute permutation for a.
func (idx *Index) Slice(a corpus.Attribute) []int {
	return idx.byAttr[a]
}

// EqualRange returns the inclusive-exclusive range [lo, hi) into
// Slice(a) whose tokens carry attribute value v. Returns an empty range
// if v does not occur, or if v is corpus.None.
func (idx *Index) EqualRange(a corpus.Attribute, v corpus.Identifier) (lo, hi int) {
	if v == corpus.None {
		return 0, 0
	}
	perm := idx.byAttr[a]
	tokens := idx.tokens

	lo = sort.Search(len(perm), func(i int) bool {
		return tokens[perm[i]].Attr(a) >= v
	})
	hi = lo + sort.Search(len(perm)-lo, func(i int) bool {
		return tokens[perm[lo+i]].Attr(a) > v
	})
	return lo, hi
}
