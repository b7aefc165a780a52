package setalg

// Intersect dispatches to the correct concrete intersection routine for
// the dynamic encodings of a and b, trying every ordered pair so either
// argument order produces the same logical result.
func Intersect(a, b Set) Set {
	switch av := a.(type) {
	case Dense:
		switch bv := b.(type) {
		case Dense:
			return IntersectDense(av, bv)
		case Indexed:
			return IntersectDenseIndexed(av, bv)
		case Explicit:
			return IntersectDenseExplicit(av, bv)
		}
	case Indexed:
		switch bv := b.(type) {
		case Dense:
			return IntersectDenseIndexed(bv, av)
		case Indexed:
			return IntersectIndexed(av, bv)
		case Explicit:
			return IntersectExplicitIndexed(bv, av)
		}
	case Explicit:
		switch bv := b.(type) {
		case Dense:
			return IntersectDenseExplicit(bv, av)
		case Indexed:
			return IntersectExplicitIndexed(av, bv)
		case Explicit:
			return IntersectExplicit(av, bv)
		}
	}
	panic("setalg: unknown set encoding")
}

// IntersectDense intersects two ranges.
func IntersectDense(a, b Dense) Dense {
	first, last := a.First, a.Last
	if b.First > first {
		first = b.First
	}
	if b.Last < last {
		last = b.Last
	}
	if first < last {
		return Dense{first, last}
	}
	return Dense{0, 0}
}

// IntersectExplicit intersects two materialized sets, galloping the
// smaller side into the larger via binary search when one dominates by
// more than SizeRatio, merging with two cursors otherwise.
func IntersectExplicit(a, b Explicit) Explicit {
	switch {
	case len(a.Elems)*SizeRatio < len(b.Elems):
		return Explicit{Elems: gallop(a.Elems, b.Elems, identity)}
	case len(b.Elems)*SizeRatio < len(a.Elems):
		return Explicit{Elems: gallop(b.Elems, a.Elems, identity)}
	default:
		return Explicit{Elems: mergeIntersect(a.Elems, b.Elems, identity, identity)}
	}
}

// IntersectIndexed intersects two postings slices in their shifted
// (logical) coordinate space. The result is always materialized as an
// Explicit set: once two postings slices belonging to different clauses
// must be combined, the elements no longer form a contiguous run of
// either source slice.
func IntersectIndexed(a, b Indexed) Explicit {
	switch {
	case len(a.Elems)*SizeRatio < len(b.Elems):
		elems := make([]int, 0, len(a.Elems))
		for _, e := range a.Elems {
			shifted := e + a.Shift
			if containsSorted(b.Elems, shifted-b.Shift) {
				elems = append(elems, shifted)
			}
		}
		return Explicit{Elems: elems}
	case len(b.Elems)*SizeRatio < len(a.Elems):
		return IntersectIndexed(b, a)
	default:
		elems := make([]int, 0)
		p, q := 0, 0
		for p < len(a.Elems) && q < len(b.Elems) {
			sa, sb := a.shifted(p), b.shifted(q)
			switch {
			case sa < sb:
				p++
			case sb < sa:
				q++
			default:
				elems = append(elems, sa)
				p++
				q++
			}
		}
		return Explicit{Elems: elems}
	}
}

// IntersectDenseExplicit filters an explicit set down to the elements
// that fall inside a dense range.
func IntersectDenseExplicit(a Dense, b Explicit) Explicit {
	elems := make([]int, 0)
	for _, e := range b.Elems {
		if e >= a.First && e < a.Last {
			elems = append(elems, e)
		}
	}
	return Explicit{Elems: elems}
}

// IntersectDenseIndexed filters a postings slice down to the elements
// whose shifted position falls inside a dense range, preserving the
// Indexed encoding (and original shift) of the result.
func IntersectDenseIndexed(a Dense, b Indexed) Indexed {
	elems := make([]int, 0)
	for _, e := range b.Elems {
		if shifted := e + b.Shift; shifted >= a.First && shifted < a.Last {
			elems = append(elems, e)
		}
	}
	return Indexed{Elems: elems, Shift: b.Shift}
}

// IntersectExplicitIndexed intersects an explicit set with a postings
// slice, galloping whichever side is the better probe target and
// merging only when neither comfortably dominates.
func IntersectExplicitIndexed(a Explicit, b Indexed) Explicit {
	switch {
	case len(a.Elems)*SizeRatio < len(b.Elems):
		elems := make([]int, 0, len(a.Elems))
		for _, e := range a.Elems {
			if containsSorted(b.Elems, e-b.Shift) {
				elems = append(elems, e)
			}
		}
		return Explicit{Elems: elems}
	case len(b.Elems)*SizeRatio < len(a.Elems):
		elems := make([]int, 0, len(b.Elems))
		for _, e := range b.Elems {
			shifted := e + b.Shift
			if containsSorted(a.Elems, shifted) {
				elems = append(elems, shifted)
			}
		}
		return Explicit{Elems: elems}
	default:
		p, q := 0, 0
		elems := make([]int, 0)
		for p < len(a.Elems) && q < len(b.Elems) {
			sb := b.shifted(q)
			switch {
			case a.Elems[p] < sb:
				p++
			case sb < a.Elems[p]:
				q++
			default:
				elems = append(elems, a.Elems[p])
				p++
				q++
			}
		}
		return Explicit{Elems: elems}
	}
}

func identity(v int) int { return v }

// gallop walks the (shorter) small slice and binary-searches each
// element, transformed by key, into big.
func gallop(small, big []int, key func(int) int) []int {
	elems := make([]int, 0, len(small))
	for _, e := range small {
		if containsSorted(big, key(e)) {
			elems = append(elems, e)
		}
	}
	return elems
}

// mergeIntersect merges two ascending slices with independent key
// transforms, returning the elements (transformed via keyA) common to
// both under those transforms.
func mergeIntersect(a, b []int, keyA, keyB func(int) int) []int {
	elems := make([]int, 0)
	p, q := 0, 0
	for p < len(a) && q < len(b) {
		ka, kb := keyA(a[p]), keyB(b[q])
		switch {
		case ka < kb:
			p++
		case kb < ka:
			q++
		default:
			elems = append(elems, a[p])
			p++
			q++
		}
	}
	return elems
}
