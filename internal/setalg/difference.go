package setalg

// Difference dispatches A \ B to the correct concrete routine for the
// dynamic encodings of a and b.
func Difference(a, b Set) Set {
	switch av := a.(type) {
	case Dense:
		switch bv := b.(type) {
		case Dense:
			return DifferenceDense(av, bv)
		case Indexed:
			return DifferenceDenseIndexed(av, bv)
		case Explicit:
			return DifferenceDenseExplicit(av, bv)
		}
	case Indexed:
		switch bv := b.(type) {
		case Dense:
			return DifferenceIndexedDense(av, bv)
		case Indexed:
			return DifferenceIndexed(av, bv)
		case Explicit:
			return DifferenceIndexedExplicit(av, bv)
		}
	case Explicit:
		switch bv := b.(type) {
		case Dense:
			return DifferenceExplicitDense(av, bv)
		case Indexed:
			return DifferenceExplicitIndexed(av, bv)
		case Explicit:
			return DifferenceExplicit(av, bv)
		}
	}
	panic("setalg: unknown set encoding")
}

// DifferenceExplicit computes A \ B for two materialized sets.
func DifferenceExplicit(a, b Explicit) Explicit {
	switch {
	case len(a.Elems)*SizeRatio < len(b.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			if !containsSorted(b.Elems, e) {
				elems = append(elems, e)
			}
		}
		return Explicit{Elems: elems}
	case len(b.Elems)*SizeRatio < len(a.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			if !containsSorted(b.Elems, e) {
				elems = append(elems, e)
			}
		}
		return Explicit{Elems: elems}
	default:
		elems := make([]int, 0)
		p, q := 0, 0
		for p < len(a.Elems) && q < len(b.Elems) {
			switch {
			case a.Elems[p] < b.Elems[q]:
				elems = append(elems, a.Elems[p])
				p++
			case b.Elems[q] < a.Elems[p]:
				q++
			default:
				p++
				q++
			}
		}
		for ; p < len(a.Elems); p++ {
			elems = append(elems, a.Elems[p])
		}
		return Explicit{Elems: elems}
	}
}

// DifferenceIndexed computes A \ B for two postings slices in their
// shifted coordinate space.
func DifferenceIndexed(a, b Indexed) Explicit {
	switch {
	case len(a.Elems)*SizeRatio < len(b.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			shifted := e + a.Shift
			if !containsSorted(b.Elems, shifted-b.Shift) {
				elems = append(elems, shifted)
			}
		}
		return Explicit{Elems: elems}
	case len(b.Elems)*SizeRatio < len(a.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			shifted := e + a.Shift
			if !containsSorted(b.Elems, shifted-b.Shift) {
				elems = append(elems, shifted)
			}
		}
		return Explicit{Elems: elems}
	default:
		elems := make([]int, 0)
		p, q := 0, 0
		for p < len(a.Elems) && q < len(b.Elems) {
			sa, sb := a.shifted(p), b.shifted(q)
			switch {
			case sa < sb:
				elems = append(elems, sa)
				p++
			case sb < sa:
				q++
			default:
				p++
				q++
			}
		}
		for ; p < len(a.Elems); p++ {
			elems = append(elems, a.shifted(p))
		}
		return Explicit{Elems: elems}
	}
}

// DifferenceIndexedExplicit computes A \ B where A is a postings slice
// and B is materialized.
func DifferenceIndexedExplicit(a Indexed, b Explicit) Explicit {
	switch {
	case len(a.Elems)*SizeRatio < len(b.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			shifted := e + a.Shift
			if !containsSorted(b.Elems, shifted) {
				elems = append(elems, shifted)
			}
		}
		return Explicit{Elems: elems}
	case len(b.Elems)*SizeRatio < len(a.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			shifted := e + a.Shift
			if !containsSorted(b.Elems, shifted) {
				elems = append(elems, shifted)
			}
		}
		return Explicit{Elems: elems}
	default:
		elems := make([]int, 0)
		p, q := 0, 0
		for p < len(a.Elems) && q < len(b.Elems) {
			sa := a.shifted(p)
			switch {
			case sa < b.Elems[q]:
				elems = append(elems, sa)
				p++
			case b.Elems[q] < sa:
				q++
			default:
				p++
				q++
			}
		}
		for ; p < len(a.Elems); p++ {
			elems = append(elems, a.shifted(p))
		}
		return Explicit{Elems: elems}
	}
}

// DifferenceExplicitIndexed computes A \ B where A is materialized and
// B is a postings slice.
func DifferenceExplicitIndexed(a Explicit, b Indexed) Explicit {
	switch {
	case len(a.Elems)*SizeRatio < len(b.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			if !containsSorted(b.Elems, e-b.Shift) {
				elems = append(elems, e)
			}
		}
		return Explicit{Elems: elems}
	case len(b.Elems)*SizeRatio < len(a.Elems):
		elems := make([]int, 0)
		for _, e := range a.Elems {
			if !containsSorted(b.Elems, e-b.Shift) {
				elems = append(elems, e)
			}
		}
		return Explicit{Elems: elems}
	default:
		elems := make([]int, 0)
		p, q := 0, 0
		for p < len(a.Elems) && q < len(b.Elems) {
			sb := b.shifted(q)
			switch {
			case a.Elems[p] < sb:
				elems = append(elems, a.Elems[p])
				p++
			case sb < a.Elems[p]:
				q++
			default:
				p++
				q++
			}
		}
		for ; p < len(a.Elems); p++ {
			elems = append(elems, a.Elems[p])
		}
		return Explicit{Elems: elems}
	}
}

// DifferenceDense computes A \ B for two ranges. Only the left overhang
// of A (the portion strictly before B starts) is returned; a right
// overhang, if any, is dropped. The evaluator never reaches this
// routine: its only Dense operand is the universe, which is never
// complemented, so IntersectMatchSet never takes a Dense \ Dense
// difference on its behalf.
func DifferenceDense(a, b Dense) Dense {
	if a.Last <= b.First || a.First >= b.Last {
		return a
	}
	if a.First < b.First {
		return Dense{a.First, b.First}
	}
	return Dense{0, 0}
}

// DifferenceDenseExplicit computes A \ B where A is a range and B is
// materialized.
func DifferenceDenseExplicit(a Dense, b Explicit) Explicit {
	size := a.Last - a.First
	if size < 0 {
		size = 0
	}
	elems := make([]int, 0)
	if len(b.Elems) > size*SizeRatio {
		for p := a.First; p < a.Last; p++ {
			if !containsSorted(b.Elems, p) {
				elems = append(elems, p)
			}
		}
		return Explicit{Elems: elems}
	}
	p, q := a.First, 0
	for p < a.Last && q < len(b.Elems) {
		switch {
		case p < b.Elems[q]:
			elems = append(elems, p)
			p++
		case b.Elems[q] < p:
			q++
		default:
			p++
			q++
		}
	}
	for ; p < a.Last; p++ {
		elems = append(elems, p)
	}
	return Explicit{Elems: elems}
}

// DifferenceDenseIndexed computes A \ B where A is a range and B is a
// postings slice.
func DifferenceDenseIndexed(a Dense, b Indexed) Explicit {
	size := a.Last - a.First
	if size < 0 {
		size = 0
	}
	elems := make([]int, 0)
	if len(b.Elems) > size*SizeRatio {
		for p := a.First; p < a.Last; p++ {
			if !containsSorted(b.Elems, p-b.Shift) {
				elems = append(elems, p)
			}
		}
		return Explicit{Elems: elems}
	}
	p, q := a.First, 0
	for p < a.Last && q < len(b.Elems) {
		sb := b.shifted(q)
		switch {
		case p < sb:
			elems = append(elems, p)
			p++
		case sb < p:
			q++
		default:
			p++
			q++
		}
	}
	for ; p < a.Last; p++ {
		elems = append(elems, p)
	}
	return Explicit{Elems: elems}
}

// DifferenceExplicitDense computes A \ B where A is materialized and B
// is a range.
func DifferenceExplicitDense(a Explicit, b Dense) Explicit {
	elems := make([]int, 0)
	p, q := 0, b.First
	for p < len(a.Elems) && q < b.Last {
		switch {
		case a.Elems[p] < q:
			elems = append(elems, a.Elems[p])
			p++
		case q < a.Elems[p]:
			q++
		default:
			p++
			q++
		}
	}
	for ; p < len(a.Elems); p++ {
		elems = append(elems, a.Elems[p])
	}
	return Explicit{Elems: elems}
}

// DifferenceIndexedDense computes A \ B where A is a postings slice and
// B is a range.
func DifferenceIndexedDense(a Indexed, b Dense) Explicit {
	elems := make([]int, 0)
	p, q := 0, b.First
	for p < len(a.Elems) && q < b.Last {
		shifted := a.shifted(p)
		switch {
		case shifted < q:
			elems = append(elems, shifted)
			p++
		case q < shifted:
			q++
		default:
			p++
			q++
		}
	}
	for ; p < len(a.Elems); p++ {
		elems = append(elems, a.shifted(p))
	}
	return Explicit{Elems: elems}
}
