package setalg

import (
	"reflect"
	"testing"
)

func denseList(d Dense) []int {
	var out []int
	for i := d.First; i < d.Last; i++ {
		out = append(out, i)
	}
	return out
}

func indexedList(idx Indexed) []int {
	out := make([]int, len(idx.Elems))
	for i := range idx.Elems {
		out[i] = idx.shifted(i)
	}
	return out
}

func toList(s Set) []int {
	switch v := s.(type) {
	case Dense:
		return denseList(v)
	case Indexed:
		return indexedList(v)
	case Explicit:
		return append([]int(nil), v.Elems...)
	default:
		panic("unknown set type")
	}
}

func linearIntersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func linearDifference(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		out = append(out, a[i])
		i++
	}
	return out
}

func TestIntersectEquivalence(t *testing.T) {
	dense := Dense{First: 2, Last: 8}
	indexed := Indexed{Elems: []int{1, 3, 5, 7, 9}, Shift: -1}
	explicit := Explicit{Elems: []int{0, 2, 4, 6, 8, 10}}

	cases := []struct {
		name string
		a, b Set
	}{
		{"dense-dense", dense, Dense{First: 0, Last: 6}},
		{"dense-indexed", dense, indexed},
		{"dense-explicit", dense, explicit},
		{"indexed-indexed", indexed, Indexed{Elems: []int{2, 4, 6, 8}, Shift: 0}},
		{"indexed-explicit", indexed, explicit},
		{"explicit-explicit", explicit, Explicit{Elems: []int{1, 2, 3, 8, 9}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := toList(Intersect(tc.a, tc.b))
			want := linearIntersect(toList(tc.a), toList(tc.b))
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Intersect(%v, %v) = %v, want %v", tc.a, tc.b, got, want)
			}
			gotSwap := toList(Intersect(tc.b, tc.a))
			if !reflect.DeepEqual(gotSwap, want) {
				t.Errorf("Intersect(%v, %v) = %v, want %v (symmetry)", tc.b, tc.a, gotSwap, want)
			}
		})
	}
}

func TestDifferenceEquivalence(t *testing.T) {
	dense := Dense{First: 0, Last: 10}
	indexed := Indexed{Elems: []int{1, 3, 5, 7, 9}, Shift: 0}
	explicit := Explicit{Elems: []int{0, 2, 4, 6, 8}}

	cases := []struct {
		name string
		a, b Set
	}{
		{"explicit-explicit", explicit, Explicit{Elems: []int{2, 4}}},
		{"indexed-indexed", indexed, Indexed{Elems: []int{3, 7}, Shift: 0}},
		{"indexed-explicit", indexed, explicit},
		{"explicit-indexed", explicit, indexed},
		{"dense-explicit", dense, explicit},
		{"explicit-dense", explicit, Dense{First: 2, Last: 6}},
		{"dense-indexed", dense, indexed},
		{"indexed-dense", indexed, Dense{First: 2, Last: 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := toList(Difference(tc.a, tc.b))
			want := linearDifference(toList(tc.a), toList(tc.b))
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Difference(%v, %v) = %v, want %v", tc.a, tc.b, got, want)
			}
		})
	}
}

func TestDifferenceDenseOnlyKeepsLeftOverhang(t *testing.T) {
	a := Dense{First: 0, Last: 10}
	b := Dense{First: 3, Last: 6}
	got := toList(DifferenceDense(a, b))
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DifferenceDense(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestMatchSetComplementRoundTrip(t *testing.T) {
	n := 12
	a := Explicit{Elems: []int{1, 4, 7}}
	m := MatchSet{Set: a, Complement: true}

	resolved := Resolve(m, n)
	gotComplement := toList(resolved)

	var wantComplement []int
	for i := 0; i < n-1; i++ {
		found := false
		for _, e := range a.Elems {
			if e == i {
				found = true
				break
			}
		}
		if !found {
			wantComplement = append(wantComplement, i)
		}
	}
	if !reflect.DeepEqual(gotComplement, wantComplement) {
		t.Fatalf("complement = %v, want %v", gotComplement, wantComplement)
	}

	doubleComplement := IntersectMatchSet(MatchSet{Set: Universe(n)}, MatchSet{Set: resolved, Complement: true})
	got := toList(doubleComplement.Set)
	if !reflect.DeepEqual(got, a.Elems) {
		t.Fatalf("double complement = %v, want original %v", got, a.Elems)
	}
}

func TestUniverseIsZeroToNMinusOne(t *testing.T) {
	u := Universe(8)
	if u.First != 0 || u.Last != 7 {
		t.Fatalf("Universe(8) = %+v, want {First:0 Last:7}", u)
	}
}
