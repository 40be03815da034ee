package match

import (
	"fmt"
	"strings"

	"github.com/tidwall/btree"
)

// Candidates is the matching state φ: Candidates[u] holds the data vertices
// that may still represent query vertex u. Sets are ordered, so every listing
// and every enumeration built on them is deterministic.
type Candidates []*btree.Set[int]

// NewCandidates returns n empty candidate sets.
func NewCandidates(n int) Candidates {
	phi := make(Candidates, n)
	for i := range phi {
		phi[i] = new(btree.Set[int])
	}

	return phi
}

// FromSlices builds a candidate state from plain id lists.
func FromSlices(ids [][]int) Candidates {
	phi := NewCandidates(len(ids))
	for u, vs := range ids {
		for _, v := range vs {
			phi[u].Insert(v)
		}
	}

	return phi
}

// Clone returns an independent copy. The btree copies are copy-on-write, so
// cloning is O(|Q|) until either side is mutated.
func (phi Candidates) Clone() Candidates {
	out := make(Candidates, len(phi))
	for i, s := range phi {
		out[i] = s.Copy()
	}

	return out
}

// AnyEmpty reports whether some query vertex has no candidate left.
func (phi Candidates) AnyEmpty() bool {
	for _, s := range phi {
		if s.Len() == 0 {
			return true
		}
	}

	return false
}

// Sizes returns |φ(u)| for every query vertex u.
func (phi Candidates) Sizes() []int {
	out := make([]int, len(phi))
	for i, s := range phi {
		out[i] = s.Len()
	}

	return out
}

// Total returns Σ|φ(u)|.
func (phi Candidates) Total() int {
	n := 0
	for _, s := range phi {
		n += s.Len()
	}

	return n
}

// Slices returns the candidate sets as ascending id slices.
func (phi Candidates) Slices() [][]int {
	out := make([][]int, len(phi))
	for i, s := range phi {
		out[i] = s.Keys()
	}

	return out
}

// Union returns the ascending union of all candidate sets.
func (phi Candidates) Union() []int {
	var all btree.Set[int]
	for _, s := range phi {
		s.Scan(func(v int) bool {
			all.Insert(v)
			return true
		})
	}

	return all.Keys()
}

// Equal reports pointwise equality.
func (phi Candidates) Equal(other Candidates) bool {
	if len(phi) != len(other) {
		return false
	}
	for i := range phi {
		if phi[i].Len() != other[i].Len() || !subset(phi[i], other[i]) {
			return false
		}
	}

	return true
}

// SubsetOf reports whether φ(u) ⊆ other(u) for every u.
func (phi Candidates) SubsetOf(other Candidates) bool {
	if len(phi) != len(other) {
		return false
	}
	for i := range phi {
		if !subset(phi[i], other[i]) {
			return false
		}
	}

	return true
}

// String renders φ as "0: [..] 1: [..]".
func (phi Candidates) String() string {
	var sb strings.Builder
	for i, s := range phi {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d: %v", i, s.Keys())
	}

	return sb.String()
}

func subset(a, b *btree.Set[int]) bool {
	ok := true
	a.Scan(func(v int) bool {
		ok = b.Contains(v)
		return ok
	})

	return ok
}
